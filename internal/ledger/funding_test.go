package ledger

import (
	"errors"
	"testing"

	"github.com/MCalenda/FundMeNow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundProject(t *testing.T) {
	bank := newFakeBank(map[string]int64{funderAddr: 500})
	l, sink := newTestLedger(bank)

	id, err := l.CreateProject("p", "", testEndDate(), 200, ownerAddr)
	require.NoError(t, err)

	require.NoError(t, l.FundProject(id, 100, funderAddr))

	project, err := l.GetProject(id)
	require.NoError(t, err)
	assert.Equal(t, int64(100), project.Balance)
	assert.Equal(t, model.ProjectStateOpen, project.State)

	contribution, err := l.GetContribution(id, funderAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(100), contribution)

	// 资金进入托管账户
	assert.Equal(t, int64(400), bank.balance(funderAddr))
	assert.Equal(t, int64(100), bank.balance(escrowAddr))

	assert.Contains(t, sink.recorded(), recordedEvent{model.EventProjectFunded, id})
}

func TestFundProjectAccumulates(t *testing.T) {
	bank := newFakeBank(map[string]int64{funderAddr: 500})
	l, _ := newTestLedger(bank)

	id, err := l.CreateProject("p", "", testEndDate(), 1000, ownerAddr)
	require.NoError(t, err)

	require.NoError(t, l.FundProject(id, 100, funderAddr))
	require.NoError(t, l.FundProject(id, 50, funderAddr))
	require.NoError(t, l.FundProject(id, 25, funderAddr))

	contribution, err := l.GetContribution(id, funderAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(175), contribution)

	project, err := l.GetProject(id)
	require.NoError(t, err)
	assert.Equal(t, int64(175), project.Balance)
}

func TestFundProjectNotFound(t *testing.T) {
	l, _ := newTestLedger(newFakeBank(nil))

	err := l.FundProject(42, 100, funderAddr)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFundProjectOwnerCannotSelfFund(t *testing.T) {
	bank := newFakeBank(map[string]int64{ownerAddr: 500})
	l, sink := newTestLedger(bank)

	id, err := l.CreateProject("p", "", testEndDate(), 200, ownerAddr)
	require.NoError(t, err)

	err = l.FundProject(id, 100, ownerAddr)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// 余额不变，也没有发出注资事件
	project, _ := l.GetProject(id)
	assert.Equal(t, int64(0), project.Balance)
	assert.Equal(t, int64(500), bank.balance(ownerAddr))
	assert.NotContains(t, sink.recorded(), recordedEvent{model.EventProjectFunded, id})
}

func TestFundProjectClosedRejected(t *testing.T) {
	bank := newFakeBank(map[string]int64{funderAddr: 500, funder2Addr: 500})
	l, _ := newTestLedger(bank)

	// 未达标关闭
	failed, err := l.CreateProject("failed", "", testEndDate(), 1000, ownerAddr)
	require.NoError(t, err)
	require.NoError(t, l.FundProject(failed, 100, funderAddr))
	require.NoError(t, l.CloseProject(failed, ownerAddr))

	// 达标关闭
	reached, err := l.CreateProject("reached", "", testEndDate(), 100, ownerAddr)
	require.NoError(t, err)
	require.NoError(t, l.FundProject(reached, 100, funder2Addr))
	require.NoError(t, l.CloseProject(reached, ownerAddr))

	assert.ErrorIs(t, l.FundProject(failed, 50, funder2Addr), ErrInvalidState)
	assert.ErrorIs(t, l.FundProject(reached, 50, funderAddr), ErrInvalidState)
}

func TestFundProjectNonPositiveAmount(t *testing.T) {
	l, _ := newTestLedger(newFakeBank(nil))

	id, err := l.CreateProject("p", "", testEndDate(), 200, ownerAddr)
	require.NoError(t, err)

	assert.ErrorIs(t, l.FundProject(id, 0, funderAddr), ErrTransferFailed)
	assert.ErrorIs(t, l.FundProject(id, -5, funderAddr), ErrTransferFailed)
}

func TestFundProjectTransferFailureLeavesNoTrace(t *testing.T) {
	bank := newFakeBank(map[string]int64{funderAddr: 500})
	l, sink := newTestLedger(bank)

	id, err := l.CreateProject("p", "", testEndDate(), 200, ownerAddr)
	require.NoError(t, err)
	created := sink.recorded()

	bank.failNext = errors.New("destination rejected")
	err = l.FundProject(id, 100, funderAddr)
	assert.ErrorIs(t, err, ErrTransferFailed)

	project, _ := l.GetProject(id)
	assert.Equal(t, int64(0), project.Balance)
	assert.Equal(t, model.ProjectStateOpen, project.State)

	contribution, _ := l.GetContribution(id, funderAddr)
	assert.Equal(t, int64(0), contribution)

	// 失败的操作不发事件
	assert.Equal(t, created, sink.recorded())
}

func TestFundProjectReachesObjective(t *testing.T) {
	bank := newFakeBank(map[string]int64{funderAddr: 500})
	l, sink := newTestLedger(bank)

	id, err := l.CreateProject("p", "", testEndDate(), 400, ownerAddr)
	require.NoError(t, err)

	// 超额注资直接达标
	require.NoError(t, l.FundProject(id, 500, funderAddr))

	project, err := l.GetProject(id)
	require.NoError(t, err)
	assert.Equal(t, int64(500), project.Balance)
	assert.Equal(t, model.ProjectStateOpenObjReached, project.State)

	events := sink.recorded()
	assert.Contains(t, events, recordedEvent{model.EventProjectFunded, id})
	assert.Contains(t, events, recordedEvent{model.EventProjectReachedObjective, id})
}

func TestFundProjectObjectiveEmittedOnce(t *testing.T) {
	bank := newFakeBank(map[string]int64{funderAddr: 500, funder2Addr: 500})
	l, sink := newTestLedger(bank)

	id, err := l.CreateProject("p", "", testEndDate(), 100, ownerAddr)
	require.NoError(t, err)

	require.NoError(t, l.FundProject(id, 100, funderAddr))
	require.NoError(t, l.FundProject(id, 100, funder2Addr))

	reachedEvents := 0
	for _, e := range sink.recorded() {
		if e.event == model.EventProjectReachedObjective {
			reachedEvents++
		}
	}
	assert.Equal(t, 1, reachedEvents)

	// 达标状态不回退
	project, _ := l.GetProject(id)
	assert.Equal(t, model.ProjectStateOpenObjReached, project.State)
}

func TestBalanceConservation(t *testing.T) {
	bank := newFakeBank(map[string]int64{funderAddr: 500, funder2Addr: 500})
	l, _ := newTestLedger(bank)

	id, err := l.CreateProject("p", "", testEndDate(), 1000, ownerAddr)
	require.NoError(t, err)

	require.NoError(t, l.FundProject(id, 120, funderAddr))
	require.NoError(t, l.FundProject(id, 80, funder2Addr))
	require.NoError(t, l.FundProject(id, 30, funderAddr))

	require.NoError(t, l.AuditProject(id))

	project, _ := l.GetProject(id)
	assert.Equal(t, int64(230), project.Balance)
}
