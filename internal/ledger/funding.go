package ledger

import (
	"github.com/MCalenda/FundMeNow/internal/model"
)

// FundProject 向项目注资。金额从caller原子划转到托管账户，
// 划转失败则整个操作失败，不产生任何状态变更。
func (l *Ledger) FundProject(id int64, amount int64, caller string) error {
	lock := l.lockProject(id)
	lock.Lock()
	defer lock.Unlock()

	project, err := l.store.Get(id)
	if err != nil {
		return err
	}

	if caller == project.Owner {
		return errSelfFunding
	}

	if project.State.Closed() {
		return errProjectClosed
	}

	if amount <= 0 {
		return errInvalidAmount
	}

	contribution, err := l.store.Contribution(id, caller)
	if err != nil {
		return err
	}

	// 先转账后落库：转账失败时账本保持原样
	if err := l.transfer.Transfer(caller, l.escrow, amount); err != nil {
		return wrapTransferErr(err)
	}

	project.Balance += amount

	// 达标状态单向推进，之后余额下降也不会回退
	reached := false
	if project.State == model.ProjectStateOpen && project.Balance >= project.Target {
		project.State = model.ProjectStateOpenObjReached
		reached = true
	}

	if err := l.store.Put(project); err != nil {
		return err
	}
	if err := l.store.SetContribution(id, caller, contribution+amount); err != nil {
		return err
	}

	l.sink.Emit(model.EventProjectFunded, id)
	if reached {
		l.sink.Emit(model.EventProjectReachedObjective, id)
	}
	return nil
}
