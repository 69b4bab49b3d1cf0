package ledger

import (
	"testing"
	"time"

	"github.com/MCalenda/FundMeNow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorePutGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()

	project := &model.ProjectModel{
		Id:      1,
		Name:    "p",
		Owner:   ownerAddr,
		EndDate: time.Now(),
		Target:  100,
		State:   model.ProjectStateOpen,
	}
	require.NoError(t, s.Put(project))

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, project.Name, got.Name)

	// Get返回副本，修改不影响存储
	got.Balance = 999
	again, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Balance)
}

func TestMemoryStoreNextId(t *testing.T) {
	s := NewMemoryStore()

	id, err := s.NextId()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NoError(t, s.Put(&model.ProjectModel{Id: 1}))

	id, err = s.NextId()
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	// 覆盖写不分配新ID
	require.NoError(t, s.Put(&model.ProjectModel{Id: 1, Balance: 5}))
	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStoreAllInsertionOrder(t *testing.T) {
	s := NewMemoryStore()

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, s.Put(&model.ProjectModel{Id: i}))
	}

	projects, err := s.All()
	require.NoError(t, err)
	require.Len(t, projects, 3)
	for i, project := range projects {
		assert.Equal(t, int64(i+1), project.Id)
	}
}

func TestMemoryStoreContributions(t *testing.T) {
	s := NewMemoryStore()

	// 无记录时默认为0
	amount, err := s.Contribution(1, funderAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount)

	require.NoError(t, s.SetContribution(1, funderAddr, 100))
	require.NoError(t, s.SetContribution(1, funder2Addr, 50))
	require.NoError(t, s.SetContribution(2, funderAddr, 7))

	amount, err = s.Contribution(1, funderAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(100), amount)

	all, err := s.Contributions(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{funderAddr: 100, funder2Addr: 50}, all)
}
