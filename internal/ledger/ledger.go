package ledger

import (
	"sync"

	"github.com/MCalenda/FundMeNow/internal/model"
)

// Ledger 项目账本与结算状态机。所有资金规则都在这里收口：
// 余额恒等于未提取贡献之和，关闭状态不可逆，提取每人仅一次。
type Ledger struct {
	store    Store
	sink     Sink
	transfer Transfer
	escrow   string // 托管账户地址，项目资金的占位持有方

	// 同一项目的变更操作串行执行，不同项目互不阻塞
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New 创建账本
func New(store Store, sink Sink, transfer Transfer, escrow string) *Ledger {
	if sink == nil {
		sink = NopSink{}
	}
	return &Ledger{
		store:    store,
		sink:     sink,
		transfer: transfer,
		escrow:   escrow,
		locks:    make(map[int64]*sync.Mutex),
	}
}

// lockProject 获取项目级别的互斥锁。项目不会被删除，锁随项目常驻。
func (l *Ledger) lockProject(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}

// GetProject 获取项目详情
func (l *Ledger) GetProject(id int64) (*model.ProjectModel, error) {
	return l.store.Get(id)
}

// GetAllProjects 按创建顺序获取所有项目
func (l *Ledger) GetAllProjects() ([]model.ProjectModel, error) {
	return l.store.All()
}

// ProjectCount 当前已分配的最大项目ID
func (l *Ledger) ProjectCount() (int64, error) {
	return l.store.Count()
}

// GetContribution 获取某贡献者在某项目的未提取金额
func (l *Ledger) GetContribution(projectId int64, contributor string) (int64, error) {
	if _, err := l.store.Get(projectId); err != nil {
		return 0, err
	}
	return l.store.Contribution(projectId, contributor)
}
