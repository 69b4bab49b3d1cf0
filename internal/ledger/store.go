package ledger

import (
	"sync"

	"github.com/MCalenda/FundMeNow/internal/model"
)

// Store 账本存储。只负责数据的读写，业务规则由上层引擎保证。
type Store interface {
	// Get 获取项目，不存在时返回ErrNotFound
	Get(id int64) (*model.ProjectModel, error)
	// Put 写入项目（新建或覆盖）
	Put(project *model.ProjectModel) error
	// Contribution 获取某贡献者在某项目的累计金额，无记录时为0
	Contribution(projectId int64, contributor string) (int64, error)
	// SetContribution 写入累计贡献金额
	SetContribution(projectId int64, contributor string, amount int64) error
	// Contributions 获取某项目的全部贡献记录（含已清零的）
	Contributions(projectId int64) (map[string]int64, error)
	// NextId 分配下一个项目ID（当前数量+1），ID不会复用
	NextId() (int64, error)
	// All 按创建顺序返回所有项目
	All() ([]model.ProjectModel, error)
	// Count 当前已分配的最大项目ID
	Count() (int64, error)
}

// MemoryStore 内存存储，测试与单机开发使用
type MemoryStore struct {
	mu            sync.RWMutex
	projects      map[int64]*model.ProjectModel
	order         []int64
	contributions map[int64]map[string]int64
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects:      make(map[int64]*model.ProjectModel),
		contributions: make(map[int64]map[string]int64),
	}
}

// Get 获取项目副本，调用方的修改在Put之前不落库
func (s *MemoryStore) Get(id int64) (*model.ProjectModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *project
	return &copied, nil
}

// Put 写入项目
func (s *MemoryStore) Put(project *model.ProjectModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.Id]; !ok {
		s.order = append(s.order, project.Id)
	}
	copied := *project
	s.projects[project.Id] = &copied
	return nil
}

// Contribution 获取累计贡献金额
func (s *MemoryStore) Contribution(projectId int64, contributor string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.contributions[projectId][contributor], nil
}

// SetContribution 写入累计贡献金额
func (s *MemoryStore) SetContribution(projectId int64, contributor string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contributions[projectId] == nil {
		s.contributions[projectId] = make(map[string]int64)
	}
	s.contributions[projectId][contributor] = amount
	return nil
}

// Contributions 获取某项目的全部贡献记录
func (s *MemoryStore) Contributions(projectId int64) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make(map[string]int64, len(s.contributions[projectId]))
	for contributor, amount := range s.contributions[projectId] {
		records[contributor] = amount
	}
	return records, nil
}

// NextId 分配下一个项目ID
func (s *MemoryStore) NextId() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.order)) + 1, nil
}

// All 按创建顺序返回所有项目
func (s *MemoryStore) All() ([]model.ProjectModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]model.ProjectModel, 0, len(s.order))
	for _, id := range s.order {
		projects = append(projects, *s.projects[id])
	}
	return projects, nil
}

// Count 当前项目数量
func (s *MemoryStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.order)), nil
}
