package store

import (
	"errors"
	"fmt"

	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/MCalenda/FundMeNow/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 数据库存储，生产环境使用
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get 获取项目
func (s *GormStore) Get(id int64) (*model.ProjectModel, error) {
	var project model.ProjectModel
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &project, nil
}

// Put 写入项目
func (s *GormStore) Put(project *model.ProjectModel) error {
	if err := s.db.Save(project).Error; err != nil {
		return fmt.Errorf("failed to save project %d: %w", project.Id, err)
	}
	return nil
}

// Contribution 获取累计贡献金额，无记录时为0
func (s *GormStore) Contribution(projectId int64, contributor string) (int64, error) {
	var record model.ContributionModel
	err := s.db.Where("project_id = ? AND contributor = ?", projectId, contributor).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get contribution: %w", err)
	}
	return record.Amount, nil
}

// SetContribution 写入累计贡献金额，(项目, 贡献者)唯一
func (s *GormStore) SetContribution(projectId int64, contributor string, amount int64) error {
	record := model.ContributionModel{
		ProjectId:   projectId,
		Contributor: contributor,
		Amount:      amount,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "contributor"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to set contribution: %w", err)
	}
	return nil
}

// Contributions 获取某项目的全部贡献记录
func (s *GormStore) Contributions(projectId int64) (map[string]int64, error) {
	var records []model.ContributionModel
	if err := s.db.Where("project_id = ?", projectId).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	contributions := make(map[string]int64, len(records))
	for _, record := range records {
		contributions[record.Contributor] = record.Amount
	}
	return contributions, nil
}

// NextId 分配下一个项目ID。项目不会被删除，数量+1保证单调不复用。
func (s *GormStore) NextId() (int64, error) {
	count, err := s.Count()
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}

// All 按创建顺序返回所有项目
func (s *GormStore) All() ([]model.ProjectModel, error) {
	var projects []model.ProjectModel
	if err := s.db.Order("id ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Count 当前项目数量
func (s *GormStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&model.ProjectModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
