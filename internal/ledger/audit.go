package ledger

import (
	"fmt"

	"github.com/MCalenda/FundMeNow/internal/model"
)

// AuditProject 校验单个项目的余额守恒：余额必须等于未提取贡献之和。
// 达标关闭的项目已全额支付给创建者，贡献记录仅作历史留存，只校验余额为零。
func (l *Ledger) AuditProject(id int64) error {
	project, err := l.store.Get(id)
	if err != nil {
		return err
	}

	if project.State == model.ProjectStateClosedObjReached {
		if project.Balance != 0 {
			return fmt.Errorf("project %d paid out but balance=%d", id, project.Balance)
		}
		return nil
	}

	contributions, err := l.store.Contributions(id)
	if err != nil {
		return err
	}

	var sum int64
	for _, amount := range contributions {
		sum += amount
	}

	if project.Balance != sum {
		return fmt.Errorf("project %d balance mismatch: balance=%d, contributions=%d", id, project.Balance, sum)
	}
	return nil
}

// ProjectStats 项目统计信息
type ProjectStats struct {
	ProjectId            int64              `json:"project_id"`
	Balance              int64              `json:"balance"`
	Target               int64              `json:"target"`
	State                model.ProjectState `json:"state"`
	ContributorCount     int                `json:"contributor_count"`
	CompletionPercentage float64            `json:"completion_percentage"`
}

// GetProjectStats 获取项目统计信息
func (l *Ledger) GetProjectStats(id int64) (*ProjectStats, error) {
	project, err := l.store.Get(id)
	if err != nil {
		return nil, err
	}

	contributions, err := l.store.Contributions(id)
	if err != nil {
		return nil, err
	}

	contributorCount := 0
	for _, amount := range contributions {
		if amount > 0 {
			contributorCount++
		}
	}

	completion := float64(0)
	if project.Target > 0 {
		completion = float64(project.Balance) / float64(project.Target) * 100
	}

	return &ProjectStats{
		ProjectId:            project.Id,
		Balance:              project.Balance,
		Target:               project.Target,
		State:                project.State,
		ContributorCount:     contributorCount,
		CompletionPercentage: completion,
	}, nil
}
