package ledger

import (
	"time"

	"github.com/MCalenda/FundMeNow/internal/model"
)

// CreateProject 创建项目并分配ID。名称与描述为自由文本，
// endDate仅作展示不做校验，目标金额为0视为合法的退化情况。
func (l *Ledger) CreateProject(name, description string, endDate time.Time, target int64, caller string) (int64, error) {
	// 创建与ID分配全局串行，保证ID单调且不复用
	l.mu.Lock()
	id, err := l.store.NextId()
	if err != nil {
		l.mu.Unlock()
		return 0, err
	}

	project := &model.ProjectModel{
		Id:          id,
		Name:        name,
		Description: description,
		Owner:       caller,
		EndDate:     endDate,
		Target:      target,
		Balance:     0,
		State:       model.ProjectStateOpen,
	}

	if err := l.store.Put(project); err != nil {
		l.mu.Unlock()
		return 0, err
	}
	l.mu.Unlock()

	l.sink.Emit(model.EventProjectCreated, id)
	return id, nil
}
