package event

import (
	"github.com/MCalenda/FundMeNow/internal/model"
	"gorm.io/gorm"
)

// Outbox 外部系统的事件出口，拉取后确认，确认过的事件由清理任务回收
type Outbox struct {
	db *gorm.DB
}

// NewOutbox 创建事件出口
func NewOutbox(db *gorm.DB) *Outbox {
	return &Outbox{db: db}
}

// Pull 按写入顺序拉取未投递事件
func (o *Outbox) Pull(limit int) ([]model.EventModel, error) {
	events := make([]model.EventModel, 0, limit)
	err := o.db.Where("delivered = ?", false).
		Order("id").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Ack 标记事件已投递，返回实际确认的条数
func (o *Outbox) Ack(ids []int64) (int64, error) {
	result := o.db.Model(&model.EventModel{}).
		Where("id IN ?", ids).
		Update("delivered", true)
	return result.RowsAffected, result.Error
}
