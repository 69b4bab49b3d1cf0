package model

import (
	"time"
)

// EventModel 已发出的账本事件（outbox）
type EventModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EventType string `json:"event_type" gorm:"not null;index"`
	ProjectId int64  `json:"project_id" gorm:"not null;index"`
	Delivered bool   `json:"delivered" gorm:"default:false"`
}

// 账本事件类型
const (
	EventProjectCreated          = "ProjectCreated"
	EventProjectFunded           = "ProjectFunded"
	EventProjectReachedObjective = "ProjectReachedObjective"
	EventProjectClosed           = "ProjectClosed"
)

// TableName 自定义表名
func (EventModel) TableName() string {
	return "event"
}
