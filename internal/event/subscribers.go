package event

import (
	"github.com/MCalenda/FundMeNow/internal/logger"
	"github.com/MCalenda/FundMeNow/internal/model"
	"gorm.io/gorm"
)

// LogSubscriber 把事件写入日志
type LogSubscriber struct{}

// Handle 处理事件
func (LogSubscriber) Handle(event string, projectId int64) {
	logger.Info("Event %s emitted for project %d", event, projectId)
}

// OutboxSubscriber 把事件持久化到outbox表，供外部系统拉取
type OutboxSubscriber struct {
	db *gorm.DB
}

// NewOutboxSubscriber 创建outbox订阅者
func NewOutboxSubscriber(db *gorm.DB) *OutboxSubscriber {
	return &OutboxSubscriber{db: db}
}

// Handle 处理事件。写入失败只记日志，事件投递不做保证。
func (s *OutboxSubscriber) Handle(event string, projectId int64) {
	record := model.EventModel{
		EventType: event,
		ProjectId: projectId,
	}
	if err := s.db.Create(&record).Error; err != nil {
		logger.Error("Failed to persist event %s for project %d: %v", event, projectId, err)
	}
}
