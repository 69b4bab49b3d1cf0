package task

import (
	"time"

	"github.com/MCalenda/FundMeNow/internal/config"
	"github.com/MCalenda/FundMeNow/internal/logger"
	"github.com/MCalenda/FundMeNow/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// EventPurgeJob 事件清理任务，删除超过保留期的已投递事件
type EventPurgeJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewEventPurgeJob 创建事件清理任务
func NewEventPurgeJob(db *gorm.DB, cfg *config.Config) *EventPurgeJob {
	return &EventPurgeJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *EventPurgeJob) GetName() string {
	return "event_purge"
}

// GetSchedule 获取调度配置
func (j *EventPurgeJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.PurgeInterval) * time.Second)
}

// Execute 执行任务
func (j *EventPurgeJob) Execute() {
	cutoff := time.Now().AddDate(0, 0, -j.config.Task.EventRetention)

	result := j.db.Where("delivered = ? AND created_at < ?", true, cutoff).
		Delete(&model.EventModel{})
	if result.Error != nil {
		logger.Error("Failed to purge events: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		logger.Info("Purged %d delivered events older than %s", result.RowsAffected, cutoff.Format("2006-01-02"))
	}
}
