package task

import (
	"time"

	"github.com/MCalenda/FundMeNow/internal/config"
	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/MCalenda/FundMeNow/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// LedgerAuditJob 账本审计任务，定期校验每个项目的余额守恒
type LedgerAuditJob struct {
	ledger *ledger.Ledger
	config *config.Config
}

// NewLedgerAuditJob 创建账本审计任务
func NewLedgerAuditJob(l *ledger.Ledger, cfg *config.Config) *LedgerAuditJob {
	return &LedgerAuditJob{
		ledger: l,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *LedgerAuditJob) GetName() string {
	return "ledger_audit"
}

// GetSchedule 获取调度配置
func (j *LedgerAuditJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.AuditInterval) * time.Second)
}

// Execute 执行任务
func (j *LedgerAuditJob) Execute() {
	logger.Debug("Starting ledger audit task")

	projects, err := j.ledger.GetAllProjects()
	if err != nil {
		logger.Error("Failed to fetch projects for audit: %v", err)
		return
	}

	mismatches := 0
	for _, project := range projects {
		if err := j.ledger.AuditProject(project.Id); err != nil {
			logger.Error("Ledger audit failed: %v", err)
			mismatches++
		}
	}

	if mismatches > 0 {
		logger.Error("Ledger audit completed with %d mismatched projects out of %d", mismatches, len(projects))
		return
	}
	logger.Debug("Ledger audit completed. %d projects verified", len(projects))
}
