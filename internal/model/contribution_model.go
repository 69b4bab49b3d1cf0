package model

import (
	"time"
)

// ContributionModel 贡献记录，按(项目, 贡献者)累计
type ContributionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId   int64  `json:"project_id" gorm:"not null;uniqueIndex:idx_project_contributor"`
	Contributor string `json:"contributor" gorm:"not null;uniqueIndex:idx_project_contributor"`
	Amount      int64  `json:"amount" gorm:"not null"` // 未提取的累计金额
}

// TableName 自定义表名
func (ContributionModel) TableName() string {
	return "contribution"
}
