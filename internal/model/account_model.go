package model

import (
	"time"
)

// AccountModel 钱包账户余额（transfer_backend为wallet时使用）
type AccountModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Address string `json:"address" gorm:"not null;uniqueIndex"`
	Balance int64  `json:"balance" gorm:"default:0"`
}

// TableName 自定义表名
func (AccountModel) TableName() string {
	return "account"
}
