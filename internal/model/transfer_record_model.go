package model

import (
	"time"
)

// TransferRecordModel 资金划转流水，由转账后端落盘
type TransferRecordModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FromAddress string `json:"from_address" gorm:"not null;index"`
	ToAddress   string `json:"to_address" gorm:"not null;index"`
	Amount      int64  `json:"amount" gorm:"not null"`
	Backend     string `json:"backend" gorm:"not null"` // wallet, chain
	TxHash      string `json:"tx_hash"`                 // 链上转账时记录
}

// TableName 自定义表名
func (TransferRecordModel) TableName() string {
	return "transfer_record"
}
