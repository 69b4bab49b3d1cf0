package wallet

import (
	"errors"
	"fmt"

	"github.com/MCalenda/FundMeNow/internal/model"
	"gorm.io/gorm"
)

// ErrInsufficientFunds 转出账户余额不足
var ErrInsufficientFunds = errors.New("insufficient funds")

// Wallet 数据库账户钱包，实现账本的原子转账能力。
// 扣款、入账和流水记录在同一个数据库事务中提交。
type Wallet struct {
	db *gorm.DB
}

// New 创建钱包
func New(db *gorm.DB) *Wallet {
	return &Wallet{db: db}
}

// Transfer 原子转账
func (w *Wallet) Transfer(from, to string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid transfer amount %d", amount)
	}

	return w.db.Transaction(func(tx *gorm.DB) error {
		// 扣款语句自带余额条件，并发转出时不会基于过期读数把账户扣成负数
		debit := tx.Model(&model.AccountModel{}).
			Where("address = ? AND balance >= ?", from, amount).
			Update("balance", gorm.Expr("balance - ?", amount))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		// 目标账户不存在时自动开户
		destination := model.AccountModel{Address: to}
		if err := tx.Where("address = ?", to).FirstOrCreate(&destination).Error; err != nil {
			return err
		}
		if err := tx.Model(&destination).
			Update("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return err
		}

		record := model.TransferRecordModel{
			FromAddress: from,
			ToAddress:   to,
			Amount:      amount,
			Backend:     "wallet",
		}
		return tx.Create(&record).Error
	})
}

// Balance 查询账户余额，账户不存在时为0
func (w *Wallet) Balance(address string) (int64, error) {
	var account model.AccountModel
	if err := w.db.Where("address = ?", address).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.Balance, nil
}

// Deposit 给账户充值（入金通道外部负责，这里只记账）
func (w *Wallet) Deposit(address string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid deposit amount %d", amount)
	}

	return w.db.Transaction(func(tx *gorm.DB) error {
		account := model.AccountModel{Address: address}
		if err := tx.Where("address = ?", address).FirstOrCreate(&account).Error; err != nil {
			return err
		}
		return tx.Model(&account).
			Update("balance", gorm.Expr("balance + ?", amount)).Error
	})
}
