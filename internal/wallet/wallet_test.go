package wallet

import (
	"fmt"
	"testing"

	"github.com/MCalenda/FundMeNow/internal/database"
	"github.com/MCalenda/FundMeNow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	aliceAddr = "0x00000000000000000000000000000000000000AA"
	bobAddr   = "0x00000000000000000000000000000000000000BB"
)

func newTestWallet(t *testing.T) *Wallet {
	t.Helper()

	// 每个用例一个独立的内存库，命名共享缓存保证连接池内可见
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return New(db)
}

func TestWalletDepositAndBalance(t *testing.T) {
	w := newTestWallet(t)

	balance, err := w.Balance(aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	require.NoError(t, w.Deposit(aliceAddr, 100))
	require.NoError(t, w.Deposit(aliceAddr, 50))

	balance, err = w.Balance(aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)

	assert.Error(t, w.Deposit(aliceAddr, 0))
}

func TestWalletTransfer(t *testing.T) {
	w := newTestWallet(t)
	require.NoError(t, w.Deposit(aliceAddr, 100))

	require.NoError(t, w.Transfer(aliceAddr, bobAddr, 60))

	aliceBalance, err := w.Balance(aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(40), aliceBalance)

	bobBalance, err := w.Balance(bobAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(60), bobBalance)

	// 转账流水落盘
	var records []model.TransferRecordModel
	require.NoError(t, w.db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, aliceAddr, records[0].FromAddress)
	assert.Equal(t, bobAddr, records[0].ToAddress)
	assert.Equal(t, int64(60), records[0].Amount)
	assert.Equal(t, "wallet", records[0].Backend)
}

func TestWalletTransferInsufficientFunds(t *testing.T) {
	w := newTestWallet(t)
	require.NoError(t, w.Deposit(aliceAddr, 30))

	err := w.Transfer(aliceAddr, bobAddr, 60)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// 失败的转账不留痕迹
	aliceBalance, _ := w.Balance(aliceAddr)
	assert.Equal(t, int64(30), aliceBalance)
	bobBalance, _ := w.Balance(bobAddr)
	assert.Equal(t, int64(0), bobBalance)

	var count int64
	w.db.Model(&model.TransferRecordModel{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestWalletTransferNeverOverdraws(t *testing.T) {
	w := newTestWallet(t)
	require.NoError(t, w.Deposit(aliceAddr, 100))

	// 扣光余额可以，再多一分被扣款条件拦下
	require.NoError(t, w.Transfer(aliceAddr, bobAddr, 100))
	assert.ErrorIs(t, w.Transfer(aliceAddr, bobAddr, 1), ErrInsufficientFunds)

	aliceBalance, err := w.Balance(aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), aliceBalance)

	bobBalance, err := w.Balance(bobAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(100), bobBalance)
}

func TestWalletTransferFromUnknownAccount(t *testing.T) {
	w := newTestWallet(t)

	err := w.Transfer(aliceAddr, bobAddr, 10)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestWalletTransferInvalidAmount(t *testing.T) {
	w := newTestWallet(t)
	require.NoError(t, w.Deposit(aliceAddr, 30))

	assert.Error(t, w.Transfer(aliceAddr, bobAddr, 0))
	assert.Error(t, w.Transfer(aliceAddr, bobAddr, -5))
}
