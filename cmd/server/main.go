package main

import (
	"github.com/MCalenda/FundMeNow/internal/chain"
	"github.com/MCalenda/FundMeNow/internal/config"
	"github.com/MCalenda/FundMeNow/internal/database"
	"github.com/MCalenda/FundMeNow/internal/event"
	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/MCalenda/FundMeNow/internal/logger"
	"github.com/MCalenda/FundMeNow/internal/router"
	"github.com/MCalenda/FundMeNow/internal/store"
	"github.com/MCalenda/FundMeNow/internal/task"
	"github.com/MCalenda/FundMeNow/internal/wallet"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if cfg.Log.Output == "file" {
		fileLogger, err := logger.NewWithFileRotation(logger.ParseLogLevel(cfg.Log.Level), cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(fileLogger)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化转账后端
	escrow := cfg.Ledger.EscrowAddress
	accountWallet := wallet.New(db)
	var transfer ledger.Transfer = accountWallet
	if cfg.Ledger.TransferBackend == "chain" {
		chainClient, err := chain.Init(cfg.Chain, db)
		if err != nil {
			logger.Fatal("Failed to initialize chain client: %v", err)
		}
		escrow = chainClient.EscrowAddress()
		// 出金上链，入金仍走钱包记账（链上存款由监听服务入账）
		transfer = ledger.TransferFunc(func(from, to string, amount int64) error {
			if from == escrow {
				return chainClient.Transfer(from, to, amount)
			}
			return accountWallet.Transfer(from, to, amount)
		})
	}

	// 初始化事件分发
	dispatcher, err := event.NewDispatcher(
		cfg.Task.DispatchPoolSize,
		event.LogSubscriber{},
		event.NewOutboxSubscriber(db),
	)
	if err != nil {
		logger.Fatal("Failed to initialize event dispatcher: %v", err)
	}
	defer dispatcher.Release()

	// 初始化账本
	l := ledger.New(store.NewGormStore(db), dispatcher, transfer, escrow)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 启动定时任务
	manager := task.Start(l, db, cfg)
	defer manager.Stop()

	// 启动服务器
	r := router.Setup(l, event.NewOutbox(db))
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
