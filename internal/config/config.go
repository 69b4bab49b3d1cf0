package config

import (
	"github.com/MCalenda/FundMeNow/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Task     TaskConfig     `mapstructure:"task"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// LedgerConfig 账本配置
type LedgerConfig struct {
	EscrowAddress   string `mapstructure:"escrow_address"`   // 项目资金托管账户地址
	TransferBackend string `mapstructure:"transfer_backend"` // 转账后端: wallet, chain
}

// ChainConfig 链配置（transfer_backend为chain时使用）
type ChainConfig struct {
	RpcUrl     string `mapstructure:"rpc_url"`     // RPC节点URL
	ChainId    int64  `mapstructure:"chain_id"`    // 链ID
	PrivateKey string `mapstructure:"private_key"` // 托管账户私钥
}

type TaskConfig struct {
	AuditInterval    int `mapstructure:"audit_interval"`     // 秒
	PurgeInterval    int `mapstructure:"purge_interval"`     // 秒
	EventRetention   int `mapstructure:"event_retention"`    // 天
	DispatchPoolSize int `mapstructure:"dispatch_pool_size"` // 事件分发协程池大小
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/fundmenow")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "fundmenow")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("ledger.escrow_address", "0x0000000000000000000000000000000000000001")
	viper.SetDefault("ledger.transfer_backend", "wallet")
	viper.SetDefault("task.audit_interval", 300)
	viper.SetDefault("task.purge_interval", 3600)
	viper.SetDefault("task.event_retention", 30)
	viper.SetDefault("task.dispatch_pool_size", 8)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
