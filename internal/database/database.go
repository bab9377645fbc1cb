package database

import (
	"context"
	"fmt"
	"time"

	"github.com/alperbenzer/transfer-process/internal/config"
	"github.com/alperbenzer/transfer-process/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// PoolConfig 连接池配置
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // 秒
	ConnMaxIdleTime int // 秒
}

// BuildDSN 构建 PostgreSQL DSN
func BuildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// GetPoolConfig 获取连接池配置
func GetPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: 3600, // 1 小时
		ConnMaxIdleTime: 600,  // 10 分钟
	}
}

// openDialector 根据配置选择数据库驱动
// 默认 SQLite（与原始部署一致），driver 为 postgres 时连接 PostgreSQL
func openDialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == "postgres" {
		return postgres.Open(BuildDSN(cfg))
	}
	path := cfg.Path
	if path == "" {
		path = "./aidata.db"
	}
	return sqlite.Open(path)
}

// Connect 连接数据库
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// 从配置中读取连接池参数，如果没有配置则使用默认值
	var poolConfig *PoolConfig
	if cfg.MaxIdleConns > 0 || cfg.MaxOpenConns > 0 {
		// 使用配置中的值
		poolConfig = &PoolConfig{
			MaxIdleConns:    cfg.MaxIdleConns,
			MaxOpenConns:    cfg.MaxOpenConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		}
		// 如果某些值未设置，使用默认值
		if poolConfig.MaxIdleConns == 0 {
			poolConfig.MaxIdleConns = 10
		}
		if poolConfig.MaxOpenConns == 0 {
			poolConfig.MaxOpenConns = 100
		}
		if poolConfig.ConnMaxLifetime == 0 {
			poolConfig.ConnMaxLifetime = 3600
		}
		if poolConfig.ConnMaxIdleTime == 0 {
			poolConfig.ConnMaxIdleTime = 600
		}
	} else {
		// 使用默认配置
		poolConfig = GetPoolConfig()
	}

	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(poolConfig.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(poolConfig.ConnMaxIdleTime) * time.Second)

	return db, nil
}

// Migrate 执行数据库迁移
// 启动时自动建表；status/doc_id 为后加字段，历史行需要手动回填
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.CallModel{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	// 创建索引
	if err := CreateIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// CreateIndexes 创建数据库索引
func CreateIndexes(db *gorm.DB) error {
	// calls 表索引
	// external_call_id 的唯一索引保证重复提交的检查-插入序列在提交时原子生效
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_calls_external_call_id ON calls(external_call_id)").Error; err != nil {
		return fmt.Errorf("failed to create idx_calls_external_call_id: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_calls_school_code ON calls(school_code)").Error; err != nil {
		return fmt.Errorf("failed to create idx_calls_school_code: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_calls_status ON calls(status)").Error; err != nil {
		return fmt.Errorf("failed to create idx_calls_status: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_calls_created_at ON calls(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create idx_calls_created_at: %w", err)
	}

	return nil
}

// ConnectWithRetry 带重试的数据库连接
func ConnectWithRetry(cfg config.DatabaseConfig, maxRetries int, retryInterval time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = Connect(cfg)
		if err == nil {
			return db, nil
		}

		// 如果不是最后一次重试，等待后重试
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
			retryInterval *= 2 // 指数退避
		}
	}

	return nil, fmt.Errorf("failed to connect database after %d retries: %w", maxRetries, err)
}

// CheckHealth 检查数据库连接健康状态
func CheckHealth(db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return false
	}

	return true
}

// Reconnect 重新连接数据库
func Reconnect(cfg config.DatabaseConfig, oldDB *gorm.DB) (*gorm.DB, error) {
	// 关闭旧连接
	if oldDB != nil {
		if sqlDB, err := oldDB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	// 重新连接
	return Connect(cfg)
}
