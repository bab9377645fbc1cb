package container

import (
	"fmt"
	"time"

	"github.com/alperbenzer/transfer-process/internal/auth"
	"github.com/alperbenzer/transfer-process/internal/config"
	"github.com/alperbenzer/transfer-process/internal/database"
	"github.com/alperbenzer/transfer-process/internal/metrics"
	"gorm.io/gorm"
)

// Container 依赖注入容器
// 管理所有应用依赖,包括配置、数据库、验证器等
type Container struct {
	cfg       *config.Config
	db        *gorm.DB
	verifier  *auth.KeyVerifier
	collector *metrics.Collector
}

// NewContainer 创建依赖注入容器
// 根据配置初始化所有依赖组件
func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. 初始化数据库（带重试机制）
	// 默认重试 3 次，初始间隔 1 秒，指数退避
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// 执行数据库迁移
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 2. 初始化 API Key 验证器
	verifier := auth.NewKeyVerifier(cfg.Auth.TransferKey, cfg.Auth.ManageKey)

	// 3. 初始化指标收集器（每 15 秒刷新数据库和状态分布指标）
	collector := metrics.NewCollector(db, 15*time.Second)
	collector.Start()

	return &Container{
		cfg:       cfg,
		db:        db,
		verifier:  verifier,
		collector: collector,
	}, nil
}

// Config 返回应用配置
func (c *Container) Config() *config.Config {
	return c.cfg
}

// DB 返回数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// KeyVerifier 返回 API Key 验证器
func (c *Container) KeyVerifier() *auth.KeyVerifier {
	return c.verifier
}

// Close 释放容器持有的资源
func (c *Container) Close() error {
	if c.collector != nil {
		c.collector.Stop()
	}

	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
