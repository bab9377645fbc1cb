package container_test

import (
	"path/filepath"
	"testing"

	"github.com/alperbenzer/transfer-process/internal/auth"
	"github.com/alperbenzer/transfer-process/internal/config"
	"github.com/alperbenzer/transfer-process/internal/container"
	"github.com/alperbenzer/transfer-process/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewContainer 测试容器初始化
func TestNewContainer(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Auth.TransferKey = "transfer-secret"
	cfg.Auth.ManageKey = "manage-secret"

	ctr, err := container.NewContainer(cfg)
	require.NoError(t, err)
	defer ctr.Close()

	// 数据库已连接且完成迁移
	require.NotNil(t, ctr.DB())
	assert.True(t, ctr.DB().Migrator().HasTable(&model.CallModel{}))

	// 验证器使用配置中的密钥
	require.NotNil(t, ctr.KeyVerifier())
	assert.NoError(t, ctr.KeyVerifier().Verify(auth.CapabilityTransfer, "transfer-secret"))
	assert.Error(t, ctr.KeyVerifier().Verify(auth.CapabilityManage, "transfer-secret"))

	assert.Same(t, cfg, ctr.Config())
}

// TestContainer_Close 测试资源释放
func TestContainer_Close(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	ctr, err := container.NewContainer(cfg)
	require.NoError(t, err)

	assert.NoError(t, ctr.Close())
}
