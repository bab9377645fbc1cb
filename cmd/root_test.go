package cmd_test

import (
	"testing"

	"github.com/alperbenzer/transfer-process/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand 测试根命令及其子命令注册
func TestRootCommand(t *testing.T) {
	rootCmd := cmd.GetRootCmd()
	require.NotNil(t, rootCmd)
	assert.Equal(t, "transfer-process", rootCmd.Use)

	serverCmd, _, err := rootCmd.Find([]string{"server"})
	require.NoError(t, err, "server command should exist")
	assert.Equal(t, "server", serverCmd.Use)

	migrateCmd, _, err := rootCmd.Find([]string{"migrate"})
	require.NoError(t, err, "migrate command should exist")
	assert.Equal(t, "migrate", migrateCmd.Use)
}

// TestLoadConfig_Defaults 测试无配置文件时加载默认配置
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
}
