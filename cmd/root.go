/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transfer-process",
	Short: "Fault call transfer API server",
	Long: `Transfer Process is a REST API server that records fault call
submissions from an external system and exposes endpoints to list
and update those call records.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// 原始部署通过 .env 注入密钥，加载失败（文件不存在）可忽略
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// GetRootCmd 返回根命令（用于测试）
func GetRootCmd() *cobra.Command {
	return rootCmd
}
