package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"huectl/cmd/huectl/commands"
	"huectl/internal/utils"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	logger := utils.SetupLogger(utils.LogLevelInfo, utils.LogFormatText)
	utils.SetAsDefaultLogger(logger)

	rootCmd := commands.NewRootCommand(logger, version, commit, buildDate)

	ctx := rootCmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
