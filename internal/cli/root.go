// Package cli wires the biztime command tree.
package cli

import (
	"biztime-backend/internal/config"
	"biztime-backend/internal/logger"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "biztime",
		Short:         "BizTime companies, invoices and industries API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// bootstrap loads the configuration and installs the process logger.
func bootstrap() config.Config {
	cfg := config.Load()
	logger.Setup(logger.Config{Level: cfg.LogLevel, JSON: cfg.IsProduction()})
	return cfg
}
