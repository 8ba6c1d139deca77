package cli

import (
	"biztime-backend/internal/config"
	"biztime-backend/internal/logger"
	"biztime-backend/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample companies, invoices and industries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bootstrap()
			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			if err := seed.Run(cmd.Context(), db); err != nil {
				return err
			}
			logger.L().Info("seeding completed")
			return nil
		},
	}
}
