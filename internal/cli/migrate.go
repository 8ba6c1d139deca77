package cli

import (
	"fmt"

	"biztime-backend/internal/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the SQL schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bootstrap()
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			switch direction {
			case "up":
				return migrations.Up(cfg.DatabaseURL)
			case "down":
				if steps < 1 {
					return fmt.Errorf("--steps must be at least 1, got %d", steps)
				}
				return migrations.Down(cfg.DatabaseURL, steps)
			}
			return fmt.Errorf("unknown direction %q", direction)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}
