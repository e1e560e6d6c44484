package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrinkr/internal/app"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete URLs that expired longer ago than the retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logger.Sync()

		retention := cfg.PurgeRetention
		if cmd.Flags().Changed("retention") {
			retention, _ = cmd.Flags().GetDuration("retention")
		}

		a, err := app.New(cmd.Context(), cfg, logger, app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		count, err := a.URLService.PurgeExpired(cmd.Context(), retention)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired URLs\n", count)
		return nil
	},
}

func init() {
	purgeCmd.Flags().Duration("retention", 0, "override PURGE_RETENTION, e.g. 72h")
	rootCmd.AddCommand(purgeCmd)
}
