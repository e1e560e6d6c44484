package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shrinkr/internal/app"
)

const resetConfirmWord = "reset"

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Inspect or reset the anonymous creation quota",
}

var quotaUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show quota usage for an origin address",
	RunE: func(cmd *cobra.Command, args []string) error {
		address, _ := cmd.Flags().GetString("address")
		if address == "" {
			return errors.New("--address is required")
		}

		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logger.Sync()

		a, err := app.New(cmd.Context(), cfg, logger, app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		usage, err := a.URLService.GetQuotaUsage(cmd.Context(), address)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "address:   %s\ncurrent:   %d\nlimit:     %d\nremaining: %d\n",
			address, usage.Current, usage.Limit, usage.Remaining)
		return nil
	},
}

var quotaResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every anonymous URL, restoring all addresses' quota",
	Long: "Delete every URL created without an account, from every address.\n" +
		"This cannot be undone. You will be asked to type \"" + resetConfirmWord + "\" unless --yes is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "This permanently deletes every anonymous URL. Type %q to continue: ", resetConfirmWord)
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("reset aborted: no confirmation given")
			}
			if strings.TrimSpace(line) != resetConfirmWord {
				return errors.New("reset aborted")
			}
		}

		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logger.Sync()

		a, err := app.New(cmd.Context(), cfg, logger, app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.URLService.ResetAnonymousQuota(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d anonymous URLs\n", result.DeletedCount)
		return nil
	},
}

func init() {
	quotaUsageCmd.Flags().StringP("address", "a", "", "origin address (IPv4 or IPv6)")
	quotaResetCmd.Flags().BoolP("yes", "y", false, "skip the interactive confirmation")

	quotaCmd.AddCommand(quotaUsageCmd, quotaResetCmd)
	rootCmd.AddCommand(quotaCmd)
}
