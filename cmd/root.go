package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"shrinkr/internal/config"
	"shrinkr/internal/logger"
)

// v collects configuration for every command; flags bind into it
var v = viper.New()

var rootCmd = &cobra.Command{
	Use:           "shrinkr",
	Short:         "URL shortener with expiring links and anonymous quotas",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the command selected on the command line
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "optional config file (yaml, json or toml)")
}

// loadRuntime loads configuration and builds the logger shared by subcommands
func loadRuntime() (*config.Config, *zap.Logger, error) {
	if path, _ := rootCmd.PersistentFlags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}
