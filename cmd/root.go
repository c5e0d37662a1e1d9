// Package cmd defines and implements the CLI commands for the activities
// executable.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"activities/internal/config"
	"activities/internal/logging"
)

var (
	cfgFile     string
	datasetFile string
)

// runtimeKeyType is the key for storing the runtime in the context.
type runtimeKeyType string

const runtimeKey runtimeKeyType = "runtime"

// runtime holds the collaborators every verb needs.
type runtime struct {
	cfg    config.Config
	logger *zap.Logger
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Maintain the dataset of standards efforts we track.",
		Long: `activities validates and adds entries to activities.json, the dataset of
standards efforts that are interesting to us.

To create tracking issues, GH_USER and GH_TOKEN must be in the environment;
to generate a token, see <https://github.com/settings/tokens>. The 'repo'
permission is required. Without them, 'add' still updates the dataset but
files no issue.`,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if datasetFile != "" {
				cfg.Dataset.File = datasetFile
			}

			logger, err := logging.New(cfg.Logging.Development)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = logger.With(zap.String("run_id", uuid.NewString()))

			ctx := context.WithValue(cmd.Context(), runtimeKey, &runtime{cfg: cfg, logger: logger})
			cmd.SetContext(ctx)
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if rt, ok := cmd.Context().Value(runtimeKey).(*runtime); ok && rt != nil {
				_ = rt.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().StringVar(&datasetFile, "file", "", "dataset file (default activities.json)")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newAddCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* ERROR: %v\n", err)
		os.Exit(1)
	}
}

func resolveRuntime(ctx context.Context) (*runtime, error) {
	rt, ok := ctx.Value(runtimeKey).(*runtime)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}
