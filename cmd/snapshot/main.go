package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yigit/weddingsite/internal/bootstrap"
	"github.com/yigit/weddingsite/internal/pkg/sanitize"
	"github.com/yigit/weddingsite/internal/snapshot"
)

func newRootCmd() *cobra.Command {
	var configPath string
	var baseURL string
	var outPath string

	cmd := &cobra.Command{
		Use:           "snapshot",
		Short:         "Build the static data file for the pre-rendered site",
		Long:          "Fetches wedding details, approved photos, schedule and playlist from the API and writes them to one JSON file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap.LoadConfigAndSetupLogger(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("api-base-url") {
				if !sanitize.IsValidURL(baseURL) {
					return fmt.Errorf("--api-base-url %q is not a valid http(s) URL", baseURL)
				}
				cfg.API.BaseURL = baseURL
			}
			if cmd.Flags().Changed("out") {
				cfg.Snapshot.OutputPath = outPath
			}

			builder := snapshot.NewBuilder(bootstrap.NewAPIClient(cfg), cfg.Snapshot.OutputPath)
			return builder.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default configs/config.yaml)")
	cmd.Flags().StringVar(&baseURL, "api-base-url", "", "API base URL (overrides api.base_url)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (overrides snapshot.output_path)")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot: "+err.Error())
		stop()
		os.Exit(1)
	}
}
