package cli

import (
	"islamic-quotes-be/internal/bootstrap"
	"islamic-quotes-be/internal/config"
	"islamic-quotes-be/internal/server"

	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP API (configured from .env and the environment)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			container, err := bootstrap.NewContainer(cfg)
			if err != nil {
				return err
			}
			return server.Serve(cmd.Context(), cfg, container)
		},
	}
}
