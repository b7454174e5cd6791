package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kharcha/internal/config"
	"kharcha/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the parsing pipeline over HTTP: POST /api/v1/parse plus
expense, category and stats endpoints.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			p, extractor, err := initParser()
			if err != nil {
				return err
			}
			defer extractor.Close()

			srv := server.New(p, store, slog.Default())

			go func() {
				<-ctx.Done()
				if err := srv.Shutdown(); err != nil {
					slog.Error("server shutdown failed", "error", err)
				}
			}()

			return srv.Listen(config.ServerAddr())
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
