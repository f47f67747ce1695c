package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/anthonysuherli/featherweight/internal/api/rest"
	"github.com/anthonysuherli/featherweight/internal/ingest/bref"
	"github.com/anthonysuherli/featherweight/internal/logger"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scraping pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Get()

			fetcher, closeFetcher, err := newBRefFetcher()
			if err != nil {
				return err
			}
			defer closeFetcher()

			if port == "" {
				port = runtimeConfig.Port
			}

			server := rest.NewServer(port, bref.NewScraper(fetcher), newStatsClient())

			go func() {
				log.WithField("port", port).Info("REST API listening")
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.WithError(err).Fatal("REST API failed")
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			log.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (default from PORT config)")

	return cmd
}
