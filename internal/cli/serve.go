package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/louisbranch/tabletop/internal/namegen"
	"github.com/louisbranch/tabletop/internal/platform/logging"
	"github.com/louisbranch/tabletop/internal/server"
	"github.com/louisbranch/tabletop/internal/session"
	bboltstore "github.com/louisbranch/tabletop/internal/storage/bbolt"
)

// ServeCmd returns the HTTP server command
func ServeCmd() *cobra.Command {
	var port int
	var sheetDB string
	var namesDB string
	var debug bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API for the dice and sheet tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(debug)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer logger.Sync()

			store, err := bboltstore.Open(sheetDB)
			if err != nil {
				return fmt.Errorf("open sheet store: %w", err)
			}
			defer store.Close()

			names, err := namegen.Open(namesDB)
			if err != nil {
				return fmt.Errorf("open name store: %w", err)
			}
			defer names.Close()

			sess := session.New(
				session.NewAutosaver(store, session.DefaultAutosaveDelay, logger),
				session.NewTransfers(store),
			)
			srv := server.New(logger, store, names, sess)
			defer srv.Close(cmd.Context())

			logger.Infow("server listening", "port", port)
			return http.ListenAndServe(fmt.Sprintf(":%d", port), srv.Routes())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	cmd.Flags().StringVar(&sheetDB, "sheet-db", "tabletop.db", "Path to the sheet database")
	cmd.Flags().StringVar(&namesDB, "names-db", "names.db", "Path to the name database")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
