package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ayaka/kotoba/internal/api"
	"github.com/ayaka/kotoba/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine, err := buildEngine(cmd.Context(), st)
		if err != nil {
			return err
		}

		server := api.NewServer(engine)
		slog.Info("starting server", "addr", addr)
		return http.ListenAndServe(addr, server.Router())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
