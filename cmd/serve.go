package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/apexworks/pitwall/internal/adapters/devserver"
)

func newServeCmd(app *app) *cobra.Command {
	var listen string
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of telemetry documents over the session-service contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = app.cfg.Serve.Dir
			}
			if dir == "" {
				return errors.New("a session directory is required (--dir or serve.dir)")
			}
			if listen == "" {
				listen = app.cfg.Serve.Listen
			}

			server, err := devserver.New(dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "serving %d session(s) from %s on http://%s\n", server.SessionCount(), dir, listen)
			return http.ListenAndServe(listen, server.Handler())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory containing telemetry documents")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config)")

	return cmd
}
