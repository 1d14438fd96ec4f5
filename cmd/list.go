package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	render "github.com/apexworks/pitwall/internal/adapters/render/sessions"
)

func newListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions from the active source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := app.browser.Resolve(cmd.Context())
			summaries := app.browser.Summaries()

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(summaries)
			}

			out := render.RenderList(summaries, render.RenderOptions{Now: app.clock.Now()})
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "source: %s\n", mode)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
