package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	render "github.com/apexworks/pitwall/internal/adapters/render/sessions"
	"github.com/apexworks/pitwall/internal/domain"
)

func newShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Fetch and display one session's full telemetry document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			app.browser.Resolve(cmd.Context())

			doc, err := app.browser.Fetch(cmd.Context(), slug)
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(doc)
			}

			summary := summaryFor(app, slug, doc)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.RenderDetail(summary, doc))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// summaryFor finds the list entry for slug, falling back to deriving one
// when the slug was fetched from a stale reference outside the list.
func summaryFor(app *app, slug string, doc *domain.Document) domain.SessionSummary {
	for _, summary := range app.browser.Summaries() {
		if summary.Slug == slug {
			return summary
		}
	}
	summary, _ := domain.DeriveSummary(doc, slug+domain.DocumentExtension)
	return summary
}
