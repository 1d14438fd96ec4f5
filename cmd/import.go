package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apexworks/pitwall/internal/adapters/archive"
	render "github.com/apexworks/pitwall/internal/adapters/render/sessions"
)

func newImportCmd(app *app) *cobra.Command {
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Load telemetry archives or documents, replacing the active source",
		Long:  "import reads the given files (zip bundles or standalone telemetry documents), keeps every session with at least one valid lap, and switches pitwall to archive mode permanently.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]archive.Input, 0, len(args))
			for _, arg := range args {
				data, err := os.ReadFile(arg)
				if err != nil {
					return fmt.Errorf("read %s: %w", arg, err)
				}
				inputs = append(inputs, archive.Input{Name: filepath.Base(arg), Data: data})
			}

			var result archive.Result
			ingest := func() {
				result = archive.Ingest(inputs)
			}
			if noSpinner {
				ingest()
			} else if err := runImportSpinner(cmd.OutOrStdout(), fmt.Sprintf("Importing %d file(s)...", len(inputs)), ingest); err != nil {
				return err
			}

			app.browser.LoadArchive(result.Summaries, result.Documents)

			if result.Skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped %d unreadable or empty candidate(s)\n", result.Skipped)
			}
			if result.DuplicateSlugs > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %d duplicate slug(s); the last document read for each wins\n", result.DuplicateSlugs)
			}

			out := render.RenderList(app.browser.Summaries(), render.RenderOptions{Now: app.clock.Now()})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Disable the progress spinner")

	return cmd
}
