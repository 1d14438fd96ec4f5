package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pitwall",
		Short:         "pitwall: browse recorded racing-telemetry sessions",
		Long:          "pitwall lists recorded telemetry sessions from a session service, the bundled demo set or a user-supplied archive, and fetches full session detail on demand.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(app),
		newShowCmd(app),
		newImportCmd(app),
		newServeCmd(app),
		newConfigCmd(),
	)

	return rootCmd
}
