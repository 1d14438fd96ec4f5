package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	configadapter "github.com/apexworks/pitwall/internal/adapters/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pitwall configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file to ~/.pitwall/config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configadapter.WriteDefault()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	})

	return cmd
}
