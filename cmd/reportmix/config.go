package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gauthierbraillon/reportmix/internal/config"
	"github.com/gauthierbraillon/reportmix/internal/display"
)

// newConfigCmd creates the config subcommand.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Show the configuration directory and the resolved reportmix settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config directory: %s\n\n", config.Dir())
			return display.EncodeYAML(cmd.OutOrStdout(), a.cfg)
		},
	}

	return cmd
}
