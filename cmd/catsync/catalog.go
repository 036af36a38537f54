package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/catsync/internal/catalog"
	"github.com/Veraticus/catsync/internal/cli"
	"github.com/Veraticus/catsync/internal/common"
)

func catalogCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the built-in category catalog",
		Long:  `Print the income, expense and transfer categories and the icons 'catsync sync' applies.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := catalog.Default()
			switch format {
			case "table":
				return cli.RenderCatalog(cmd.OutOrStdout(), c)
			case "yaml":
				return catalog.Encode(cmd.OutOrStdout(), c)
			default:
				return fmt.Errorf("%w: unknown format %q (use table or yaml)", common.ErrInvalidConfig, format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table, yaml)")

	return cmd
}
