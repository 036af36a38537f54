package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/catsync/internal/cli"
	"github.com/Veraticus/catsync/internal/service"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect stored categories",
	}

	cmd.AddCommand(listCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var systemOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored categories",
		Long:  `Display stored categories with their icons and scope.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cats, err := store.GetCategories(ctx, service.CategoryFilter{SystemOnly: systemOnly})
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			return cli.RenderCategories(cmd.OutOrStdout(), cats)
		},
	}

	cmd.Flags().BoolVar(&systemOnly, "system-only", false, "Only show system categories")

	return cmd
}
