package cli

import (
	"fmt"

	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the known product categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, c := range model.Categories() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), c.String()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
