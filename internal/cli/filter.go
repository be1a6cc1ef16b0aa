package cli

import (
	"log/slog"

	"github.com/iyhunko/catalog-transformer/internal/metrics"
	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Keep only the products of one category",
	Long: `Keeps the products whose category matches --category, ignoring case.

An empty or unknown category leaves the catalog unchanged.`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

// categoryFilter is the raw --category flag.
var categoryFilter string

func init() {
	filterCmd.Flags().StringVarP(&categoryFilter, "category", "c", "", "Category name to keep")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	products, err := readCatalog(cmd)
	if err != nil {
		return err
	}

	filtered := transformer.FilterByCategory(products, categoryFilter)

	outcome := metrics.OutcomeMatched
	if _, ok := model.ParseCategory(categoryFilter); !ok {
		outcome = metrics.OutcomePassthrough
		slog.Info("filter names no category, catalog passed through", slog.String("filter", categoryFilter))
	}
	metrics.FilterRequests.WithLabelValues(outcome).Inc()
	metrics.ProductsFiltered.Add(float64(len(filtered)))
	slog.Info("catalog filtered",
		slog.String("filter", categoryFilter),
		slog.Int("products_in", len(products)),
		slog.Int("products_out", len(filtered)),
	)

	return writeCatalog(cmd, filtered)
}
