package cli

import (
	"log/slog"

	"github.com/iyhunko/catalog-transformer/internal/config"
	"github.com/iyhunko/catalog-transformer/internal/metrics"
	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/iyhunko/catalog-transformer/internal/service"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// catalogTransformer is the part of service.CatalogService the commands depend on.
type catalogTransformer interface {
	ApplyDiscount(products []model.Product, discount decimal.Decimal) []model.Product
	FilterByCategory(products []model.Product, filter string) []model.Product
}

var transformer catalogTransformer = service.NewCatalogService()

var (
	appConfig = &config.Config{Discount: config.Discount{Strict: true}}

	inputPath  string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "catalog-transformer",
	Short: "Discount and filter product catalogs",
	Long: `Reads a JSON product catalog, transforms it and writes the result as JSON.

The catalog format is {"products":[{"id":"<uuid>","name":"...","category":"Food","price":"5.50"}]}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", `Catalog file to read ("-" for stdin)`)
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", `File to write the result to ("-" for stdout)`)
}

// Execute runs the command line with the given configuration and exports metrics when configured.
func Execute(conf *config.Config) error {
	appConfig = conf
	err := rootCmd.Execute()

	if conf.Metrics.TextfilePath != "" {
		if mErr := metrics.WriteTextfile(conf.Metrics.TextfilePath); mErr != nil {
			slog.Error("failed to export metrics", slog.Any("err", mErr), slog.String("path", conf.Metrics.TextfilePath))
		}
	}
	return err
}
