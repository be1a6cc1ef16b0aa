package cli

import (
	"fmt"
	"log/slog"

	"github.com/iyhunko/catalog-transformer/internal/metrics"
	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var discountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Apply a proportional discount to every product",
	Long: `Multiplies every price by (1 - discount) using exact decimal arithmetic.

Without --discount the DEFAULT_DISCOUNT setting is used. Discounts outside [0, 1]
are rejected unless DISCOUNT_STRICT=false, in which case they are applied as given.`,
	Args: cobra.NoArgs,
	RunE: runDiscount,
}

// discountValue is the raw --discount flag.
var discountValue string

func init() {
	discountCmd.Flags().StringVarP(&discountValue, "discount", "d", "", "Discount fraction, e.g. 0.25 for 25% off")
	rootCmd.AddCommand(discountCmd)
}

func runDiscount(cmd *cobra.Command, _ []string) error {
	discount, err := resolveDiscount(discountValue)
	if err != nil {
		return err
	}

	products, err := readCatalog(cmd)
	if err != nil {
		return err
	}

	discounted := transformer.ApplyDiscount(products, discount)
	metrics.ProductsDiscounted.Add(float64(len(discounted)))
	slog.Info("discount applied", slog.String("discount", discount.String()), slog.Int("products", len(discounted)))

	return writeCatalog(cmd, discounted)
}

// resolveDiscount parses the flag value, falling back to the configured default,
// and applies the configured range policy.
func resolveDiscount(raw string) (decimal.Decimal, error) {
	discount := appConfig.Discount.Default
	if raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid discount %q: %w", raw, err)
		}
		discount = parsed
	}
	if err := model.ValidatePrecision(discount); err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid discount: %w", err)
	}

	if err := model.ValidateDiscount(discount); err != nil {
		if appConfig.Discount.Strict {
			return decimal.Decimal{}, err
		}
		slog.Warn("applying discount outside [0, 1]", slog.String("discount", discount.String()))
	}
	return discount, nil
}
