package service

import (
	"slices"
	"strings"

	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/shopspring/decimal"
)

// CatalogService transforms product collections. It holds no state and never
// mutates its input, so a single instance can be shared between goroutines.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// ApplyDiscount returns a new collection where every price is reduced by
// price*discount using exact decimal arithmetic. The discount is not range
// checked; callers that need [0, 1] enforced use model.ValidateDiscount first.
func (cs *CatalogService) ApplyDiscount(products []model.Product, discount decimal.Decimal) []model.Product {
	discounted := make([]model.Product, 0, len(products))
	for _, p := range products {
		discounted = append(discounted, p.WithPrice(p.Price.Sub(p.Price.Mul(discount))))
	}
	return discounted
}

// FilterByCategory returns the products whose category matches filter, ignoring
// ASCII case. A blank filter or one that names no category returns the whole
// collection.
func (cs *CatalogService) FilterByCategory(products []model.Product, filter string) []model.Product {
	if strings.TrimSpace(filter) == "" {
		return slices.Clone(products)
	}
	category, ok := model.ParseCategory(filter)
	if !ok {
		return slices.Clone(products)
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
