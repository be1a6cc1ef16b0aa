package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ErrInvalidCatalog is returned when the input document cannot be turned into products.
var ErrInvalidCatalog = errors.New("invalid catalog")

// CatalogDocument is the JSON envelope read and written by the commands.
type CatalogDocument struct {
	Products []ProductDocument `json:"products"`
}

// ProductDocument is the JSON form of a product. Prices are written as strings
// and accepted as strings or numbers.
type ProductDocument struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Category *model.Category     `json:"category"`
	Price    decimal.NullDecimal `json:"price"`
}

func decodeCatalog(r io.Reader) ([]model.Product, error) {
	var doc CatalogDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after catalog")
		}
		return nil, fmt.Errorf("%w: trailing data: %w", ErrInvalidCatalog, err)
	}

	products := make([]model.Product, 0, len(doc.Products))
	for i, pd := range doc.Products {
		product, err := toProduct(pd)
		if err != nil {
			return nil, fmt.Errorf("%w: product %d: %w", ErrInvalidCatalog, i, err)
		}
		products = append(products, product)
	}
	return products, nil
}

func toProduct(pd ProductDocument) (model.Product, error) {
	switch {
	case pd.ID == uuid.Nil:
		return model.Product{}, errors.New("id is required")
	case pd.Category == nil:
		return model.Product{}, errors.New("category is required")
	case !pd.Price.Valid:
		return model.Product{}, errors.New("price is required")
	}
	if err := model.ValidatePrecision(pd.Price.Decimal); err != nil {
		return model.Product{}, fmt.Errorf("price: %w", err)
	}
	return model.Product{
		ID:       pd.ID,
		Name:     pd.Name,
		Category: *pd.Category,
		Price:    pd.Price.Decimal,
	}, nil
}

func encodeCatalog(w io.Writer, products []model.Product) error {
	doc := CatalogDocument{Products: make([]ProductDocument, 0, len(products))}
	for _, p := range products {
		doc.Products = append(doc.Products, toProductDocument(p))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

func toProductDocument(p model.Product) ProductDocument {
	category := p.Category
	return ProductDocument{
		ID:       p.ID,
		Name:     p.Name,
		Category: &category,
		Price:    decimal.NewNullDecimal(p.Price),
	}
}

// readCatalog decodes the catalog from --input, or from the command's stdin when the path is empty or "-".
func readCatalog(cmd *cobra.Command) ([]model.Product, error) {
	if inputPath == "" || inputPath == "-" {
		return decodeCatalog(cmd.InOrStdin())
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return decodeCatalog(f)
}

// writeCatalog encodes the catalog to --output, or to the command's stdout when the path is empty or "-".
func writeCatalog(cmd *cobra.Command, products []model.Product) error {
	if outputPath == "" || outputPath == "-" {
		return encodeCatalog(cmd.OutOrStdout(), products)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := encodeCatalog(f, products); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}
