package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCatalog(t *testing.T) {
	t.Run("should decode numbers and strings as exact prices", func(t *testing.T) {
		// when
		products, err := decodeCatalog(strings.NewReader(catalogJSON))

		// then
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000001"), products[0].ID)
		assert.Equal(t, "some food", products[0].Name)
		assert.Equal(t, model.Food, products[0].Category)
		assert.True(t, decimal.RequireFromString("5.5").Equal(products[0].Price))
		assert.True(t, decimal.RequireFromString("6.99").Equal(products[1].Price))
		assert.Equal(t, model.Clothing, products[3].Category)
	})

	t.Run("should accept trailing whitespace", func(t *testing.T) {
		products, err := decodeCatalog(strings.NewReader("{\"products\":[]}\n\n"))

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("should decode empty catalog", func(t *testing.T) {
		products, err := decodeCatalog(strings.NewReader(`{"products":[]}`))

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	tests := []struct {
		name  string
		input string
	}{
		{"malformed JSON", `{"products":[`},
		{"unknown category", `{"products":[{"id":"00000000-0000-0000-0000-000000000001","name":"x","category":"Toys","price":"1"}]}`},
		{"missing category", `{"products":[{"id":"00000000-0000-0000-0000-000000000001","name":"x","price":"1"}]}`},
		{"missing id", `{"products":[{"name":"x","category":"Food","price":"1"}]}`},
		{"invalid id", `{"products":[{"id":"nope","name":"x","category":"Food","price":"1"}]}`},
		{"missing price", `{"products":[{"id":"00000000-0000-0000-0000-000000000001","name":"x","category":"Food"}]}`},
		{"null price", `{"products":[{"id":"00000000-0000-0000-0000-000000000001","name":"x","category":"Food","price":null}]}`},
		{"invalid price", `{"products":[{"id":"00000000-0000-0000-0000-000000000001","name":"x","category":"Food","price":"cheap"}]}`},
		{"price exponent too small", `{"products":[{"id":"00000000-0000-0000-0000-000000000001","name":"x","category":"Food","price":"1e-2147483648"}]}`},
		{"price exponent too large", `{"products":[{"id":"00000000-0000-0000-0000-000000000001","name":"x","category":"Food","price":1e100}]}`},
		{"trailing data", `{"products":[]} {"products":[{"id":"x"}]} garbage`},
		{"second catalog", `{"products":[]}{"products":[]}`},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			products, err := decodeCatalog(strings.NewReader(tt.input))

			assert.ErrorIs(t, err, ErrInvalidCatalog)
			assert.Nil(t, products)
		})
	}
}

func TestEncodeCatalog(t *testing.T) {
	// given
	products := []model.Product{{
		ID:       uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		Name:     "some other food",
		Category: model.Food,
		Price:    decimal.RequireFromString("3.495"),
	}}
	var buf bytes.Buffer

	// when
	err := encodeCatalog(&buf, products)

	// then
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[{
		"id":"00000000-0000-0000-0000-000000000002",
		"name":"some other food",
		"category":"Food",
		"price":"3.495"
	}]}`, buf.String())
}

func TestEncodeCatalog_EmptyWritesEmptyArray(t *testing.T) {
	var buf bytes.Buffer

	err := encodeCatalog(&buf, nil)

	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "[]", string(doc["products"]))
}
