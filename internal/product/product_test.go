package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aprovost/studiodesk/internal/product"
)

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		stock int
		want  product.StockStatus
	}{
		{0, product.StockLow},
		{5, product.StockLow},
		{6, product.StockMedium},
		{20, product.StockMedium},
		{21, product.StockHigh},
		{100, product.StockHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, product.DeriveStockStatus(tt.stock), "stock=%d", tt.stock)
	}
}

// The reorder report uses its own thresholds; the two rules are
// intentionally not the same.
func TestDeriveReorderStatus(t *testing.T) {
	tests := []struct {
		stock int
		want  product.ReorderStatus
	}{
		{0, product.ReorderOutOfStock},
		{1, product.ReorderNeeded},
		{10, product.ReorderNeeded},
		{11, product.ReorderOK},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, product.DeriveReorderStatus(tt.stock), "stock=%d", tt.stock)
	}
}

func TestStatusRulesDiverge(t *testing.T) {
	// stock of 8: medium on the inventory-alert view, reorder on the
	// reorder report.
	assert.Equal(t, product.StockMedium, product.DeriveStockStatus(8))
	assert.Equal(t, product.ReorderNeeded, product.DeriveReorderStatus(8))
}
