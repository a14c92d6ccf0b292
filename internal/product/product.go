package product

import (
	"errors"

	"github.com/aprovost/studiodesk/internal/patch"
)

var ErrNotFound = errors.New("product not found")

// StockStatus is the inventory-alert label shown on the product list.
type StockStatus string

const (
	StockLow    StockStatus = "low"
	StockMedium StockStatus = "medium"
	StockHigh   StockStatus = "high"
)

// ReorderStatus is the label used by the reorder report. Its thresholds
// differ from the inventory-alert ones on purpose; the two views were
// never reconciled and both are kept as-is.
type ReorderStatus string

const (
	ReorderOutOfStock ReorderStatus = "out-of-stock"
	ReorderNeeded     ReorderStatus = "reorder"
	ReorderOK         ReorderStatus = "ok"
)

// Product is a sellable item identified by its SKU. Prices are cents.
type Product struct {
	ID             string // SKU
	Name           string
	CostPriceCents int64
	SalePriceCents int64
	StockLevel     int
	Supplier       string

	TotalSold int // correlated sum over line items
	TimesSold int // correlated count of invoices carrying the product
}

// DeriveStockStatus buckets stock for the inventory-alert view.
func DeriveStockStatus(stock int) StockStatus {
	switch {
	case stock <= 5:
		return StockLow
	case stock <= 20:
		return StockMedium
	default:
		return StockHigh
	}
}

// DeriveReorderStatus buckets stock for the reorder report.
func DeriveReorderStatus(stock int) ReorderStatus {
	switch {
	case stock == 0:
		return ReorderOutOfStock
	case stock <= 10:
		return ReorderNeeded
	default:
		return ReorderOK
	}
}

// PatchSpec is the allow-list for partial product updates. Stock is
// also adjustable relatively through the stock endpoint.
var PatchSpec = patch.Spec{
	Table:     "product",
	KeyColumn: "product_id",
	Columns: map[string]string{
		"productName": "product_name",
		"costPrice":   "cost_price_cents",
		"salePrice":   "sale_price_cents",
		"stockLevel":  "stock_level",
		"supplier":    "supplier",
	},
}
