package product

import "github.com/aprovost/studiodesk/internal/product"

type productResponse struct {
	ID            string                `json:"productId"`
	Name          string                `json:"productName"`
	CostPrice     int64                 `json:"costPrice"`
	SalePrice     int64                 `json:"salePrice"`
	StockLevel    int                   `json:"stockLevel"`
	Supplier      string                `json:"supplier"`
	StockStatus   product.StockStatus   `json:"stockStatus"`
	ReorderStatus product.ReorderStatus `json:"reorderStatus"`
	TotalSold     int                   `json:"totalSold"`
	TimesSold     int                   `json:"timesSold,omitempty"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		CostPrice:     p.CostPriceCents,
		SalePrice:     p.SalePriceCents,
		StockLevel:    p.StockLevel,
		Supplier:      p.Supplier,
		StockStatus:   product.DeriveStockStatus(p.StockLevel),
		ReorderStatus: product.DeriveReorderStatus(p.StockLevel),
		TotalSold:     p.TotalSold,
		TimesSold:     p.TimesSold,
	}
}

func toResponseList(products []*product.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	return resp
}
