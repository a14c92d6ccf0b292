package invoice

import (
	"time"

	"github.com/aprovost/studiodesk/internal/invoice"
)

type invoiceResponse struct {
	Number          int64               `json:"invoiceNumber"`
	Date            string              `json:"invoiceDate"`
	Description     string              `json:"description"`
	Subtotal        int64               `json:"subtotal"`
	Tax             int64               `json:"tax"`
	TotalDue        int64               `json:"totalDue"`
	BalanceDue      int64               `json:"balanceDue"`
	PaymentReceived int64               `json:"paymentReceived"`
	DueDate         *string             `json:"dueDate,omitempty"`
	ClientEmail     string              `json:"clientEmail"`
	Status          invoice.Status      `json:"status"`
	Client          *clientInfoResponse `json:"client,omitempty"`
	Lines           []lineItemResponse  `json:"lineItems,omitempty"`
	LinesTotal      int64               `json:"lineItemsTotal,omitempty"`
}

type clientInfoResponse struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

type lineItemResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	SalePrice   int64  `json:"salePrice"`
	LineTotal   int64  `json:"lineTotal"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	resp := invoiceResponse{
		Number:          inv.Number,
		Date:            inv.Date.Format(time.DateOnly),
		Description:     inv.Description,
		Subtotal:        inv.SubtotalCents,
		Tax:             inv.TaxCents,
		TotalDue:        inv.TotalDueCents,
		BalanceDue:      inv.BalanceDueCents,
		PaymentReceived: inv.PaymentReceivedCents,
		ClientEmail:     inv.ClientEmail,
		Status:          invoice.DeriveStatus(inv.BalanceDueCents, inv.DueDate, time.Now()),
		LinesTotal:      inv.LinesTotalCents,
	}

	if inv.DueDate != nil {
		s := inv.DueDate.Format(time.DateOnly)
		resp.DueDate = &s
	}

	if inv.Client != nil {
		resp.Client = &clientInfoResponse{
			Name:   inv.Client.Name,
			Phone:  inv.Client.Phone,
			Street: inv.Client.Street,
			City:   inv.Client.City,
			State:  inv.Client.State,
			Zip:    inv.Client.Zip,
		}
	}

	for _, l := range inv.Lines {
		resp.Lines = append(resp.Lines, lineItemResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			SalePrice:   l.SalePriceCents,
			LineTotal:   l.LineTotalCents,
		})
	}

	return resp
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}
