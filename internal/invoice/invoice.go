package invoice

import (
	"errors"
	"time"

	"github.com/aprovost/studiodesk/internal/patch"
)

var ErrNotFound = errors.New("invoice not found")

// Status is the invoice's payment label, derived at read time. Never
// persisted.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
	StatusPending Status = "pending"
)

// Invoice represents a billed amount against a client. The invoice
// number is the caller-supplied identity. All amounts are cents.
type Invoice struct {
	Number               int64
	Date                 time.Time
	Description          string
	SubtotalCents        int64
	TaxCents             int64
	TotalDueCents        int64
	BalanceDueCents      int64
	PaymentReceivedCents int64
	DueDate              *time.Time
	ClientEmail          string

	Client          *ClientInfo // Loaded via JOIN
	Lines           []LineItem  // detail view only
	LinesTotalCents int64
}

// ClientInfo carries the joined client columns.
type ClientInfo struct {
	Name   string
	Phone  string
	Street string
	City   string
	State  string
	Zip    string
}

// LineItem is one product line on an invoice. The line total is
// quantity times the product's current sale price, computed at read
// time rather than stored.
type LineItem struct {
	InvoiceNumber  int64
	ProductID      string
	Quantity       int
	ProductName    string
	SalePriceCents int64
	LineTotalCents int64
}

// DeriveStatus classifies an invoice: settled balance wins regardless
// of the due date, then a passed due date means overdue, else pending.
func DeriveStatus(balanceCents int64, dueDate *time.Time, now time.Time) Status {
	if balanceCents == 0 {
		return StatusPaid
	}

	if dueDate != nil && dueDate.Before(now) {
		return StatusOverdue
	}

	return StatusPending
}

// PatchSpec is the allow-list for partial invoice updates.
var PatchSpec = patch.Spec{
	Table:     "invoice",
	KeyColumn: "invoice_number",
	Columns: map[string]string{
		"invoiceDate":     "invoice_date",
		"description":     "description",
		"subtotal":        "subtotal_cents",
		"tax":             "tax_cents",
		"totalDue":        "total_due_cents",
		"balanceDue":      "balance_due_cents",
		"paymentReceived": "payment_received_cents",
		"dueDate":         "due_date",
		"clientEmail":     "client_email",
	},
}
