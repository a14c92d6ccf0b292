package invoice

import (
	"context"
	"time"

	"github.com/aprovost/studiodesk/internal/patch"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	// CreateInvoice inserts the header and all line items in one
	// transaction; any failure rolls the whole invoice back.
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoiceDetails(ctx context.Context, number int64) (*Invoice, error)
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	// RecordPayment increments payment received and recomputes the
	// balance in a single statement.
	RecordPayment(ctx context.Context, number, amountCents int64) error
	UpdateInvoice(ctx context.Context, number int64, fields []patch.Field) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type LineParams struct {
	ProductID string
	Quantity  int
}

type CreateParams struct {
	Number               int64
	Date                 time.Time
	Description          string
	SubtotalCents        int64
	TaxCents             int64
	TotalDueCents        int64
	BalanceDueCents      *int64 // defaults to totalDue - paymentReceived
	PaymentReceivedCents int64
	DueDate              *time.Time
	ClientEmail          string
	Lines                []LineParams
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	balance := params.TotalDueCents - params.PaymentReceivedCents
	if params.BalanceDueCents != nil {
		balance = *params.BalanceDueCents
	}

	inv := &Invoice{
		Number:               params.Number,
		Date:                 params.Date,
		Description:          params.Description,
		SubtotalCents:        params.SubtotalCents,
		TaxCents:             params.TaxCents,
		TotalDueCents:        params.TotalDueCents,
		BalanceDueCents:      balance,
		PaymentReceivedCents: params.PaymentReceivedCents,
		DueDate:              params.DueDate,
		ClientEmail:          params.ClientEmail,
	}

	for _, line := range params.Lines {
		inv.Lines = append(inv.Lines, LineItem{
			InvoiceNumber: params.Number,
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
		})
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Details(ctx context.Context, number int64) (*Invoice, error) {
	return s.repo.GetInvoiceDetails(ctx, number)
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

func (s *Service) RecordPayment(ctx context.Context, number, amountCents int64) error {
	return s.repo.RecordPayment(ctx, number, amountCents)
}

func (s *Service) Update(ctx context.Context, number int64, kvs []patch.KV) error {
	fields, err := PatchSpec.Map(kvs)
	if err != nil {
		return err
	}

	return s.repo.UpdateInvoice(ctx, number, fields)
}
