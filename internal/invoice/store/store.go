package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprovost/studiodesk/internal/invoice"
	"github.com/aprovost/studiodesk/internal/patch"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `
	i.invoice_number, i.invoice_date, i.description, i.subtotal_cents,
	i.tax_cents, i.total_due_cents, i.balance_due_cents,
	i.payment_received_cents, i.due_date, i.client_email
`

func scanInvoice(s scanner, extra ...any) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	dest := []any{
		&inv.Number, &inv.Date, &inv.Description, &inv.SubtotalCents,
		&inv.TaxCents, &inv.TotalDueCents, &inv.BalanceDueCents,
		&inv.PaymentReceivedCents, &inv.DueDate, &inv.ClientEmail,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	return &inv, nil
}

// CreateInvoice writes the header and every line item inside one
// transaction. Readers never observe a header without its lines.
func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning invoice create: %w", err)
	}
	defer tx.Rollback()

	headerQuery := `
		INSERT INTO invoice (
			invoice_number, invoice_date, description, subtotal_cents,
			tax_cents, total_due_cents, balance_due_cents,
			payment_received_cents, due_date, client_email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if _, err := tx.ExecContext(ctx, headerQuery,
		inv.Number,
		inv.Date,
		inv.Description,
		inv.SubtotalCents,
		inv.TaxCents,
		inv.TotalDueCents,
		inv.BalanceDueCents,
		inv.PaymentReceivedCents,
		inv.DueDate,
		inv.ClientEmail,
	); err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	lineQuery := `
		INSERT INTO invoice_line_item (invoice_number, product_id, quantity)
		VALUES ($1, $2, $3)
	`

	for _, line := range inv.Lines {
		if _, err := tx.ExecContext(ctx, lineQuery, inv.Number, line.ProductID, line.Quantity); err != nil {
			return fmt.Errorf("creating invoice line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing invoice create: %w", err)
	}

	return nil
}

func (s *Store) GetInvoiceDetails(ctx context.Context, number int64) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `,
			c.first_name || ' ' || c.last_name AS client_name,
			c.phone AS client_phone,
			c.street, c.city, c.state, c.zip
		FROM invoice i
		JOIN client c ON i.client_email = c.client_email
		WHERE i.invoice_number = $1`

	var info invoice.ClientInfo

	inv, err := scanInvoice(
		s.db.QueryRowContext(ctx, query, number),
		&info.Name, &info.Phone, &info.Street, &info.City, &info.State, &info.Zip,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	inv.Client = &info

	linesQuery := `
		SELECT il.invoice_number, il.product_id, il.quantity,
			p.product_name, p.sale_price_cents,
			il.quantity * p.sale_price_cents AS line_total_cents
		FROM invoice_line_item il
		JOIN product p ON il.product_id = p.product_id
		WHERE il.invoice_number = $1
		ORDER BY p.product_name
	`

	rows, err := s.db.QueryContext(ctx, linesQuery, number)
	if err != nil {
		return nil, fmt.Errorf("getting invoice lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line invoice.LineItem
		if err := rows.Scan(
			&line.InvoiceNumber, &line.ProductID, &line.Quantity,
			&line.ProductName, &line.SalePriceCents, &line.LineTotalCents,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice line: %w", err)
		}

		inv.Lines = append(inv.Lines, line)
		inv.LinesTotalCents += line.LineTotalCents
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice lines: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `,
			c.first_name || ' ' || c.last_name AS client_name,
			c.phone AS client_phone
		FROM invoice i
		JOIN client c ON i.client_email = c.client_email
		ORDER BY i.invoice_date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		var info invoice.ClientInfo

		inv, err := scanInvoice(rows, &info.Name, &info.Phone)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		inv.Client = &info
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}

// RecordPayment adds to the received amount and recomputes the balance
// in the same statement, keeping balance = totalDue - paymentReceived
// without a read-modify-write round trip.
func (s *Store) RecordPayment(ctx context.Context, number, amountCents int64) error {
	query := `
		UPDATE invoice
		SET payment_received_cents = payment_received_cents + $1,
			balance_due_cents = total_due_cents - (payment_received_cents + $1)
		WHERE invoice_number = $2
	`

	res, err := s.db.ExecContext(ctx, query, amountCents, number)
	if err != nil {
		return fmt.Errorf("recording payment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recording payment: %w", err)
	}

	if affected == 0 {
		return invoice.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateInvoice(ctx context.Context, number int64, fields []patch.Field) error {
	query, args := invoice.PatchSpec.Build(fields, number)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	if affected == 0 {
		return invoice.ErrNotFound
	}

	return nil
}
