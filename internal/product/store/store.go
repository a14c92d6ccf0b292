package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectProductColumns = `
	p.product_id, p.product_name, p.cost_price_cents, p.sale_price_cents,
	p.stock_level, p.supplier
`

func scanProduct(s scanner, extra ...any) (*product.Product, error) {
	var p product.Product

	dest := []any{
		&p.ID, &p.Name, &p.CostPriceCents, &p.SalePriceCents,
		&p.StockLevel, &p.Supplier,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO product (
			product_id, product_name, cost_price_cents, sale_price_cents,
			stock_level, supplier
		)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.CostPriceCents,
		p.SalePriceCents,
		p.StockLevel,
		p.Supplier,
	)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `,
			(SELECT COUNT(DISTINCT il.invoice_number)
			 FROM invoice_line_item il
			 WHERE il.product_id = p.product_id) AS times_sold
		FROM product p
		WHERE p.product_id = $1`

	var timesSold int

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id), &timesSold)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	p.TimesSold = timesSold

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `,
			COALESCE((SELECT SUM(il.quantity)
			 FROM invoice_line_item il
			 WHERE il.product_id = p.product_id), 0) AS total_sold
		FROM product p
		ORDER BY p.product_name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		var totalSold int

		p, err := scanProduct(rows, &totalSold)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		p.TotalSold = totalSold
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

// ListLowStock returns products under the reorder threshold, emptiest
// first.
func (s *Store) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM product p
		WHERE p.stock_level < 10
		ORDER BY p.stock_level`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing low stock products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, fields []patch.Field) error {
	query, args := product.PatchSpec.Build(fields, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	if affected == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *Store) AdjustStock(ctx context.Context, id string, delta int) error {
	query := `
		UPDATE product
		SET stock_level = stock_level + $1
		WHERE product_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjusting stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjusting stock: %w", err)
	}

	if affected == 0 {
		return product.ErrNotFound
	}

	return nil
}
