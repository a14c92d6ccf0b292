package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprovost/studiodesk/internal/search"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SearchClients(ctx context.Context, term string) ([]search.Hit, error) {
	query := `
		SELECT client_email,
			first_name || ' ' || last_name AS name,
			client_email
		FROM client
		WHERE first_name ILIKE $1
		   OR last_name ILIKE $1
		   OR client_email ILIKE $1
		LIMIT 10
	`

	return s.collectHits(ctx, query, "Client", "%"+term+"%")
}

func (s *Store) SearchSessions(ctx context.Context, term string) ([]search.Hit, error) {
	query := `
		SELECT session_id,
			session_type || ' Session' AS name,
			to_char(session_date, 'YYYY-MM-DD')
		FROM photo_session
		WHERE session_type ILIKE $1
		   OR location ILIKE $1
		LIMIT 10
	`

	return s.collectHits(ctx, query, "Session", "%"+term+"%")
}

func (s *Store) SearchInvoices(ctx context.Context, term string) ([]search.Hit, error) {
	query := `
		SELECT invoice_number::text,
			'Invoice #' || invoice_number AS name,
			to_char(invoice_date, 'YYYY-MM-DD')
		FROM invoice
		WHERE invoice_number::text LIKE $1
		LIMIT 10
	`

	return s.collectHits(ctx, query, "Invoice", "%"+term+"%")
}

// collectHits runs a three-column (id, name, info) query and tags each
// row with the entity type.
func (s *Store) collectHits(ctx context.Context, query, entityType string, term string) ([]search.Hit, error) {
	rows, err := s.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("searching %ss: %w", entityType, err)
	}
	defer rows.Close()

	var hits []search.Hit

	for rows.Next() {
		h := search.Hit{Type: entityType}

		if err := rows.Scan(&h.ID, &h.Name, &h.Info); err != nil {
			return nil, fmt.Errorf("scanning %s hit: %w", entityType, err)
		}

		hits = append(hits, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s hits: %w", entityType, err)
	}

	return hits, nil
}
