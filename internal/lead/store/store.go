package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprovost/studiodesk/internal/lead"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateLead(ctx context.Context, l *lead.Lead) error {
	query := `
		INSERT INTO marketing_lead (email, interests, signed_up)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.ExecContext(ctx, query, l.Email, l.Interests, l.SignedUp)
	if err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}

	return nil
}

func (s *Store) GetLead(ctx context.Context, email string) (*lead.Lead, error) {
	query := `
		SELECT ml.email, ml.interests, ml.signed_up, c.client_email
		FROM marketing_lead ml
		LEFT JOIN client c ON c.marketing_lead_email = ml.email
		WHERE ml.email = $1
	`

	var (
		l           lead.Lead
		convertedTo sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&l.Email, &l.Interests, &l.SignedUp, &convertedTo,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, lead.ErrNotFound
		}

		return nil, fmt.Errorf("getting lead: %w", err)
	}

	if convertedTo.Valid {
		l.ConvertedTo = &convertedTo.String
	}

	return &l, nil
}

func (s *Store) ListLeads(ctx context.Context) ([]*lead.Lead, error) {
	query := `
		SELECT ml.email, ml.interests, ml.signed_up, c.client_email
		FROM marketing_lead ml
		LEFT JOIN client c ON c.marketing_lead_email = ml.email
		ORDER BY ml.signed_up DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []*lead.Lead

	for rows.Next() {
		var (
			l           lead.Lead
			convertedTo sql.NullString
		)

		if err := rows.Scan(&l.Email, &l.Interests, &l.SignedUp, &convertedTo); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}

		if convertedTo.Valid {
			l.ConvertedTo = &convertedTo.String
		}

		leads = append(leads, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lead rows: %w", err)
	}

	return leads, nil
}

// ImportLeads inserts the batch in a single transaction. Emails already
// present are skipped rather than failing the whole import.
func (s *Store) ImportLeads(ctx context.Context, leads []*lead.Lead) (int, []string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO marketing_lead (email, interests, signed_up)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
	`

	var (
		imported int
		skipped  []string
	)

	for _, l := range leads {
		res, err := tx.ExecContext(ctx, query, l.Email, l.Interests, l.SignedUp)
		if err != nil {
			return 0, nil, fmt.Errorf("importing lead %s: %w", l.Email, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return 0, nil, fmt.Errorf("importing lead %s: %w", l.Email, err)
		}

		if affected == 0 {
			skipped = append(skipped, l.Email)
			continue
		}

		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("committing import transaction: %w", err)
	}

	return imported, skipped, nil
}
