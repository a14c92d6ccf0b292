package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprovost/studiodesk/internal/client"
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

const selectClientColumns = `
	c.client_email, c.first_name, c.last_name, c.phone, c.street, c.city,
	c.state, c.zip, c.lead_source, c.managed_by_staff_email,
	c.marketing_lead_email, c.last_session_date
`

// scanClient reads the base client columns. Joined manager/lead columns
// are scanned by the callers that select them.
func scanClient(s scanner, extra ...any) (*client.Client, error) {
	var c client.Client

	dest := []any{
		&c.Email, &c.FirstName, &c.LastName, &c.Phone, &c.Street, &c.City,
		&c.State, &c.Zip, &c.LeadSource, &c.ManagerEmail,
		&c.MarketingLeadEmail, &c.LastSessionDate,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO client (
			client_email, first_name, last_name, phone, street, city, state,
			zip, lead_source, managed_by_staff_email, marketing_lead_email,
			last_session_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULL)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Email,
		c.FirstName,
		c.LastName,
		c.Phone,
		c.Street,
		c.City,
		c.State,
		c.Zip,
		c.LeadSource,
		c.ManagerEmail,
		c.MarketingLeadEmail,
	)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, email string) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `,
			st.first_name || ' ' || st.last_name AS manager_name,
			st.role AS manager_role,
			st.phone AS manager_phone
		FROM client c
		LEFT JOIN staff st ON c.managed_by_staff_email = st.staff_email
		WHERE c.client_email = $1`

	var managerName, managerRole, managerPhone sql.NullString

	c, err := scanClient(
		s.db.QueryRowContext(ctx, query, email),
		&managerName, &managerRole, &managerPhone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	if managerName.Valid {
		c.Manager = &client.Manager{
			Name:  managerName.String,
			Role:  managerRole.String,
			Phone: managerPhone.String,
		}
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `,
			st.first_name || ' ' || st.last_name AS manager_name,
			st.role AS manager_role,
			ml.interests AS lead_interests,
			ml.signed_up AS lead_signed_up
		FROM client c
		LEFT JOIN staff st ON c.managed_by_staff_email = st.staff_email
		LEFT JOIN marketing_lead ml ON c.marketing_lead_email = ml.email
		ORDER BY c.last_name, c.first_name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		var (
			managerName, managerRole, leadInterests sql.NullString
			leadSignedUp                            sql.NullTime
		)

		c, err := scanClient(rows, &managerName, &managerRole, &leadInterests, &leadSignedUp)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		if managerName.Valid {
			c.Manager = &client.Manager{Name: managerName.String, Role: managerRole.String}
		}

		if leadInterests.Valid {
			lead := &client.Lead{Interests: leadInterests.String}
			if leadSignedUp.Valid {
				lead.SignedUp = &leadSignedUp.Time
			}

			c.Lead = lead
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

// UpdateClient applies a pre-validated field list through the patch
// builder. Zero rows affected means the client does not exist.
func (s *Store) UpdateClient(ctx context.Context, email string, fields []patch.Field) error {
	query, args := client.PatchSpec.Build(fields, email)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	if affected == 0 {
		return client.ErrNotFound
	}

	return nil
}
