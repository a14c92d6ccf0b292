package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/staff"
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

const selectStaffColumns = `
	s.staff_email, s.first_name, s.last_name, s.role, s.phone,
	s.hire_date, s.pay_rate_cents, s.street, s.city, s.state, s.zip
`

// scanStaff expects the base columns followed by the two correlated
// counts every staff query selects.
func scanStaff(sc scanner) (*staff.Staff, error) {
	var st staff.Staff

	if err := sc.Scan(
		&st.Email, &st.FirstName, &st.LastName, &st.Role, &st.Phone,
		&st.HireDate, &st.PayRateCents, &st.Street, &st.City, &st.State, &st.Zip,
		&st.ClientsManaged, &st.SessionsAssigned,
	); err != nil {
		return nil, err
	}

	return &st, nil
}

func (s *Store) CreateStaff(ctx context.Context, st *staff.Staff) error {
	query := `
		INSERT INTO staff (
			staff_email, first_name, last_name, role, phone, hire_date,
			pay_rate_cents, street, city, state, zip
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.ExecContext(ctx, query,
		st.Email,
		st.FirstName,
		st.LastName,
		st.Role,
		st.Phone,
		st.HireDate,
		st.PayRateCents,
		st.Street,
		st.City,
		st.State,
		st.Zip,
	)
	if err != nil {
		return fmt.Errorf("creating staff: %w", err)
	}

	return nil
}

func (s *Store) GetStaff(ctx context.Context, email string) (*staff.Staff, error) {
	query := `SELECT ` + selectStaffColumns + `,
			(SELECT COUNT(*) FROM client c
			 WHERE c.managed_by_staff_email = s.staff_email) AS clients_managed,
			(SELECT COUNT(*) FROM photo_session_assignment psa
			 WHERE psa.staff_email = s.staff_email) AS sessions_assigned
		FROM staff s
		WHERE s.staff_email = $1`

	st, err := scanStaff(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, staff.ErrNotFound
		}

		return nil, fmt.Errorf("getting staff: %w", err)
	}

	return st, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]*staff.Staff, error) {
	query := `SELECT ` + selectStaffColumns + `,
			(SELECT COUNT(*) FROM client c
			 WHERE c.managed_by_staff_email = s.staff_email) AS clients_managed,
			(SELECT COUNT(*) FROM photo_session_assignment psa
			 WHERE psa.staff_email = s.staff_email) AS sessions_assigned
		FROM staff s
		ORDER BY s.role, s.last_name, s.first_name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var members []*staff.Staff

	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning staff: %w", err)
		}

		members = append(members, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff rows: %w", err)
	}

	return members, nil
}

func (s *Store) UpdateStaff(ctx context.Context, email string, fields []patch.Field) error {
	query, args := staff.PatchSpec.Build(fields, email)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating staff: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating staff: %w", err)
	}

	if affected == 0 {
		return staff.ErrNotFound
	}

	return nil
}

func (s *Store) ListAssignments(ctx context.Context, email string) ([]staff.Assignment, error) {
	query := `
		SELECT psa.session_id, psa.staff_email, psa.role,
			ps.session_type, ps.session_date, ps.location,
			c.first_name || ' ' || c.last_name AS client_name
		FROM photo_session_assignment psa
		JOIN photo_session ps ON psa.session_id = ps.session_id
		JOIN client c ON ps.client_email = c.client_email
		WHERE psa.staff_email = $1
		ORDER BY ps.session_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []staff.Assignment

	for rows.Next() {
		var a staff.Assignment
		if err := rows.Scan(
			&a.SessionID, &a.StaffEmail, &a.Role,
			&a.SessionType, &a.SessionDate, &a.Location, &a.ClientName,
		); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}

		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignment rows: %w", err)
	}

	return assignments, nil
}
