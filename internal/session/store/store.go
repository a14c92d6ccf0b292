package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/session"
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

const selectSessionColumns = `
	ps.session_id, ps.session_type, ps.session_date, ps.start_time,
	ps.end_time, ps.location, ps.package_name, ps.fee_cents,
	ps.deposit_paid, ps.notes, ps.client_email
`

// scanSession reads the base session columns plus any joined extras the
// query appends, in one Scan call.
func scanSession(s scanner, extra ...any) (*session.Session, error) {
	var sess session.Session

	dest := []any{
		&sess.ID, &sess.Type, &sess.Date, &sess.StartTime,
		&sess.EndTime, &sess.Location, &sess.PackageName, &sess.FeeCents,
		&sess.DepositPaid, &sess.Notes, &sess.ClientEmail,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	return &sess, nil
}

// CreateSession inserts the session and bumps the client's last session
// date. Both statements commit together or not at all.
func (s *Store) CreateSession(ctx context.Context, sess *session.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning session create: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO photo_session (
			session_id, session_type, session_date, start_time, end_time,
			location, package_name, fee_cents, deposit_paid, notes, client_email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if _, err := tx.ExecContext(ctx, insertQuery,
		sess.ID,
		sess.Type,
		sess.Date,
		sess.StartTime,
		sess.EndTime,
		sess.Location,
		sess.PackageName,
		sess.FeeCents,
		sess.DepositPaid,
		sess.Notes,
		sess.ClientEmail,
	); err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	bumpQuery := `
		UPDATE client
		SET last_session_date = $1
		WHERE client_email = $2
	`
	if _, err := tx.ExecContext(ctx, bumpQuery, sess.Date, sess.ClientEmail); err != nil {
		return fmt.Errorf("updating client last session date: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session create: %w", err)
	}

	return nil
}

func (s *Store) GetSession(ctx context.Context, id string) (*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + `,
			c.first_name || ' ' || c.last_name AS client_name,
			c.phone AS client_phone,
			c.street, c.city, c.state, c.zip
		FROM photo_session ps
		JOIN client c ON ps.client_email = c.client_email
		WHERE ps.session_id = $1`

	var info session.ClientInfo

	sess, err := scanSession(
		s.db.QueryRowContext(ctx, query, id),
		&info.Name, &info.Phone, &info.Street, &info.City, &info.State, &info.Zip,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, session.ErrNotFound
		}

		return nil, fmt.Errorf("getting session: %w", err)
	}

	info.Email = sess.ClientEmail
	sess.Client = &info

	staffQuery := `
		SELECT psa.session_id, psa.staff_email, psa.role,
			st.first_name || ' ' || st.last_name AS staff_name,
			st.role AS staff_main_role
		FROM photo_session_assignment psa
		JOIN staff st ON psa.staff_email = st.staff_email
		WHERE psa.session_id = $1
		ORDER BY psa.role
	`

	rows, err := s.db.QueryContext(ctx, staffQuery, id)
	if err != nil {
		return nil, fmt.Errorf("getting session staff: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a session.Assignment
		if err := rows.Scan(&a.SessionID, &a.StaffEmail, &a.Role, &a.StaffName, &a.StaffRole); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}

		sess.AssignedStaff = append(sess.AssignedStaff, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignment rows: %w", err)
	}

	return sess, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + `,
			c.first_name || ' ' || c.last_name AS client_name,
			c.phone AS client_phone,
			(SELECT COUNT(*) FROM photo_session_assignment psa
			 WHERE psa.session_id = ps.session_id) AS staff_assigned
		FROM photo_session ps
		JOIN client c ON ps.client_email = c.client_email
		ORDER BY ps.session_date DESC, ps.start_time`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*session.Session

	for rows.Next() {
		var (
			info          session.ClientInfo
			staffAssigned int
		)

		sess, err := scanSession(rows, &info.Name, &info.Phone, &staffAssigned)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		info.Email = sess.ClientEmail
		sess.Client = &info
		sess.StaffAssigned = staffAssigned

		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}

	return sessions, nil
}

func (s *Store) ListSessionsInRange(ctx context.Context, start, end time.Time) ([]*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + `,
			c.first_name || ' ' || c.last_name AS client_name,
			c.phone AS client_phone,
			COALESCE((SELECT STRING_AGG(st.first_name || ' ' || st.last_name, ', ' ORDER BY psa.role)
			 FROM photo_session_assignment psa
			 JOIN staff st ON psa.staff_email = st.staff_email
			 WHERE psa.session_id = ps.session_id), '') AS staff_names
		FROM photo_session ps
		JOIN client c ON ps.client_email = c.client_email
		WHERE ps.session_date BETWEEN $1 AND $2
		ORDER BY ps.session_date, ps.start_time`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing sessions in range: %w", err)
	}
	defer rows.Close()

	var sessions []*session.Session

	for rows.Next() {
		var (
			info       session.ClientInfo
			staffNames string
		)

		sess, err := scanSession(rows, &info.Name, &info.Phone, &staffNames)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		info.Email = sess.ClientEmail
		sess.Client = &info
		sess.StaffNames = staffNames

		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}

	return sessions, nil
}

func (s *Store) ListSessionsForClient(ctx context.Context, email string) ([]*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + `,
			(SELECT COUNT(*) FROM photo_session_assignment psa
			 WHERE psa.session_id = ps.session_id) AS staff_count
		FROM photo_session ps
		WHERE ps.client_email = $1
		ORDER BY ps.session_date DESC`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listing client sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*session.Session

	for rows.Next() {
		var staffCount int

		sess, err := scanSession(rows, &staffCount)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		sess.StaffAssigned = staffCount
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}

	return sessions, nil
}

func (s *Store) UpdateSession(ctx context.Context, id string, fields []patch.Field) error {
	query, args := session.PatchSpec.Build(fields, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}

	if affected == 0 {
		return session.ErrNotFound
	}

	return nil
}

func (s *Store) AssignStaff(ctx context.Context, sessionID, staffEmail, role string) error {
	query := `
		INSERT INTO photo_session_assignment (session_id, staff_email, role)
		VALUES ($1, $2, $3)
	`

	if _, err := s.db.ExecContext(ctx, query, sessionID, staffEmail, role); err != nil {
		return fmt.Errorf("assigning staff: %w", err)
	}

	return nil
}
