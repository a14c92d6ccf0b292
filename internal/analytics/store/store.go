package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprovost/studiodesk/internal/analytics"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DashboardStats gathers all six counters in one round trip.
func (s *Store) DashboardStats(ctx context.Context) (*analytics.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM client) AS total_clients,
			(SELECT COUNT(*) FROM photo_session
			 WHERE session_date >= CURRENT_DATE) AS upcoming_sessions,
			(SELECT COALESCE(SUM(payment_received_cents), 0) FROM invoice
			 WHERE date_trunc('month', invoice_date) = date_trunc('month', CURRENT_DATE)) AS monthly_revenue,
			(SELECT COALESCE(SUM(balance_due_cents), 0) FROM invoice
			 WHERE balance_due_cents > 0) AS outstanding_balance,
			(SELECT COUNT(*) FROM staff) AS total_staff,
			(SELECT COUNT(*) FROM product WHERE stock_level > 0) AS active_products
	`

	var stats analytics.DashboardStats

	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalClients,
		&stats.UpcomingSessions,
		&stats.MonthlyRevenueCents,
		&stats.OutstandingBalanceCents,
		&stats.TotalStaff,
		&stats.ActiveProducts,
	)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard stats: %w", err)
	}

	return &stats, nil
}

func (s *Store) RevenueTrends(ctx context.Context) ([]*analytics.RevenueTrend, error) {
	query := `
		SELECT to_char(invoice_date, 'YYYY-MM') AS month,
			SUM(payment_received_cents) AS revenue,
			COUNT(*) AS invoice_count
		FROM invoice
		WHERE invoice_date >= NOW() - INTERVAL '12 months'
		GROUP BY to_char(invoice_date, 'YYYY-MM')
		ORDER BY month
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading revenue trends: %w", err)
	}
	defer rows.Close()

	var trends []*analytics.RevenueTrend

	for rows.Next() {
		var t analytics.RevenueTrend

		if err := rows.Scan(&t.Month, &t.RevenueCents, &t.InvoiceCount); err != nil {
			return nil, fmt.Errorf("scanning revenue trend: %w", err)
		}

		trends = append(trends, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revenue trend rows: %w", err)
	}

	return trends, nil
}

func (s *Store) SessionTypes(ctx context.Context) ([]*analytics.SessionTypeStats, error) {
	query := `
		SELECT session_type,
			COUNT(*) AS session_count,
			AVG(fee_cents) AS avg_fee,
			SUM(fee_cents) AS total_revenue
		FROM photo_session
		WHERE session_date >= NOW() - INTERVAL '6 months'
		GROUP BY session_type
		ORDER BY session_count DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading session type stats: %w", err)
	}
	defer rows.Close()

	var stats []*analytics.SessionTypeStats

	for rows.Next() {
		var st analytics.SessionTypeStats

		if err := rows.Scan(&st.Type, &st.SessionCount, &st.AvgFeeCents, &st.TotalRevenueCents); err != nil {
			return nil, fmt.Errorf("scanning session type stats: %w", err)
		}

		stats = append(stats, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session type rows: %w", err)
	}

	return stats, nil
}

func (s *Store) MarketingConversion(ctx context.Context) ([]*analytics.ConversionStats, error) {
	query := `
		SELECT ml.interests,
			COUNT(DISTINCT ml.email) AS total_leads,
			COUNT(DISTINCT c.client_email) AS converted_clients,
			COALESCE(ROUND(COUNT(DISTINCT c.client_email) * 100.0 /
				NULLIF(COUNT(DISTINCT ml.email), 0), 2), 0) AS conversion_rate
		FROM marketing_lead ml
		LEFT JOIN client c ON c.marketing_lead_email = ml.email
		GROUP BY ml.interests
		ORDER BY conversion_rate DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading marketing conversion: %w", err)
	}
	defer rows.Close()

	var stats []*analytics.ConversionStats

	for rows.Next() {
		var cs analytics.ConversionStats

		if err := rows.Scan(&cs.Interests, &cs.TotalLeads, &cs.ConvertedClients, &cs.ConversionRate); err != nil {
			return nil, fmt.Errorf("scanning marketing conversion: %w", err)
		}

		stats = append(stats, &cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating marketing conversion rows: %w", err)
	}

	return stats, nil
}

func (s *Store) StaffPerformance(ctx context.Context) ([]*analytics.StaffPerformance, error) {
	query := `
		SELECT s.staff_email,
			s.first_name || ' ' || s.last_name AS staff_name,
			s.role,
			COUNT(DISTINCT c.client_email) AS clients_managed,
			COUNT(DISTINCT psa.session_id) AS sessions_assigned,
			(SELECT COUNT(*)
			 FROM photo_session ps
			 JOIN photo_session_assignment psa2 ON psa2.session_id = ps.session_id
			 WHERE psa2.staff_email = s.staff_email
			   AND ps.session_date >= NOW() - INTERVAL '3 months') AS recent_sessions
		FROM staff s
		LEFT JOIN client c ON c.managed_by_staff_email = s.staff_email
		LEFT JOIN photo_session_assignment psa ON psa.staff_email = s.staff_email
		GROUP BY s.staff_email, s.first_name, s.last_name, s.role
		ORDER BY clients_managed DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading staff performance: %w", err)
	}
	defer rows.Close()

	var stats []*analytics.StaffPerformance

	for rows.Next() {
		var sp analytics.StaffPerformance

		err := rows.Scan(
			&sp.Email, &sp.Name, &sp.Role,
			&sp.ClientsManaged, &sp.SessionsAssigned, &sp.RecentSessions,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning staff performance: %w", err)
		}

		stats = append(stats, &sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff performance rows: %w", err)
	}

	return stats, nil
}
