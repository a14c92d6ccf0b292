package analytics

// DashboardStats is the studio-wide summary shown on the landing view.
type DashboardStats struct {
	TotalClients            int
	UpcomingSessions        int
	MonthlyRevenueCents     int64
	OutstandingBalanceCents int64
	TotalStaff              int
	ActiveProducts          int
}

// RevenueTrend is one month of invoice revenue, keyed YYYY-MM.
type RevenueTrend struct {
	Month        string
	RevenueCents int64
	InvoiceCount int
}

// SessionTypeStats aggregates sessions of one type over the last six
// months.
type SessionTypeStats struct {
	Type              string
	SessionCount      int
	AvgFeeCents       float64
	TotalRevenueCents int64
}

// ConversionStats groups marketing leads by interests and measures how
// many became clients.
type ConversionStats struct {
	Interests        string
	TotalLeads       int
	ConvertedClients int
	ConversionRate   float64
}

// StaffPerformance carries real per-staff workload aggregates.
type StaffPerformance struct {
	Email            string
	Name             string
	Role             string
	ClientsManaged   int
	SessionsAssigned int
	RecentSessions   int
}
