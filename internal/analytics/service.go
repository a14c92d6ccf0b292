package analytics

import "context"

type Repository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	RevenueTrends(ctx context.Context) ([]*RevenueTrend, error)
	SessionTypes(ctx context.Context) ([]*SessionTypeStats, error)
	MarketingConversion(ctx context.Context) ([]*ConversionStats, error)
	StaffPerformance(ctx context.Context) ([]*StaffPerformance, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}

func (s *Service) RevenueTrends(ctx context.Context) ([]*RevenueTrend, error) {
	return s.repo.RevenueTrends(ctx)
}

func (s *Service) SessionTypes(ctx context.Context) ([]*SessionTypeStats, error) {
	return s.repo.SessionTypes(ctx)
}

func (s *Service) MarketingConversion(ctx context.Context) ([]*ConversionStats, error) {
	return s.repo.MarketingConversion(ctx)
}

func (s *Service) StaffPerformance(ctx context.Context) ([]*StaffPerformance, error) {
	return s.repo.StaffPerformance(ctx)
}
