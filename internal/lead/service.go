package lead

import (
	"context"
	"time"
)

type Repository interface {
	CreateLead(ctx context.Context, l *Lead) error
	GetLead(ctx context.Context, email string) (*Lead, error)
	ListLeads(ctx context.Context) ([]*Lead, error)
	// ImportLeads inserts a batch in one transaction, skipping emails
	// that already exist. Returns how many were inserted and the
	// emails that were skipped.
	ImportLeads(ctx context.Context, leads []*Lead) (int, []string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Email     string
	Interests string
	SignedUp  time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Lead, error) {
	l := &Lead{
		Email:     params.Email,
		Interests: params.Interests,
		SignedUp:  params.SignedUp,
	}
	if err := s.repo.CreateLead(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Get(ctx context.Context, email string) (*Lead, error) {
	return s.repo.GetLead(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]*Lead, error) {
	return s.repo.ListLeads(ctx)
}

type ImportResult struct {
	Imported int
	Skipped  []string
}

func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	leads := make([]*Lead, 0, len(params))
	for _, p := range params {
		leads = append(leads, &Lead{
			Email:     p.Email,
			Interests: p.Interests,
			SignedUp:  p.SignedUp,
		})
	}

	imported, skipped, err := s.repo.ImportLeads(ctx, leads)
	if err != nil {
		return nil, err
	}

	return &ImportResult{Imported: imported, Skipped: skipped}, nil
}
