package search

import "context"

// Hit is one search match, shaped the same for every entity type so
// the caller can render a single flat list.
type Hit struct {
	ID   string
	Name string
	Type string
	Info string
}

// Result groups hits by entity type. Each bucket is capped at ten.
type Result struct {
	Clients  []Hit
	Sessions []Hit
	Invoices []Hit
}

func (r *Result) Total() int {
	return len(r.Clients) + len(r.Sessions) + len(r.Invoices)
}

type Repository interface {
	SearchClients(ctx context.Context, term string) ([]Hit, error)
	SearchSessions(ctx context.Context, term string) ([]Hit, error)
	SearchInvoices(ctx context.Context, term string) ([]Hit, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs the keyword across clients, sessions and invoices. An
// empty query short-circuits to an empty result without touching
// storage.
func (s *Service) Search(ctx context.Context, q string) (*Result, error) {
	if q == "" {
		return &Result{}, nil
	}

	clients, err := s.repo.SearchClients(ctx, q)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.SearchSessions(ctx, q)
	if err != nil {
		return nil, err
	}

	invoices, err := s.repo.SearchInvoices(ctx, q)
	if err != nil {
		return nil, err
	}

	return &Result{Clients: clients, Sessions: sessions, Invoices: invoices}, nil
}
