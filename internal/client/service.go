package client

import (
	"context"

	"github.com/aprovost/studiodesk/internal/patch"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, email string) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)
	UpdateClient(ctx context.Context, email string, fields []patch.Field) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Email              string
	FirstName          string
	LastName           string
	Phone              string
	Street             string
	City               string
	State              string
	Zip                string
	LeadSource         string
	ManagerEmail       *string
	MarketingLeadEmail *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	c := &Client{
		Email:              params.Email,
		FirstName:          params.FirstName,
		LastName:           params.LastName,
		Phone:              params.Phone,
		Street:             params.Street,
		City:               params.City,
		State:              params.State,
		Zip:                params.Zip,
		LeadSource:         params.LeadSource,
		ManagerEmail:       params.ManagerEmail,
		MarketingLeadEmail: params.MarketingLeadEmail,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, email string) (*Client, error) {
	return s.repo.GetClient(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.ListClients(ctx)
}

// Update applies a partial update. The field bag is filtered through the
// allow-list before any write; an empty result surfaces patch.ErrNoFields
// without touching storage.
func (s *Service) Update(ctx context.Context, email string, kvs []patch.KV) error {
	fields, err := PatchSpec.Map(kvs)
	if err != nil {
		return err
	}

	return s.repo.UpdateClient(ctx, email, fields)
}
