package product

import (
	"context"

	"github.com/aprovost/studiodesk/internal/patch"
)

type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	ListLowStock(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, fields []patch.Field) error
	// AdjustStock applies a relative delta in a single statement.
	AdjustStock(ctx context.Context, id string, delta int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID             string
	Name           string
	CostPriceCents int64
	SalePriceCents int64
	StockLevel     int
	Supplier       string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	p := &Product{
		ID:             params.ID,
		Name:           params.Name,
		CostPriceCents: params.CostPriceCents,
		SalePriceCents: params.SalePriceCents,
		StockLevel:     params.StockLevel,
		Supplier:       params.Supplier,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) ListLowStock(ctx context.Context) ([]*Product, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *Service) Update(ctx context.Context, id string, kvs []patch.KV) error {
	fields, err := PatchSpec.Map(kvs)
	if err != nil {
		return err
	}

	return s.repo.UpdateProduct(ctx, id, fields)
}

func (s *Service) AdjustStock(ctx context.Context, id string, delta int) error {
	return s.repo.AdjustStock(ctx, id, delta)
}
