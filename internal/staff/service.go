package staff

import (
	"context"
	"time"

	"github.com/aprovost/studiodesk/internal/patch"
)

type Repository interface {
	CreateStaff(ctx context.Context, st *Staff) error
	GetStaff(ctx context.Context, email string) (*Staff, error)
	ListStaff(ctx context.Context) ([]*Staff, error)
	UpdateStaff(ctx context.Context, email string, fields []patch.Field) error
	ListAssignments(ctx context.Context, email string) ([]Assignment, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Email        string
	FirstName    string
	LastName     string
	Role         string
	Phone        string
	HireDate     time.Time
	PayRateCents int64
	Street       string
	City         string
	State        string
	Zip          string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Staff, error) {
	st := &Staff{
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         params.Role,
		Phone:        params.Phone,
		HireDate:     params.HireDate,
		PayRateCents: params.PayRateCents,
		Street:       params.Street,
		City:         params.City,
		State:        params.State,
		Zip:          params.Zip,
	}
	if err := s.repo.CreateStaff(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) Get(ctx context.Context, email string) (*Staff, error) {
	return s.repo.GetStaff(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]*Staff, error) {
	return s.repo.ListStaff(ctx)
}

func (s *Service) Update(ctx context.Context, email string, kvs []patch.KV) error {
	fields, err := PatchSpec.Map(kvs)
	if err != nil {
		return err
	}

	return s.repo.UpdateStaff(ctx, email, fields)
}

func (s *Service) Assignments(ctx context.Context, email string) ([]Assignment, error) {
	return s.repo.ListAssignments(ctx, email)
}
