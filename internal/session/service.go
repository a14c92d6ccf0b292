package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aprovost/studiodesk/internal/patch"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=session
type Repository interface {
	// CreateSession inserts the session and bumps the client's last
	// session date in one transaction.
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	ListSessions(ctx context.Context) ([]*Session, error)
	ListSessionsInRange(ctx context.Context, start, end time.Time) ([]*Session, error)
	ListSessionsForClient(ctx context.Context, email string) ([]*Session, error)
	UpdateSession(ctx context.Context, id string, fields []patch.Field) error
	AssignStaff(ctx context.Context, sessionID, staffEmail, role string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID          string // optional; generated when empty
	Type        string
	Date        time.Time
	StartTime   string
	EndTime     string
	Location    string
	PackageName string
	FeeCents    int64
	DepositPaid bool
	Notes       string
	ClientEmail string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Session, error) {
	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	sess := &Session{
		ID:          id,
		Type:        params.Type,
		Date:        params.Date,
		StartTime:   params.StartTime,
		EndTime:     params.EndTime,
		Location:    params.Location,
		PackageName: params.PackageName,
		FeeCents:    params.FeeCents,
		DepositPaid: params.DepositPaid,
		Notes:       params.Notes,
		ClientEmail: params.ClientEmail,
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.repo.GetSession(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Session, error) {
	return s.repo.ListSessions(ctx)
}

func (s *Service) ListInRange(ctx context.Context, start, end time.Time) ([]*Session, error) {
	return s.repo.ListSessionsInRange(ctx, start, end)
}

func (s *Service) ListForClient(ctx context.Context, email string) ([]*Session, error) {
	return s.repo.ListSessionsForClient(ctx, email)
}

func (s *Service) Update(ctx context.Context, id string, kvs []patch.KV) error {
	fields, err := PatchSpec.Map(kvs)
	if err != nil {
		return err
	}

	return s.repo.UpdateSession(ctx, id, fields)
}

func (s *Service) AssignStaff(ctx context.Context, sessionID, staffEmail, role string) error {
	return s.repo.AssignStaff(ctx, sessionID, staffEmail, role)
}
