package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aprovost/studiodesk/internal/patch"
	"github.com/aprovost/studiodesk/internal/session"
)

func TestService_Create(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("GeneratesIDWhenEmpty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := session.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *session.Session) error {
				_, err := uuid.Parse(s.ID)
				assert.NoError(t, err)
				return nil
			})

		svc := session.NewService(repo)
		got, err := svc.Create(context.Background(), session.CreateParams{
			Type:        "portrait",
			Date:        day,
			StartTime:   "14:00",
			EndTime:     "16:00",
			ClientEmail: "jane@x.com",
			FeeCents:    30000,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("KeepsCallerSuppliedID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := session.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *session.Session) error {
				assert.Equal(t, "SES-1001", s.ID)
				return nil
			})

		svc := session.NewService(repo)
		got, err := svc.Create(context.Background(), session.CreateParams{
			ID:          "SES-1001",
			Date:        day,
			ClientEmail: "jane@x.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "SES-1001", got.ID)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := session.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		svc := session.NewService(repo)
		got, err := svc.Create(context.Background(), session.CreateParams{Date: day})

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("EmptyFieldSetNeverHitsStorage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := session.NewMockRepository(ctrl)

		svc := session.NewService(repo)
		err := svc.Update(context.Background(), "SES-1001", []patch.KV{
			{Key: "sessionId", Value: "SES-9999"},
		})

		assert.ErrorIs(t, err, patch.ErrNoFields)
	})

	t.Run("MapsToColumns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := session.NewMockRepository(ctrl)
		repo.EXPECT().
			UpdateSession(gomock.Any(), "SES-1001", []patch.Field{
				{Column: "location", Value: "Studio B"},
				{Column: "notes", Value: "reschedule"},
			}).
			Return(nil)

		svc := session.NewService(repo)
		err := svc.Update(context.Background(), "SES-1001", []patch.KV{
			{Key: "location", Value: "Studio B"},
			{Key: "notes", Value: "reschedule"},
		})

		assert.NoError(t, err)
	})
}
