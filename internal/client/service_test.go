package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aprovost/studiodesk/internal/client"
	"github.com/aprovost/studiodesk/internal/patch"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    client.CreateParams
		setupMock func(m *client.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: client.CreateParams{
				Email:     "jane@x.com",
				FirstName: "Jane",
				LastName:  "Doe",
				Phone:     "555-0101",
			},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *client.Client) error {
						assert.Equal(t, "jane@x.com", c.Email)
						assert.Nil(t, c.LastSessionDate)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name:   "RepoError",
			params: client.CreateParams{Email: "jane@x.com"},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := client.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := client.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	type testCase struct {
		name      string
		kvs       []patch.KV
		setupMock func(m *client.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "MapsFieldsBeforeWrite",
			kvs: []patch.KV{
				{Key: "clientEmail", Value: "other@x.com"},
				{Key: "phone", Value: "555-0199"},
			},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					UpdateClient(gomock.Any(), "jane@x.com", []patch.Field{
						{Column: "phone", Value: "555-0199"},
					}).
					Return(nil)
			},
		},
		{
			name:    "NoMutableFieldsSkipsStorage",
			kvs:     []patch.KV{{Key: "clientEmail", Value: "other@x.com"}},
			wantErr: patch.ErrNoFields,
		},
		{
			name: "NotFoundPropagates",
			kvs:  []patch.KV{{Key: "city", Value: "Lisbon"}},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					UpdateClient(gomock.Any(), "jane@x.com", gomock.Any()).
					Return(client.ErrNotFound)
			},
			wantErr: client.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := client.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := client.NewService(repo)
			err := svc.Update(context.Background(), "jane@x.com", tt.kvs)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
