package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aprovost/studiodesk/internal/invoice"
	"github.com/aprovost/studiodesk/internal/patch"
)

func TestService_Create(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("DefaultsBalanceFromTotals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				assert.Equal(t, int64(25000), inv.BalanceDueCents)
				assert.Len(t, inv.Lines, 2)
				assert.Equal(t, int64(1001), inv.Lines[0].InvoiceNumber)
				return nil
			})

		svc := invoice.NewService(repo)
		got, err := svc.Create(context.Background(), invoice.CreateParams{
			Number:               1001,
			Date:                 day,
			TotalDueCents:        30000,
			PaymentReceivedCents: 5000,
			ClientEmail:          "jane@x.com",
			Lines: []invoice.LineParams{
				{ProductID: "PRT-100", Quantity: 2},
				{ProductID: "ALB-200", Quantity: 1},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(25000), got.BalanceDueCents)
	})

	t.Run("ExplicitBalanceWins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		balance := int64(12345)

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				assert.Equal(t, balance, inv.BalanceDueCents)
				return nil
			})

		svc := invoice.NewService(repo)
		_, err := svc.Create(context.Background(), invoice.CreateParams{
			Number:          1002,
			Date:            day,
			TotalDueCents:   30000,
			BalanceDueCents: &balance,
			ClientEmail:     "jane@x.com",
		})

		require.NoError(t, err)
	})

	t.Run("RepoErrorRollsUp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			Return(errors.New("constraint violation"))

		svc := invoice.NewService(repo)
		got, err := svc.Create(context.Background(), invoice.CreateParams{Number: 1003})

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("IdentityOnlyIsRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)

		svc := invoice.NewService(repo)
		err := svc.Update(context.Background(), 1001, []patch.KV{
			{Key: "invoiceNumber", Value: float64(9999)},
		})

		assert.ErrorIs(t, err, patch.ErrNoFields)
	})

	t.Run("FieldOrderPreserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invoice.NewMockRepository(ctrl)
		repo.EXPECT().
			UpdateInvoice(gomock.Any(), int64(1001), []patch.Field{
				{Column: "description", Value: "Wedding package"},
				{Column: "tax_cents", Value: float64(2300)},
			}).
			Return(nil)

		svc := invoice.NewService(repo)
		err := svc.Update(context.Background(), 1001, []patch.KV{
			{Key: "description", Value: "Wedding package"},
			{Key: "tax", Value: float64(2300)},
		})

		assert.NoError(t, err)
	})
}
