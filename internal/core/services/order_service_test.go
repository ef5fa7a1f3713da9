package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/SscSPs/vetclinic_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Insert_StampsCreatedTime(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := new(MockRepository[domain.Order])
	svc := services.NewOrderService(repo, services.WithOrderClock(func() time.Time { return fixed }))

	order := &domain.Order{OrderProcedureID: 4}
	repo.On("Insert", ctx, order).Return(nil).Once()
	repo.On("SaveChanges", ctx).Return(nil).Once()

	got, err := svc.Insert(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, fixed, got.CreatedTime)
	assert.False(t, got.IsPaid)
}

func TestOrderService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[domain.Order])
	svc := services.NewOrderService(repo)

	stored := &domain.Order{ID: 2, OrderProcedureID: 4}
	repo.On("GetFirstOrDefault", ctx, byID(2)).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(o *domain.Order) bool { return o.ID == 2 && o.IsPaid })).Return(nil).Once()
	repo.On("SaveChanges", ctx).Return(nil).Once()

	got, err := svc.MarkPaid(ctx, 2)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)

	// paying twice is a no-op
	repo.On("GetFirstOrDefault", ctx, byID(2)).Return(stored, nil).Once()
	_, err = svc.MarkPaid(ctx, 2)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "SaveChanges", 1)

	repo.On("GetFirstOrDefault", ctx, byID(9)).Return(nil, nil).Once()
	_, err = svc.MarkPaid(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderProcedureService_GetByID_LoadsNavigations(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[domain.OrderProcedure])
	svc := services.NewOrderProcedureService(repo)

	stored := &domain.OrderProcedure{ID: 1, Appointment: &domain.Appointment{ID: 5}}
	repo.On("GetFirstOrDefault", ctx, byIDWith(1, "Procedure", "Appointment", "Order")).Return(stored, nil).Once()

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Appointment.ID)
}
