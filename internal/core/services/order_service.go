package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
)

type orderService struct {
	entityService[domain.Order, int]
	now func() time.Time
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithOrderClock overrides the clock used to stamp new orders
func WithOrderClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

func NewOrderService(repo portsrepo.OrderRepository, options ...OrderServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		entityService: newEntityService[domain.Order, int](domain.KindOrder, repo,
			func(o *domain.Order) int { return o.ID }, "OrderProcedure"),
		now: time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// Insert stamps CreatedTime when the caller left it empty.
func (s *orderService) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.CreatedTime.IsZero() {
		order.CreatedTime = s.now().UTC()
	}
	return s.entityService.Insert(ctx, order)
}

func (s *orderService) MarkPaid(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.IsPaid {
		s.LogDebug(ctx, "Order already paid", slog.Int("order_id", id))
		return order, nil
	}
	order.IsPaid = true
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, "mark paid"); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Order marked as paid", slog.Int("order_id", id))
	return order, nil
}
