package services_test

import (
	"context"

	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Generic mock repository ---
// Query options are resolved with NewQuery so expectations can compare them by value.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) Get(ctx context.Context, opts ...portsrepo.QueryOption) ([]T, error) {
	args := m.Called(ctx, portsrepo.NewQuery(opts...))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) GetFirstOrDefault(ctx context.Context, opts ...portsrepo.QueryOption) (*T, error) {
	args := m.Called(ctx, portsrepo.NewQuery(opts...))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Insert(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) InsertMany(ctx context.Context, entities []*T) error {
	return m.Called(ctx, entities).Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) DeleteRange(ctx context.Context, entities []T) error {
	return m.Called(ctx, entities).Error(0)
}

func (m *MockRepository[T]) SaveChanges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func byID(id any) portsrepo.QueryOptions {
	return portsrepo.NewQuery(portsrepo.Where(portsrepo.Eq("id", id)))
}

func byIDWith(id any, includes ...string) portsrepo.QueryOptions {
	return portsrepo.NewQuery(portsrepo.Where(portsrepo.Eq("id", id)), portsrepo.Include(includes...))
}
