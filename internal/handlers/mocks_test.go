package handlers

import (
	"context"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type mockCRUD[T any, K comparable] struct {
	mock.Mock
}

func (m *mockCRUD[T, K]) GetAll(ctx context.Context, asNoTracking bool) ([]T, error) {
	args := m.Called(ctx, asNoTracking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockCRUD[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockCRUD[T, K]) ListPage(ctx context.Context, limit int, after *K) ([]T, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockCRUD[T, K]) Insert(ctx context.Context, entity *T) (*T, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockCRUD[T, K]) Update(ctx context.Context, id K, entity *T) error {
	return m.Called(ctx, id, entity).Error(0)
}

func (m *mockCRUD[T, K]) Delete(ctx context.Context, id K) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCRUD[T, K]) DeleteRange(ctx context.Context, ids []K) error {
	return m.Called(ctx, ids).Error(0)
}

type mockOrderService struct {
	mockCRUD[domain.Order, int]
}

func (m *mockOrderService) MarkPaid(ctx context.Context, id int) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type mockPetService struct {
	mockCRUD[domain.Pet, int]
}

func (m *mockPetService) ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Pet), args.Error(1)
}

type mockEmployeeService struct {
	mockCRUD[domain.Employee, string]
}

func (m *mockEmployeeService) AssignPosition(ctx context.Context, employeeID string, positionID int) error {
	return m.Called(ctx, employeeID, positionID).Error(0)
}

type mockSalaryService struct {
	mockCRUD[domain.Salary, int]
}

func (m *mockSalaryService) ListByPosition(ctx context.Context, positionID int) ([]domain.Salary, error) {
	args := m.Called(ctx, positionID)
	return args.Get(0).([]domain.Salary), args.Error(1)
}

type mockScheduleService struct {
	mockCRUD[domain.Schedule, int]
}

func (m *mockScheduleService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Schedule, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

// fakeScope counts the units of work opened by requests and answers pings with pingErr.
type fakeScope struct {
	opened  int
	pingErr error
}

func (f *fakeScope) Ping(ctx context.Context) error {
	return f.pingErr
}

func (f *fakeScope) NewScope(ctx context.Context) context.Context {
	f.opened++
	return ctx
}
