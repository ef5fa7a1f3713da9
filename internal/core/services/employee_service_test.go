package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
	"github.com/SscSPs/vetclinic_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	employeeRepo *MockRepository[domain.Employee]
	positionRepo *MockRepository[domain.EmployeePosition]
	service      portssvc.EmployeeSvcFacade
	ctx          context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.employeeRepo = new(MockRepository[domain.Employee])
	suite.positionRepo = new(MockRepository[domain.EmployeePosition])
	suite.service = services.NewEmployeeService(suite.employeeRepo, suite.positionRepo)
	suite.ctx = context.Background()
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func ptr[T any](v T) *T { return &v }

func (suite *EmployeeServiceTestSuite) TestAssignPosition_LinksBothSides() {
	emp := &domain.Employee{User: domain.User{ID: "e-1"}}
	pos := &domain.EmployeePosition{ID: 3}
	suite.employeeRepo.On("GetFirstOrDefault", suite.ctx, byID("e-1")).Return(emp, nil).Once()
	suite.positionRepo.On("GetFirstOrDefault", suite.ctx, byID(3)).Return(pos, nil).Once()
	suite.employeeRepo.On("Update", suite.ctx, mock.MatchedBy(func(e *domain.Employee) bool {
		return e.ID == "e-1" && e.EmployeePositionID != nil && *e.EmployeePositionID == 3
	})).Return(nil).Once()
	suite.positionRepo.On("Update", suite.ctx, mock.MatchedBy(func(p *domain.EmployeePosition) bool {
		return p.ID == 3 && p.EmployeeID != nil && *p.EmployeeID == "e-1"
	})).Return(nil).Once()
	suite.employeeRepo.On("SaveChanges", suite.ctx).Return(nil).Once()

	suite.Require().NoError(suite.service.AssignPosition(suite.ctx, "e-1", 3))
	suite.employeeRepo.AssertExpectations(suite.T())
	suite.positionRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestAssignPosition_ReleasesPreviousLinks() {
	emp := &domain.Employee{User: domain.User{ID: "e-1"}, EmployeePositionID: ptr(2)}
	pos := &domain.EmployeePosition{ID: 3, EmployeeID: ptr("e-9")}
	prevHolder := &domain.Employee{User: domain.User{ID: "e-9"}, EmployeePositionID: ptr(3)}
	oldPos := &domain.EmployeePosition{ID: 2, EmployeeID: ptr("e-1")}

	suite.employeeRepo.On("GetFirstOrDefault", suite.ctx, byID("e-1")).Return(emp, nil).Once()
	suite.employeeRepo.On("GetFirstOrDefault", suite.ctx, byID("e-9")).Return(prevHolder, nil).Once()
	suite.positionRepo.On("GetFirstOrDefault", suite.ctx, byID(3)).Return(pos, nil).Once()
	suite.positionRepo.On("GetFirstOrDefault", suite.ctx, byID(2)).Return(oldPos, nil).Once()
	suite.employeeRepo.On("Update", suite.ctx, mock.Anything).Return(nil).Twice()
	suite.positionRepo.On("Update", suite.ctx, mock.Anything).Return(nil).Twice()
	suite.employeeRepo.On("SaveChanges", suite.ctx).Return(nil).Once()

	suite.Require().NoError(suite.service.AssignPosition(suite.ctx, "e-1", 3))
	suite.Nil(prevHolder.EmployeePositionID)
	suite.Nil(oldPos.EmployeeID)
	suite.Equal(3, *emp.EmployeePositionID)
	suite.Equal("e-1", *pos.EmployeeID)
}

func (suite *EmployeeServiceTestSuite) TestAssignPosition_MissingPosition() {
	emp := &domain.Employee{User: domain.User{ID: "e-1"}}
	suite.employeeRepo.On("GetFirstOrDefault", suite.ctx, byID("e-1")).Return(emp, nil).Once()
	suite.positionRepo.On("GetFirstOrDefault", suite.ctx, byID(7)).Return(nil, nil).Once()

	err := suite.service.AssignPosition(suite.ctx, "e-1", 7)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), domain.KindEmployeePosition)
	suite.employeeRepo.AssertNotCalled(suite.T(), "SaveChanges", mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestInsert_GeneratesID() {
	emp := &domain.Employee{User: domain.User{FirstName: "Vet"}}
	suite.employeeRepo.On("Insert", suite.ctx, emp).Return(nil).Once()
	suite.employeeRepo.On("SaveChanges", suite.ctx).Return(nil).Once()

	got, err := suite.service.Insert(suite.ctx, emp)
	suite.Require().NoError(err)
	suite.NotEmpty(got.ID)
}

func (suite *EmployeeServiceTestSuite) TestUpdate_KeepsPositionLink() {
	stored := &domain.Employee{User: domain.User{ID: "e-1"}, EmployeePositionID: ptr(3)}
	suite.employeeRepo.On("GetFirstOrDefault", suite.ctx, byID("e-1")).Return(stored, nil).Once()
	suite.employeeRepo.On("Update", suite.ctx, mock.MatchedBy(func(e *domain.Employee) bool {
		return e.Address == "Main St 1" && e.EmployeePositionID != nil && *e.EmployeePositionID == 3
	})).Return(nil).Once()
	suite.employeeRepo.On("SaveChanges", suite.ctx).Return(nil).Once()

	changed := &domain.Employee{User: domain.User{ID: "e-1"}, Address: "Main St 1"}
	suite.Require().NoError(suite.service.Update(suite.ctx, "e-1", changed))
	suite.employeeRepo.AssertExpectations(suite.T())
	suite.positionRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func TestEmployeePositionService_Update_KeepsEmployeeLink(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[domain.EmployeePosition])
	svc := services.NewEmployeePositionService(repo)

	stored := &domain.EmployeePosition{ID: 3, EmployeeID: ptr("e-1")}
	repo.On("GetFirstOrDefault", ctx, byID(3)).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(p *domain.EmployeePosition) bool {
		return p.EmployeeID != nil && *p.EmployeeID == "e-1"
	})).Return(nil).Once()
	repo.On("SaveChanges", ctx).Return(nil).Once()

	require.NoError(t, svc.Update(ctx, 3, &domain.EmployeePosition{ID: 3}))
	repo.AssertExpectations(t)
}

func TestScheduleService_ListByEmployee_OrdersByDayThenStart(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[domain.Schedule])
	svc := services.NewScheduleService(repo)

	repo.On("Get", ctx, portsrepo.NewQuery(
		portsrepo.Where(portsrepo.Eq("employee_id", "e-1")),
		portsrepo.OrderBy("day", false),
		portsrepo.OrderBy("from_time", false),
		portsrepo.AsNoTracking(),
	)).Return([]domain.Schedule{{ID: 1, Day: time.Monday}}, nil).Once()

	got, err := svc.ListByEmployee(ctx, "e-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestSalaryService_ListByPosition(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[domain.Salary])
	svc := services.NewSalaryService(repo)

	repo.On("Get", ctx, portsrepo.NewQuery(
		portsrepo.Where(portsrepo.Eq("employee_position_id", 3)),
		portsrepo.OrderBy("paid_at", true),
		portsrepo.AsNoTracking(),
	)).Return([]domain.Salary{}, nil).Once()

	got, err := svc.ListByPosition(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
	repo.AssertExpectations(t)
}
