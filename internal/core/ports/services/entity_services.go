package services

import (
	"context"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
)

type AppointmentSvcFacade interface {
	CRUDService[domain.Appointment, int]
}

type ProcedureSvcFacade interface {
	CRUDService[domain.Procedure, int]
}

type OrderProcedureSvcFacade interface {
	CRUDService[domain.OrderProcedure, int]
}

type OrderSvcFacade interface {
	CRUDService[domain.Order, int]

	// MarkPaid flags the order as paid and returns the stored result.
	MarkPaid(ctx context.Context, id int) (*domain.Order, error)
}

type ClientSvcFacade interface {
	CRUDService[domain.Client, string]
}

type PetSvcFacade interface {
	CRUDService[domain.Pet, int]

	// ListByClient returns the pets owned by a client.
	ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error)
}

type EmployeeSvcFacade interface {
	CRUDService[domain.Employee, string]

	// AssignPosition links an employee and a position on both sides.
	AssignPosition(ctx context.Context, employeeID string, positionID int) error
}

type EmployeePositionSvcFacade interface {
	CRUDService[domain.EmployeePosition, int]
}

type SalarySvcFacade interface {
	CRUDService[domain.Salary, int]

	// ListByPosition returns the salaries paid under a position.
	ListByPosition(ctx context.Context, positionID int) ([]domain.Salary, error)
}

type ScheduleSvcFacade interface {
	CRUDService[domain.Schedule, int]

	// ListByEmployee returns an employee's schedule ordered by day then start time.
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Schedule, error)
}
