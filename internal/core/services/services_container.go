package services

import (
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Appointment:      NewAppointmentService(repos.AppointmentRepo),
		Procedure:        NewProcedureService(repos.ProcedureRepo),
		OrderProcedure:   NewOrderProcedureService(repos.OrderProcedureRepo),
		Order:            NewOrderService(repos.OrderRepo),
		Client:           NewClientService(repos.ClientRepo, repos.PhoneNumberRepo),
		Pet:              NewPetService(repos.PetRepo),
		Employee:         NewEmployeeService(repos.EmployeeRepo, repos.EmployeePositionRepo),
		EmployeePosition: NewEmployeePositionService(repos.EmployeePositionRepo),
		Salary:           NewSalaryService(repos.SalaryRepo),
		Schedule:         NewScheduleService(repos.ScheduleRepo),
	}
}
