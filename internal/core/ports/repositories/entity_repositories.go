package repositories

import "github.com/SscSPs/vetclinic_backend/internal/core/domain"

type AppointmentRepository interface {
	Repository[domain.Appointment]
}

type ProcedureRepository interface {
	Repository[domain.Procedure]
}

type OrderProcedureRepository interface {
	Repository[domain.OrderProcedure]
}

type OrderRepository interface {
	Repository[domain.Order]
}

type ClientRepository interface {
	Repository[domain.Client]
}

type PhoneNumberRepository interface {
	Repository[domain.PhoneNumber]
}

type PetRepository interface {
	Repository[domain.Pet]
}

type EmployeeRepository interface {
	Repository[domain.Employee]
}

type EmployeePositionRepository interface {
	Repository[domain.EmployeePosition]
}

type SalaryRepository interface {
	Repository[domain.Salary]
}

type ScheduleRepository interface {
	Repository[domain.Schedule]
}
