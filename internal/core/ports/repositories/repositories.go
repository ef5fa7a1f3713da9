package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AppointmentRepo      AppointmentRepository
	ProcedureRepo        ProcedureRepository
	OrderProcedureRepo   OrderProcedureRepository
	OrderRepo            OrderRepository
	ClientRepo           ClientRepository
	PhoneNumberRepo      PhoneNumberRepository
	PetRepo              PetRepository
	EmployeeRepo         EmployeeRepository
	EmployeePositionRepo EmployeePositionRepository
	SalaryRepo           SalaryRepository
	ScheduleRepo         ScheduleRepository
}
