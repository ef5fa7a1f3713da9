package pgsql

import (
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	"github.com/SscSPs/vetclinic_backend/internal/models"
	"github.com/SscSPs/vetclinic_backend/internal/utils/mapping"
	"gorm.io/gorm"
)

// Ensure implementations match interfaces
var (
	_ portsrepo.AppointmentRepository      = (*GormRepository[domain.Appointment, models.Appointment])(nil)
	_ portsrepo.ProcedureRepository        = (*GormRepository[domain.Procedure, models.Procedure])(nil)
	_ portsrepo.OrderProcedureRepository   = (*GormRepository[domain.OrderProcedure, models.OrderProcedure])(nil)
	_ portsrepo.OrderRepository            = (*GormRepository[domain.Order, models.Order])(nil)
	_ portsrepo.ClientRepository           = (*GormRepository[domain.Client, models.Client])(nil)
	_ portsrepo.PhoneNumberRepository      = (*GormRepository[domain.PhoneNumber, models.PhoneNumber])(nil)
	_ portsrepo.PetRepository              = (*GormRepository[domain.Pet, models.Pet])(nil)
	_ portsrepo.EmployeeRepository         = (*GormRepository[domain.Employee, models.Employee])(nil)
	_ portsrepo.EmployeePositionRepository = (*GormRepository[domain.EmployeePosition, models.EmployeePosition])(nil)
	_ portsrepo.SalaryRepository           = (*GormRepository[domain.Salary, models.Salary])(nil)
	_ portsrepo.ScheduleRepository         = (*GormRepository[domain.Schedule, models.Schedule])(nil)
)

func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AppointmentRepo:      newGormRepository(db, mapping.ToModelAppointment, mapping.ToDomainAppointment),
		ProcedureRepo:        newGormRepository(db, mapping.ToModelProcedure, mapping.ToDomainProcedure),
		OrderProcedureRepo:   newGormRepository(db, mapping.ToModelOrderProcedure, mapping.ToDomainOrderProcedure),
		OrderRepo:            newGormRepository(db, mapping.ToModelOrder, mapping.ToDomainOrder),
		ClientRepo:           newGormRepository(db, mapping.ToModelClient, mapping.ToDomainClient),
		PhoneNumberRepo:      newGormRepository(db, mapping.ToModelPhoneNumber, mapping.ToDomainPhoneNumber),
		PetRepo:              newGormRepository(db, mapping.ToModelPet, mapping.ToDomainPet),
		EmployeeRepo:         newGormRepository(db, mapping.ToModelEmployee, mapping.ToDomainEmployee),
		EmployeePositionRepo: newGormRepository(db, mapping.ToModelEmployeePosition, mapping.ToDomainEmployeePosition),
		SalaryRepo:           newGormRepository(db, mapping.ToModelSalary, mapping.ToDomainSalary),
		ScheduleRepo:         newGormRepository(db, mapping.ToModelSchedule, mapping.ToDomainSchedule),
	}
}
