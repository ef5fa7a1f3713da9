package mapping

import (
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/SscSPs/vetclinic_backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		User:               toModelUser(d.User),
		Address:            d.Address,
		EmployeePositionID: d.EmployeePositionID,
		EmployeePosition:   mapPtr(d.EmployeePosition, ToModelEmployeePosition),
		Schedules:          mapSlice(d.Schedules, ToModelSchedule),
		OrderProcedures:    mapSlice(d.OrderProcedures, ToModelOrderProcedure),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		User:               toDomainUser(m.User),
		Address:            m.Address,
		EmployeePositionID: m.EmployeePositionID,
		EmployeePosition:   mapPtr(m.EmployeePosition, ToDomainEmployeePosition),
		Schedules:          mapSlice(m.Schedules, ToDomainSchedule),
		OrderProcedures:    mapSlice(m.OrderProcedures, ToDomainOrderProcedure),
	}
}

func ToModelEmployeePosition(d domain.EmployeePosition) models.EmployeePosition {
	return models.EmployeePosition{
		ID:                d.ID,
		CurrentBaseSalary: d.CurrentBaseSalary,
		Rate:              d.Rate,
		EmployeeID:        d.EmployeeID,
		Employee:          mapPtr(d.Employee, ToModelEmployee),
		Salaries:          mapSlice(d.Salaries, ToModelSalary),
	}
}

func ToDomainEmployeePosition(m models.EmployeePosition) domain.EmployeePosition {
	return domain.EmployeePosition{
		ID:                m.ID,
		CurrentBaseSalary: m.CurrentBaseSalary,
		Rate:              m.Rate,
		EmployeeID:        m.EmployeeID,
		Employee:          mapPtr(m.Employee, ToDomainEmployee),
		Salaries:          mapSlice(m.Salaries, ToDomainSalary),
	}
}

func ToModelSalary(d domain.Salary) models.Salary {
	return models.Salary{ID: d.ID, EmployeePositionID: d.EmployeePositionID, Amount: d.Amount, PaidAt: d.PaidAt}
}

func ToDomainSalary(m models.Salary) domain.Salary {
	return domain.Salary{ID: m.ID, EmployeePositionID: m.EmployeePositionID, Amount: m.Amount, PaidAt: m.PaidAt}
}

func ToModelSchedule(d domain.Schedule) models.Schedule {
	return models.Schedule{ID: d.ID, Day: d.Day, From: d.From, To: d.To, EmployeeID: d.EmployeeID}
}

func ToDomainSchedule(m models.Schedule) domain.Schedule {
	return domain.Schedule{ID: m.ID, Day: m.Day, From: m.From, To: m.To, EmployeeID: m.EmployeeID}
}
