package dto

import (
	"time"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type EmployeeViewModel struct {
	ID                 string                     `json:"id"`
	FirstName          string                     `json:"firstName" binding:"required,max=100"`
	LastName           string                     `json:"lastName" binding:"required,max=100"`
	Email              string                     `json:"email" binding:"required,email"`
	Address            string                     `json:"address" binding:"max=255"`
	EmployeePositionID *int                       `json:"employeePositionId,omitempty"`
	EmployeePosition   *EmployeePositionViewModel `json:"employeePosition,omitempty" binding:"-"`
	Schedules          []ScheduleViewModel        `json:"schedules,omitempty" binding:"-"`
}

func ToEmployeeViewModel(e domain.Employee) EmployeeViewModel {
	return EmployeeViewModel{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		Address:            e.Address,
		EmployeePositionID: e.EmployeePositionID,
		EmployeePosition:   toPtr(e.EmployeePosition, ToEmployeePositionViewModel),
		Schedules:          toListOrNil(e.Schedules, ToScheduleViewModel),
	}
}

func (vm EmployeeViewModel) ToDomain() domain.Employee {
	return domain.Employee{
		User:               domain.User{ID: vm.ID, FirstName: vm.FirstName, LastName: vm.LastName, Email: vm.Email},
		Address:            vm.Address,
		EmployeePositionID: vm.EmployeePositionID,
	}
}

type EmployeePositionViewModel struct {
	ID                int               `json:"id"`
	CurrentBaseSalary *decimal.Decimal  `json:"currentBaseSalary" binding:"required,decimal_gte0"`
	Rate              *decimal.Decimal  `json:"rate" binding:"required,decimal_gte0"`
	EmployeeID        *string           `json:"employeeId,omitempty"`
	Salaries          []SalaryViewModel `json:"salaries,omitempty" binding:"-"`
}

func ToEmployeePositionViewModel(p domain.EmployeePosition) EmployeePositionViewModel {
	base, rate := p.CurrentBaseSalary, p.Rate
	return EmployeePositionViewModel{
		ID:                p.ID,
		CurrentBaseSalary: &base,
		Rate:              &rate,
		EmployeeID:        p.EmployeeID,
		Salaries:          toListOrNil(p.Salaries, ToSalaryViewModel),
	}
}

func (vm EmployeePositionViewModel) ToDomain() domain.EmployeePosition {
	p := domain.EmployeePosition{ID: vm.ID, EmployeeID: vm.EmployeeID}
	if vm.CurrentBaseSalary != nil {
		p.CurrentBaseSalary = *vm.CurrentBaseSalary
	}
	if vm.Rate != nil {
		p.Rate = *vm.Rate
	}
	return p
}

type SalaryViewModel struct {
	ID                 int              `json:"id"`
	EmployeePositionID int              `json:"employeePositionId" binding:"required,gt=0"`
	Amount             *decimal.Decimal `json:"amount" binding:"required,decimal_gte0"`
	PaidAt             time.Time        `json:"paidAt" binding:"required"`
}

func ToSalaryViewModel(s domain.Salary) SalaryViewModel {
	amount := s.Amount
	return SalaryViewModel{ID: s.ID, EmployeePositionID: s.EmployeePositionID, Amount: &amount, PaidAt: s.PaidAt}
}

func (vm SalaryViewModel) ToDomain() domain.Salary {
	s := domain.Salary{ID: vm.ID, EmployeePositionID: vm.EmployeePositionID, PaidAt: vm.PaidAt}
	if vm.Amount != nil {
		s.Amount = *vm.Amount
	}
	return s
}

// ScheduleViewModel carries Day as 0 (Sunday) through 6 (Saturday).
type ScheduleViewModel struct {
	ID         int       `json:"id"`
	Day        *int      `json:"day" binding:"required,min=0,max=6"`
	From       time.Time `json:"from" binding:"required"`
	To         time.Time `json:"to" binding:"required,gtfield=From"`
	EmployeeID string    `json:"employeeId" binding:"required"`
}

func ToScheduleViewModel(s domain.Schedule) ScheduleViewModel {
	day := int(s.Day)
	return ScheduleViewModel{ID: s.ID, Day: &day, From: s.From, To: s.To, EmployeeID: s.EmployeeID}
}

func (vm ScheduleViewModel) ToDomain() domain.Schedule {
	s := domain.Schedule{ID: vm.ID, From: vm.From, To: vm.To, EmployeeID: vm.EmployeeID}
	if vm.Day != nil {
		s.Day = time.Weekday(*vm.Day)
	}
	return s
}
