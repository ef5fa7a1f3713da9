package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a clinic staff member.
type Employee struct {
	User
	Address            string            `json:"address"`
	EmployeePositionID *int              `json:"employeePositionID,omitempty"`
	EmployeePosition   *EmployeePosition `json:"employeePosition,omitempty"`
	Schedules          []Schedule        `json:"schedules,omitempty"`
	OrderProcedures    []OrderProcedure  `json:"orderProcedures,omitempty"`
}

func (e Employee) String() string {
	return e.FullName()
}

// EmployeePosition holds the compensation terms of one employee.
// Deleting it removes its salaries and unlinks the employee.
type EmployeePosition struct {
	ID                int             `json:"id"`
	CurrentBaseSalary decimal.Decimal `json:"currentBaseSalary"`
	Rate              decimal.Decimal `json:"rate"`
	EmployeeID        *string         `json:"employeeID,omitempty"`
	Employee          *Employee       `json:"employee,omitempty"`
	Salaries          []Salary        `json:"salaries,omitempty"`
}

// Salary is a payment record owned by an EmployeePosition.
type Salary struct {
	ID                 int             `json:"id"`
	EmployeePositionID int             `json:"employeePositionID"`
	Amount             decimal.Decimal `json:"amount"`
	PaidAt             time.Time       `json:"paidAt"`
}

// Schedule is one working-hours entry of an employee.
type Schedule struct {
	ID         int          `json:"id"`
	Day        time.Weekday `json:"day"`
	From       time.Time    `json:"from"`
	To         time.Time    `json:"to"`
	EmployeeID string       `json:"employeeID"`
}
