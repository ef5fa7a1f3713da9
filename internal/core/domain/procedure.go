package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Procedure is a catalog item that can be performed during an appointment.
type Procedure struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    time.Duration   `json:"duration"`
	Price       decimal.Decimal `json:"price"`
}

// OrderProcedure is one performed occurrence of a procedure.
// It links the procedure, the employee who performed it, the appointment
// it happened in and the order that bills it.
type OrderProcedure struct {
	ID          int          `json:"id"`
	Conclusion  string       `json:"conclusion"`
	Details     string       `json:"details"`
	ProcedureID *int         `json:"procedureID,omitempty"`
	Procedure   *Procedure   `json:"procedure,omitempty"`
	EmployeeID  *string      `json:"employeeID,omitempty"`
	Employee    *Employee    `json:"employee,omitempty"`
	Appointment *Appointment `json:"appointment,omitempty"`
	Order       *Order       `json:"order,omitempty"`
}

// Order is the billing record of exactly one OrderProcedure.
type Order struct {
	ID               int             `json:"id"`
	CreatedTime      time.Time       `json:"createdTime"`
	IsPaid           bool            `json:"isPaid"`
	OrderProcedureID int             `json:"orderProcedureID"`
	OrderProcedure   *OrderProcedure `json:"orderProcedure,omitempty"`
}
