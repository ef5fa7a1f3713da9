package dto

import (
	"time"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AppointmentViewModel is the request and response shape of an appointment.
type AppointmentViewModel struct {
	ID               int                      `json:"id"`
	Status           string                   `json:"status" binding:"omitempty,oneof=Opened InProgress Closed Cancelled"`
	From             time.Time                `json:"from" binding:"required"`
	To               time.Time                `json:"to" binding:"required,gtfield=From"`
	OrderProcedureID *int                     `json:"orderProcedureId,omitempty"`
	OrderProcedure   *OrderProcedureViewModel `json:"orderProcedure,omitempty" binding:"-"`
}

func ToAppointmentViewModel(a domain.Appointment) AppointmentViewModel {
	return AppointmentViewModel{
		ID:               a.ID,
		Status:           string(a.Status),
		From:             a.From,
		To:               a.To,
		OrderProcedureID: a.OrderProcedureID,
		OrderProcedure:   toPtr(a.OrderProcedure, ToOrderProcedureViewModel),
	}
}

func (vm AppointmentViewModel) ToDomain() domain.Appointment {
	return domain.Appointment{
		ID:               vm.ID,
		Status:           domain.AppointmentStatus(vm.Status),
		From:             vm.From,
		To:               vm.To,
		OrderProcedureID: vm.OrderProcedureID,
	}
}

// ProcedureViewModel is the request and response shape of a catalog procedure.
type ProcedureViewModel struct {
	ID          int              `json:"id"`
	Title       string           `json:"title" binding:"required,max=50"`
	Description string           `json:"description" binding:"max=50"`
	Duration    string           `json:"duration" binding:"required,duration"`
	Price       *decimal.Decimal `json:"price" binding:"required,decimal_gte0"`
}

func ToProcedureViewModel(p domain.Procedure) ProcedureViewModel {
	price := p.Price
	return ProcedureViewModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Duration:    FormatDuration(p.Duration),
		Price:       &price,
	}
}

// ToDomain assumes vm passed validation.
func (vm ProcedureViewModel) ToDomain() domain.Procedure {
	d, _ := ParseDuration(vm.Duration)
	p := domain.Procedure{ID: vm.ID, Title: vm.Title, Description: vm.Description, Duration: d}
	if vm.Price != nil {
		p.Price = *vm.Price
	}
	return p
}

// OrderProcedureViewModel is the request and response shape of a performed procedure.
type OrderProcedureViewModel struct {
	ID          int                   `json:"id"`
	Conclusion  string                `json:"conclusion" binding:"required,max=50"`
	Details     string                `json:"details" binding:"max=50"`
	ProcedureID *int                  `json:"procedureId,omitempty"`
	EmployeeID  *string               `json:"employeeId,omitempty"`
	Procedure   *ProcedureViewModel   `json:"procedure,omitempty" binding:"-"`
	Appointment *AppointmentViewModel `json:"appointment,omitempty" binding:"-"`
	Order       *OrderViewModel       `json:"order,omitempty" binding:"-"`
}

func ToOrderProcedureViewModel(op domain.OrderProcedure) OrderProcedureViewModel {
	return OrderProcedureViewModel{
		ID:          op.ID,
		Conclusion:  op.Conclusion,
		Details:     op.Details,
		ProcedureID: op.ProcedureID,
		EmployeeID:  op.EmployeeID,
		Procedure:   toPtr(op.Procedure, ToProcedureViewModel),
		Appointment: toPtr(op.Appointment, ToAppointmentViewModel),
		Order:       toPtr(op.Order, ToOrderViewModel),
	}
}

func (vm OrderProcedureViewModel) ToDomain() domain.OrderProcedure {
	return domain.OrderProcedure{
		ID:          vm.ID,
		Conclusion:  vm.Conclusion,
		Details:     vm.Details,
		ProcedureID: vm.ProcedureID,
		EmployeeID:  vm.EmployeeID,
	}
}

// OrderViewModel is the request and response shape of an order.
type OrderViewModel struct {
	ID               int                      `json:"id"`
	CreatedTime      time.Time                `json:"createdTime"`
	IsPaid           bool                     `json:"isPaid"`
	OrderProcedureID int                      `json:"orderProcedureId" binding:"required,gt=0"`
	OrderProcedure   *OrderProcedureViewModel `json:"orderProcedure,omitempty" binding:"-"`
}

func ToOrderViewModel(o domain.Order) OrderViewModel {
	return OrderViewModel{
		ID:               o.ID,
		CreatedTime:      o.CreatedTime,
		IsPaid:           o.IsPaid,
		OrderProcedureID: o.OrderProcedureID,
		OrderProcedure:   toPtr(o.OrderProcedure, ToOrderProcedureViewModel),
	}
}

func (vm OrderViewModel) ToDomain() domain.Order {
	return domain.Order{
		ID:               vm.ID,
		CreatedTime:      vm.CreatedTime,
		IsPaid:           vm.IsPaid,
		OrderProcedureID: vm.OrderProcedureID,
	}
}
