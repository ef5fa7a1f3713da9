package mapping

import (
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/SscSPs/vetclinic_backend/internal/models"
)

func ToModelProcedure(d domain.Procedure) models.Procedure {
	return models.Procedure{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		Price:       d.Price,
	}
}

func ToDomainProcedure(m models.Procedure) domain.Procedure {
	return domain.Procedure{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Price:       m.Price,
	}
}

// ToModelOrderProcedure converts a domain OrderProcedure, including any loaded navigations.
func ToModelOrderProcedure(d domain.OrderProcedure) models.OrderProcedure {
	return models.OrderProcedure{
		ID:          d.ID,
		Conclusion:  d.Conclusion,
		Details:     d.Details,
		ProcedureID: d.ProcedureID,
		Procedure:   mapPtr(d.Procedure, ToModelProcedure),
		EmployeeID:  d.EmployeeID,
		Employee:    mapPtr(d.Employee, ToModelEmployee),
		Appointment: mapPtr(d.Appointment, ToModelAppointment),
		Order:       mapPtr(d.Order, ToModelOrder),
	}
}

// ToDomainOrderProcedure converts a model OrderProcedure, including any loaded navigations.
func ToDomainOrderProcedure(m models.OrderProcedure) domain.OrderProcedure {
	return domain.OrderProcedure{
		ID:          m.ID,
		Conclusion:  m.Conclusion,
		Details:     m.Details,
		ProcedureID: m.ProcedureID,
		Procedure:   mapPtr(m.Procedure, ToDomainProcedure),
		EmployeeID:  m.EmployeeID,
		Employee:    mapPtr(m.Employee, ToDomainEmployee),
		Appointment: mapPtr(m.Appointment, ToDomainAppointment),
		Order:       mapPtr(m.Order, ToDomainOrder),
	}
}

func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		ID:               d.ID,
		CreatedTime:      d.CreatedTime,
		IsPaid:           d.IsPaid,
		OrderProcedureID: d.OrderProcedureID,
		OrderProcedure:   mapPtr(d.OrderProcedure, ToModelOrderProcedure),
	}
}

func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		ID:               m.ID,
		CreatedTime:      m.CreatedTime,
		IsPaid:           m.IsPaid,
		OrderProcedureID: m.OrderProcedureID,
		OrderProcedure:   mapPtr(m.OrderProcedure, ToDomainOrderProcedure),
	}
}

func ToModelAppointment(d domain.Appointment) models.Appointment {
	return models.Appointment{
		ID:               d.ID,
		Status:           string(d.Status),
		From:             d.From,
		To:               d.To,
		OrderProcedureID: d.OrderProcedureID,
		OrderProcedure:   mapPtr(d.OrderProcedure, ToModelOrderProcedure),
	}
}

func ToDomainAppointment(m models.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:               m.ID,
		Status:           domain.AppointmentStatus(m.Status),
		From:             m.From,
		To:               m.To,
		OrderProcedureID: m.OrderProcedureID,
		OrderProcedure:   mapPtr(m.OrderProcedure, ToDomainOrderProcedure),
	}
}
