package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
)

type appointmentService struct {
	entityService[domain.Appointment, int]
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(repo portsrepo.AppointmentRepository) portssvc.AppointmentSvcFacade {
	svc := &appointmentService{
		entityService: newEntityService[domain.Appointment, int](domain.KindAppointment, repo,
			func(a *domain.Appointment) int { return a.ID }, "OrderProcedure"),
	}
	svc.prepareUpdate = keepAppointmentStatus
	return svc
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

// Insert defaults the status of a new appointment to Opened.
func (s *appointmentService) Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if appt.Status == "" {
		appt.Status = domain.AppointmentOpened
	}
	if err := validateStatus(appt.Status); err != nil {
		return nil, err
	}
	return s.entityService.Insert(ctx, appt)
}

// keepAppointmentStatus leaves the stored status in place when the update carries none.
func keepAppointmentStatus(stored, incoming *domain.Appointment) error {
	if incoming.Status == "" {
		incoming.Status = stored.Status
		return nil
	}
	return validateStatus(incoming.Status)
}

func validateStatus(status domain.AppointmentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("unknown appointment status %q: %w", status, apperrors.ErrValidation)
	}
	return nil
}
