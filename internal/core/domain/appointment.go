package domain

import "time"

// AppointmentStatus is stored as data; no transition table is enforced.
type AppointmentStatus string

const (
	AppointmentOpened     AppointmentStatus = "Opened"
	AppointmentInProgress AppointmentStatus = "InProgress"
	AppointmentClosed     AppointmentStatus = "Closed"
	AppointmentCancelled  AppointmentStatus = "Cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentOpened, AppointmentInProgress, AppointmentClosed, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled visit. It holds a non-owning reference to
// the OrderProcedure performed during the visit.
type Appointment struct {
	ID               int               `json:"id"`
	Status           AppointmentStatus `json:"status"`
	From             time.Time         `json:"from"`
	To               time.Time         `json:"to"`
	OrderProcedureID *int              `json:"orderProcedureID,omitempty"`
	OrderProcedure   *OrderProcedure   `json:"orderProcedure,omitempty"`
}
