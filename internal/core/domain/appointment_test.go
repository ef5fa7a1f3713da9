package domain_test

import (
	"testing"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AppointmentStatus
		want   bool
	}{
		{name: "opened", status: domain.AppointmentOpened, want: true},
		{name: "in progress", status: domain.AppointmentInProgress, want: true},
		{name: "closed", status: domain.AppointmentClosed, want: true},
		{name: "cancelled", status: domain.AppointmentCancelled, want: true},
		{name: "empty", status: "", want: false},
		{name: "unknown", status: "Archived", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ann Lee", domain.User{FirstName: "Ann", LastName: "Lee"}.FullName())
	assert.Equal(t, "Lee", domain.User{LastName: "Lee"}.FullName())
	assert.Equal(t, "Ann", domain.User{FirstName: "Ann"}.FullName())
	assert.Equal(t, "Ann Lee", domain.Employee{User: domain.User{FirstName: "Ann", LastName: "Lee"}}.String())
}
