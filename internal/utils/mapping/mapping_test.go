package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/SscSPs/vetclinic_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainOrderProcedure_Navigations(t *testing.T) {
	procID := 3
	m := models.OrderProcedure{
		ID:          7,
		Conclusion:  "healthy",
		ProcedureID: &procID,
		Procedure:   &models.Procedure{ID: procID, Title: "Checkup", Duration: 30 * time.Minute, Price: decimal.NewFromInt(25)},
		Appointment: &models.Appointment{ID: 11, Status: "Closed", OrderProcedureID: &[]int{7}[0]},
	}

	d := ToDomainOrderProcedure(m)

	assert.Equal(t, 7, d.ID)
	if assert.NotNil(t, d.Procedure) {
		assert.Equal(t, "Checkup", d.Procedure.Title)
		assert.True(t, d.Procedure.Price.Equal(decimal.NewFromInt(25)))
	}
	if assert.NotNil(t, d.Appointment) {
		assert.Equal(t, domain.AppointmentClosed, d.Appointment.Status)
	}
	assert.Nil(t, d.Order)
	assert.Nil(t, d.Employee)
}

func TestClientRoundTrip_KeepsNilCollections(t *testing.T) {
	c := domain.Client{User: domain.User{ID: "u-1", FirstName: "Ann"}}

	m := ToModelClient(c)
	assert.Nil(t, m.PhoneNumbers)
	assert.Nil(t, m.Pets)
	assert.Equal(t, c, ToDomainClient(m))
}
