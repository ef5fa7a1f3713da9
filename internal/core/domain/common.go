package domain

// Entity kinds, used in error messages and log fields.
const (
	KindAppointment      = "Appointment"
	KindClient           = "Client"
	KindEmployee         = "Employee"
	KindEmployeePosition = "EmployeePosition"
	KindOrder            = "Order"
	KindOrderProcedure   = "OrderProcedure"
	KindPet              = "Pet"
	KindPhoneNumber      = "PhoneNumber"
	KindProcedure        = "Procedure"
	KindSalary           = "Salary"
	KindSchedule         = "Schedule"
)
