package models

// Model is implemented by every persisted record.
type Model interface {
	TableName() string
	PrimaryKey() any
}

// User is embedded by Client and Employee. Ids are issued by the identity provider.
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:255"`
}

// All returns every model, in an order that satisfies FK creation.
func All() []any {
	return []any{
		&Client{}, &PhoneNumber{}, &Pet{},
		&EmployeePosition{}, &Employee{}, &Salary{}, &Schedule{},
		&Procedure{}, &OrderProcedure{}, &Order{}, &Appointment{},
	}
}
