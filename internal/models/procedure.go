package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Procedure struct {
	ID          int             `gorm:"primaryKey"`
	Title       string          `gorm:"size:50;not null"`
	Description string          `gorm:"size:50"`
	Duration    time.Duration   `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (Procedure) TableName() string { return "procedures" }
func (p Procedure) PrimaryKey() any { return p.ID }

type OrderProcedure struct {
	ID          int          `gorm:"primaryKey"`
	Conclusion  string       `gorm:"size:50;not null"`
	Details     string       `gorm:"size:50"`
	ProcedureID *int         `gorm:"index"`
	Procedure   *Procedure   `gorm:"foreignKey:ProcedureID"`
	EmployeeID  *string      `gorm:"type:varchar(36);index"`
	Employee    *Employee    `gorm:"foreignKey:EmployeeID"`
	Appointment *Appointment `gorm:"foreignKey:OrderProcedureID"`
	Order       *Order       `gorm:"foreignKey:OrderProcedureID"`
}

func (OrderProcedure) TableName() string { return "order_procedures" }
func (o OrderProcedure) PrimaryKey() any { return o.ID }

type Order struct {
	ID               int             `gorm:"primaryKey"`
	CreatedTime      time.Time       `gorm:"not null"`
	IsPaid           bool            `gorm:"not null;default:false"`
	OrderProcedureID int             `gorm:"not null;uniqueIndex"`
	OrderProcedure   *OrderProcedure `gorm:"foreignKey:OrderProcedureID"`
}

func (Order) TableName() string { return "orders" }
func (o Order) PrimaryKey() any { return o.ID }

type Appointment struct {
	ID               int             `gorm:"primaryKey"`
	Status           string          `gorm:"size:20;not null"`
	From             time.Time       `gorm:"column:from_time;not null"`
	To               time.Time       `gorm:"column:to_time;not null"`
	OrderProcedureID *int            `gorm:"uniqueIndex"`
	OrderProcedure   *OrderProcedure `gorm:"foreignKey:OrderProcedureID"`
}

func (Appointment) TableName() string { return "appointments" }
func (a Appointment) PrimaryKey() any { return a.ID }
