package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	User
	Address            string            `gorm:"size:255"`
	EmployeePositionID *int              `gorm:"uniqueIndex"`
	EmployeePosition   *EmployeePosition `gorm:"foreignKey:EmployeePositionID"`
	Schedules          []Schedule        `gorm:"foreignKey:EmployeeID"`
	OrderProcedures    []OrderProcedure  `gorm:"foreignKey:EmployeeID"`
}

func (Employee) TableName() string { return "employees" }
func (e Employee) PrimaryKey() any { return e.ID }

type EmployeePosition struct {
	ID                int             `gorm:"primaryKey"`
	CurrentBaseSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Rate              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EmployeeID        *string         `gorm:"type:varchar(36);uniqueIndex"`
	Employee          *Employee       `gorm:"foreignKey:EmployeeID"`
	Salaries          []Salary        `gorm:"foreignKey:EmployeePositionID"`
}

func (EmployeePosition) TableName() string { return "employee_positions" }
func (p EmployeePosition) PrimaryKey() any { return p.ID }

type Salary struct {
	ID                 int             `gorm:"primaryKey"`
	EmployeePositionID int             `gorm:"not null;index"`
	Amount             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaidAt             time.Time       `gorm:"not null"`
}

func (Salary) TableName() string { return "salaries" }
func (s Salary) PrimaryKey() any { return s.ID }

type Schedule struct {
	ID         int          `gorm:"primaryKey"`
	Day        time.Weekday `gorm:"not null"`
	From       time.Time    `gorm:"column:from_time;not null"`
	To         time.Time    `gorm:"column:to_time;not null"`
	EmployeeID string       `gorm:"type:varchar(36);not null;index"`
}

func (Schedule) TableName() string { return "schedules" }
func (s Schedule) PrimaryKey() any { return s.ID }
