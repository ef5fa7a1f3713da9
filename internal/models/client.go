package models

type Client struct {
	User
	PhoneNumbers []PhoneNumber `gorm:"foreignKey:ClientID"`
	Pets         []Pet         `gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string { return "clients" }
func (c Client) PrimaryKey() any { return c.ID }

type PhoneNumber struct {
	ID       int    `gorm:"primaryKey"`
	Phone    string `gorm:"size:13;not null"`
	ClientID string `gorm:"type:varchar(36);not null;index"`
}

func (PhoneNumber) TableName() string { return "phone_numbers" }
func (p PhoneNumber) PrimaryKey() any { return p.ID }

type Pet struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Information string `gorm:"size:500"`
	Breed       string `gorm:"size:100"`
	Age         int
	AnimalType  string `gorm:"size:50"`
	ClientID    string `gorm:"type:varchar(36);not null;index"`
}

func (Pet) TableName() string { return "pets" }
func (p Pet) PrimaryKey() any { return p.ID }
