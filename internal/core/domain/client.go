package domain

// Client is a pet owner. It owns its phone numbers and pets.
type Client struct {
	User
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
	Pets         []Pet         `json:"pets,omitempty"`
}

// PhoneNumber belongs to exactly one client.
type PhoneNumber struct {
	ID       int    `json:"id"`
	Phone    string `json:"phone"`
	ClientID string `json:"clientID"`
}

// Pet belongs to exactly one client.
type Pet struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Information string `json:"information"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	AnimalType  string `json:"animalType"`
	ClientID    string `json:"clientID"`
}
