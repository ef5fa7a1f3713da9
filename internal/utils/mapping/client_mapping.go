package mapping

import (
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/SscSPs/vetclinic_backend/internal/models"
)

func toModelUser(d domain.User) models.User {
	return models.User{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName, Email: d.Email}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, Email: m.Email}
}

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		User:         toModelUser(d.User),
		PhoneNumbers: mapSlice(d.PhoneNumbers, ToModelPhoneNumber),
		Pets:         mapSlice(d.Pets, ToModelPet),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		User:         toDomainUser(m.User),
		PhoneNumbers: mapSlice(m.PhoneNumbers, ToDomainPhoneNumber),
		Pets:         mapSlice(m.Pets, ToDomainPet),
	}
}

func ToModelPhoneNumber(d domain.PhoneNumber) models.PhoneNumber {
	return models.PhoneNumber{ID: d.ID, Phone: d.Phone, ClientID: d.ClientID}
}

func ToDomainPhoneNumber(m models.PhoneNumber) domain.PhoneNumber {
	return domain.PhoneNumber{ID: m.ID, Phone: m.Phone, ClientID: m.ClientID}
}

func ToModelPet(d domain.Pet) models.Pet {
	return models.Pet{
		ID:          d.ID,
		Name:        d.Name,
		Information: d.Information,
		Breed:       d.Breed,
		Age:         d.Age,
		AnimalType:  d.AnimalType,
		ClientID:    d.ClientID,
	}
}

func ToDomainPet(m models.Pet) domain.Pet {
	return domain.Pet{
		ID:          m.ID,
		Name:        m.Name,
		Information: m.Information,
		Breed:       m.Breed,
		Age:         m.Age,
		AnimalType:  m.AnimalType,
		ClientID:    m.ClientID,
	}
}
