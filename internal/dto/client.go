package dto

import "github.com/SscSPs/vetclinic_backend/internal/core/domain"

type ClientViewModel struct {
	ID           string                 `json:"id"`
	FirstName    string                 `json:"firstName" binding:"required,max=100"`
	LastName     string                 `json:"lastName" binding:"required,max=100"`
	Email        string                 `json:"email" binding:"required,email"`
	PhoneNumbers []PhoneNumberViewModel `json:"phoneNumbers,omitempty" binding:"omitempty,dive"`
	Pets         []PetViewModel         `json:"pets,omitempty" binding:"-"`
}

func ToClientViewModel(c domain.Client) ClientViewModel {
	return ClientViewModel{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		PhoneNumbers: toListOrNil(c.PhoneNumbers, ToPhoneNumberViewModel),
		Pets:         toListOrNil(c.Pets, ToPetViewModel),
	}
}

func (vm ClientViewModel) ToDomain() domain.Client {
	c := domain.Client{
		User: domain.User{ID: vm.ID, FirstName: vm.FirstName, LastName: vm.LastName, Email: vm.Email},
	}
	for _, p := range vm.PhoneNumbers {
		c.PhoneNumbers = append(c.PhoneNumbers, p.ToDomain())
	}
	return c
}

type PhoneNumberViewModel struct {
	ID       int    `json:"id"`
	Phone    string `json:"phone" binding:"required,max=13"`
	ClientID string `json:"clientId,omitempty"`
}

func ToPhoneNumberViewModel(p domain.PhoneNumber) PhoneNumberViewModel {
	return PhoneNumberViewModel{ID: p.ID, Phone: p.Phone, ClientID: p.ClientID}
}

func (vm PhoneNumberViewModel) ToDomain() domain.PhoneNumber {
	return domain.PhoneNumber{ID: vm.ID, Phone: vm.Phone, ClientID: vm.ClientID}
}

type PetViewModel struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required,max=100"`
	Information string `json:"information" binding:"max=500"`
	Breed       string `json:"breed" binding:"max=100"`
	Age         int    `json:"age" binding:"gte=0"`
	AnimalType  string `json:"animalType" binding:"max=50"`
	ClientID    string `json:"clientId" binding:"required"`
}

func ToPetViewModel(p domain.Pet) PetViewModel {
	return PetViewModel{
		ID:          p.ID,
		Name:        p.Name,
		Information: p.Information,
		Breed:       p.Breed,
		Age:         p.Age,
		AnimalType:  p.AnimalType,
		ClientID:    p.ClientID,
	}
}

func (vm PetViewModel) ToDomain() domain.Pet {
	return domain.Pet{
		ID:          vm.ID,
		Name:        vm.Name,
		Information: vm.Information,
		Breed:       vm.Breed,
		Age:         vm.Age,
		AnimalType:  vm.AnimalType,
		ClientID:    vm.ClientID,
	}
}
