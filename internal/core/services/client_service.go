package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type clientService struct {
	entityService[domain.Client, string]
	phoneRepo portsrepo.PhoneNumberRepository
}

func NewClientService(repo portsrepo.ClientRepository, phoneRepo portsrepo.PhoneNumberRepository) portssvc.ClientSvcFacade {
	return &clientService{
		entityService: newEntityService[domain.Client, string](domain.KindClient, repo,
			func(c *domain.Client) string { return c.ID }, "PhoneNumbers", "Pets"),
		phoneRepo: phoneRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// Insert stores the client together with its phone numbers in one commit.
func (s *clientService) Insert(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}

	phones := make([]*domain.PhoneNumber, len(client.PhoneNumbers))
	for i := range client.PhoneNumbers {
		p := client.PhoneNumbers[i]
		p.ClientID = client.ID
		phones[i] = &p
	}

	if err := s.repo.Insert(ctx, client); err != nil {
		return nil, err
	}
	if len(phones) > 0 {
		if err := s.phoneRepo.InsertMany(ctx, phones); err != nil {
			return nil, err
		}
	}
	if err := s.commit(ctx, "insert"); err != nil {
		return nil, err
	}

	client.PhoneNumbers = nil
	for _, p := range phones {
		client.PhoneNumbers = append(client.PhoneNumbers, *p)
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ID), slog.Int("phones", len(phones)))
	return client, nil
}

type petService struct {
	entityService[domain.Pet, int]
}

func NewPetService(repo portsrepo.PetRepository) portssvc.PetSvcFacade {
	return &petService{
		entityService: newEntityService[domain.Pet, int](domain.KindPet, repo,
			func(p *domain.Pet) int { return p.ID }),
	}
}

var _ portssvc.PetSvcFacade = (*petService)(nil)

func (s *petService) ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	pets, err := s.repo.Get(ctx,
		portsrepo.Where(portsrepo.Eq("client_id", clientID)),
		portsrepo.OrderBy("id", false),
		portsrepo.AsNoTracking(),
	)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pets", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list pets of client %s: %w", clientID, err)
	}
	return pets, nil
}
