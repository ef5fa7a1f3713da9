package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	"github.com/SscSPs/vetclinic_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_Insert_StagesPhonesInSameCommit(t *testing.T) {
	ctx := context.Background()
	clientRepo := new(MockRepository[domain.Client])
	phoneRepo := new(MockRepository[domain.PhoneNumber])
	svc := services.NewClientService(clientRepo, phoneRepo)

	client := &domain.Client{
		User:         domain.User{FirstName: "Ann", LastName: "Lee"},
		PhoneNumbers: []domain.PhoneNumber{{Phone: "+380501112233"}, {Phone: "+380501112244"}},
	}

	var staged []*domain.PhoneNumber
	clientRepo.On("Insert", ctx, client).Return(nil).Once()
	phoneRepo.On("InsertMany", ctx, mock.AnythingOfType("[]*domain.PhoneNumber")).
		Run(func(args mock.Arguments) { staged = args.Get(1).([]*domain.PhoneNumber) }).
		Return(nil).Once()
	clientRepo.On("SaveChanges", ctx).Run(func(mock.Arguments) {
		for i, p := range staged {
			p.ID = i + 1
		}
	}).Return(nil).Once()

	got, err := svc.Insert(ctx, client)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(got.ID)
	assert.NoError(t, parseErr)
	require.Len(t, got.PhoneNumbers, 2)
	for i, p := range got.PhoneNumbers {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, got.ID, p.ClientID)
	}
	phoneRepo.AssertNotCalled(t, "SaveChanges", mock.Anything)
	clientRepo.AssertExpectations(t)
	phoneRepo.AssertExpectations(t)
}

func TestClientService_Insert_KeepsGivenID(t *testing.T) {
	ctx := context.Background()
	clientRepo := new(MockRepository[domain.Client])
	svc := services.NewClientService(clientRepo, new(MockRepository[domain.PhoneNumber]))

	client := &domain.Client{User: domain.User{ID: "idp-123"}}
	clientRepo.On("Insert", ctx, client).Return(nil).Once()
	clientRepo.On("SaveChanges", ctx).Return(nil).Once()

	got, err := svc.Insert(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, "idp-123", got.ID)
}

func TestClientService_GetByID_LoadsPhonesAndPets(t *testing.T) {
	ctx := context.Background()
	clientRepo := new(MockRepository[domain.Client])
	svc := services.NewClientService(clientRepo, new(MockRepository[domain.PhoneNumber]))

	stored := &domain.Client{User: domain.User{ID: "c-1"}, Pets: []domain.Pet{{ID: 1, Name: "Rex"}}}
	clientRepo.On("GetFirstOrDefault", ctx, byIDWith("c-1", "PhoneNumbers", "Pets")).Return(stored, nil).Once()
	clientRepo.On("GetFirstOrDefault", ctx, byIDWith("c-2", "PhoneNumbers", "Pets")).Return(nil, nil).Once()

	got, err := svc.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Len(t, got.Pets, 1)

	_, err = svc.GetByID(ctx, "c-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPetService_ListByClient(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[domain.Pet])
	svc := services.NewPetService(repo)

	repo.On("Get", ctx, portsrepo.NewQuery(
		portsrepo.Where(portsrepo.Eq("client_id", "c-1")),
		portsrepo.OrderBy("id", false),
		portsrepo.AsNoTracking(),
	)).Return([]domain.Pet{{ID: 1, ClientID: "c-1"}}, nil).Once()

	pets, err := svc.ListByClient(ctx, "c-1")
	require.NoError(t, err)
	assert.Len(t, pets, 1)
	repo.AssertExpectations(t)
}
