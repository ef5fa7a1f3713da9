package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	"github.com/SscSPs/vetclinic_backend/internal/core/services"
	"github.com/SscSPs/vetclinic_backend/internal/models"
	"github.com/SscSPs/vetclinic_backend/internal/repositories/database/pgsql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openStore(t *testing.T) *pgsql.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return pgsql.NewStore(db)
}

func remainingIDs(t *testing.T, ctx context.Context, svc interface {
	GetAll(context.Context, bool) ([]domain.Appointment, error)
}) []int {
	t.Helper()
	all, err := svc.GetAll(ctx, true)
	require.NoError(t, err)
	ids := make([]int, len(all))
	for i, a := range all {
		ids[i] = a.ID
	}
	return ids
}

func TestAppointmentService_DeleteRange_AgainstStore(t *testing.T) {
	store := openStore(t)
	repos := pgsql.NewRepositoryProvider(store.DB())
	svc := services.NewAppointmentService(repos.AppointmentRepo)

	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	ctx := store.NewScope(context.Background())
	for _, id := range []int{4, 6, 8, 9} {
		require.NoError(t, repos.AppointmentRepo.Insert(ctx, &domain.Appointment{
			ID: id, Status: domain.AppointmentOpened, From: from, To: from.Add(time.Hour),
		}))
	}
	require.NoError(t, repos.AppointmentRepo.SaveChanges(ctx))

	err := svc.DeleteRange(store.NewScope(context.Background()), []int{4, 8, 100})
	require.ErrorIs(t, err, apperrors.ErrPartialCollection)
	assert.Contains(t, err.Error(), "Appointments to delete")
	assert.ElementsMatch(t, []int{4, 6, 8, 9}, remainingIDs(t, context.Background(), svc))

	require.NoError(t, svc.DeleteRange(store.NewScope(context.Background()), []int{4, 8, 9}))
	assert.Equal(t, []int{6}, remainingIDs(t, context.Background(), svc))
}
