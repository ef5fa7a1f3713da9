package pgsql

import (
	"context"

	"gorm.io/gorm"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *gorm.DB
}

// conn returns a session bound to ctx for reads.
func (r *BaseRepository) conn(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

// unitOfWork returns the unit of work bound to ctx for writes.
func (r *BaseRepository) unitOfWork(ctx context.Context) (*UnitOfWork, error) {
	uow, ok := unitOfWorkFrom(ctx)
	if !ok {
		return nil, errNoUnitOfWork
	}
	return uow, nil
}
