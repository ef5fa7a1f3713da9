package services

import "context"

// CRUDService is the contract shared by every aggregate service.
// T is the entity, K its id type.
type CRUDService[T any, K comparable] interface {
	// GetAll returns every entity. asNoTracking skips changes staged in the request's unit of work.
	GetAll(ctx context.Context, asNoTracking bool) ([]T, error)

	// GetByID returns the entity or an error wrapping apperrors.ErrNotFound.
	GetByID(ctx context.Context, id K) (*T, error)

	// ListPage returns up to limit entities ordered by id, starting after the given id when set.
	ListPage(ctx context.Context, limit int, after *K) ([]T, error)

	// Insert persists the entity and returns it with its assigned id.
	Insert(ctx context.Context, entity *T) (*T, error)

	// Update overwrites the entity stored under id.
	Update(ctx context.Context, id K, entity *T) error

	// Delete removes the entity stored under id, running the cascade rules.
	Delete(ctx context.Context, id K) error

	// DeleteRange removes every entity in ids, or none of them when any is missing.
	DeleteRange(ctx context.Context, ids []K) error
}
