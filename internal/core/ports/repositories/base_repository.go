package repositories

import "context"

// Repository is the generic data-access contract shared by every entity.
// Writes are staged in the unit of work carried by ctx and become durable
// only when SaveChanges commits them.
type Repository[T any] interface {
	// Get returns every entity matching opts. It never returns a nil slice.
	Get(ctx context.Context, opts ...QueryOption) ([]T, error)

	// GetFirstOrDefault returns the first match, or nil when nothing matches.
	GetFirstOrDefault(ctx context.Context, opts ...QueryOption) (*T, error)

	// Insert stages a new entity. Its id is written back on commit.
	Insert(ctx context.Context, entity *T) error

	// InsertMany stages several new entities.
	InsertMany(ctx context.Context, entities []*T) error

	// Update stages a full overwrite of an existing entity.
	Update(ctx context.Context, entity *T) error

	// Delete stages the removal of an entity and its cascades.
	Delete(ctx context.Context, entity *T) error

	// DeleteRange stages the removal of every given entity.
	DeleteRange(ctx context.Context, entities []T) error

	// SaveChanges commits everything staged in the unit of work in one transaction.
	SaveChanges(ctx context.Context) error
}

// UnitOfWorkScope opens a unit of work and binds it to a context.
// Every repository called with the returned context shares its staged changes.
type UnitOfWorkScope interface {
	NewScope(ctx context.Context) context.Context
}
