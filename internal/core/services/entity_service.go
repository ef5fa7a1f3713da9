package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
)

// entityService implements the CRUD contract shared by every aggregate service.
// Concrete services embed it and override what differs.
type entityService[T any, K comparable] struct {
	BaseService
	kind     string
	repo     portsrepo.Repository[T]
	idOf     func(*T) K
	includes []string // eager-loaded by GetByID

	// prepareUpdate, when set, reconciles the incoming entity with the stored
	// row before the update is staged.
	prepareUpdate func(stored, incoming *T) error
}

func newEntityService[T any, K comparable](kind string, repo portsrepo.Repository[T], idOf func(*T) K, includes ...string) entityService[T, K] {
	return entityService[T, K]{kind: kind, repo: repo, idOf: idOf, includes: includes}
}

func (s *entityService[T, K]) GetAll(ctx context.Context, asNoTracking bool) ([]T, error) {
	var opts []portsrepo.QueryOption
	if asNoTracking {
		opts = append(opts, portsrepo.AsNoTracking())
	}
	items, err := s.repo.Get(ctx, opts...)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entities", slog.String("kind", s.kind))
		return nil, fmt.Errorf("failed to list %ss: %w", s.kind, err)
	}
	return items, nil
}

func (s *entityService[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	item, err := s.find(ctx, id, s.includes...)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// find returns the tracked entity stored under id, or a NotFound error.
func (s *entityService[T, K]) find(ctx context.Context, id K, includes ...string) (*T, error) {
	opts := []portsrepo.QueryOption{portsrepo.Where(portsrepo.Eq("id", id))}
	if len(includes) > 0 {
		opts = append(opts, portsrepo.Include(includes...))
	}
	item, err := s.repo.GetFirstOrDefault(ctx, opts...)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entity", slog.String("kind", s.kind), slog.Any("id", id))
		return nil, fmt.Errorf("failed to load %s %v: %w", s.kind, id, err)
	}
	if item == nil {
		return nil, apperrors.NotFound(s.kind)
	}
	return item, nil
}

func (s *entityService[T, K]) ListPage(ctx context.Context, limit int, after *K) ([]T, error) {
	opts := []portsrepo.QueryOption{portsrepo.AsNoTracking()}
	if after != nil {
		opts = append(opts, portsrepo.Where(portsrepo.Gt("id", *after)))
	}
	opts = append(opts, portsrepo.OrderBy("id", false), portsrepo.Limit(limit))

	items, err := s.repo.Get(ctx, opts...)
	if err != nil {
		s.LogError(ctx, err, "Failed to list page", slog.String("kind", s.kind), slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list %ss: %w", s.kind, err)
	}
	return items, nil
}

func (s *entityService[T, K]) Insert(ctx context.Context, entity *T) (*T, error) {
	if err := s.repo.Insert(ctx, entity); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, "insert"); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Entity created", slog.String("kind", s.kind), slog.Any("id", s.idOf(entity)))
	return entity, nil
}

func (s *entityService[T, K]) Update(ctx context.Context, id K, entity *T) error {
	if s.idOf(entity) != id {
		return fmt.Errorf("%s %v: %w", s.kind, id, apperrors.ErrIDMismatch)
	}
	stored, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if s.prepareUpdate != nil {
		if err := s.prepareUpdate(stored, entity); err != nil {
			return err
		}
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return err
	}
	if err := s.commit(ctx, "update"); err != nil {
		return err
	}
	s.LogInfo(ctx, "Entity updated", slog.String("kind", s.kind), slog.Any("id", id))
	return nil
}

func (s *entityService[T, K]) Delete(ctx context.Context, id K) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, item); err != nil {
		return err
	}
	if err := s.commit(ctx, "delete"); err != nil {
		return err
	}
	s.LogInfo(ctx, "Entity deleted", slog.String("kind", s.kind), slog.Any("id", id))
	return nil
}

// DeleteRange deletes every entity in ids in one commit. When any id is missing
// nothing is staged and an error wrapping apperrors.ErrPartialCollection is returned.
func (s *entityService[T, K]) DeleteRange(ctx context.Context, ids []K) error {
	if len(ids) == 0 {
		return nil
	}
	distinct := distinctIDs(ids)

	items, err := s.repo.Get(ctx, portsrepo.Where(portsrepo.In("id", distinct)))
	if err != nil {
		s.LogError(ctx, err, "Failed to load entities to delete", slog.String("kind", s.kind))
		return fmt.Errorf("failed to load %ss to delete: %w", s.kind, err)
	}
	if len(items) < len(distinct) {
		s.LogDebug(ctx, "Batch delete rejected",
			slog.String("kind", s.kind),
			slog.Int("requested", len(distinct)),
			slog.Int("found", len(items)))
		return apperrors.PartialCollection(s.kind)
	}

	if err := s.repo.DeleteRange(ctx, items); err != nil {
		return err
	}
	if err := s.commit(ctx, "delete range"); err != nil {
		return err
	}
	s.LogInfo(ctx, "Entities deleted", slog.String("kind", s.kind), slog.Int("count", len(items)))
	return nil
}

func (s *entityService[T, K]) commit(ctx context.Context, action string) error {
	if err := s.repo.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to save changes", slog.String("kind", s.kind), slog.String("action", action))
		return fmt.Errorf("failed to %s %s: %w", action, s.kind, err)
	}
	return nil
}

func distinctIDs[K comparable](ids []K) []K {
	seen := make(map[K]struct{}, len(ids))
	out := make([]K, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
