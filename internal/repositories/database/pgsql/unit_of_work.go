package pgsql

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
)

type stagedOp struct {
	kind  opKind
	table string
	key   any
	model any    // pointer to the persistence model
	after func() // runs once the commit succeeded
}

// UnitOfWork collects staged writes and commits them in one transaction.
type UnitOfWork struct {
	db    *gorm.DB
	rules []Rule

	mu  sync.Mutex
	ops []stagedOp
}

func newUnitOfWork(db *gorm.DB, rules []Rule) *UnitOfWork {
	return &UnitOfWork{db: db, rules: rules}
}

type unitOfWorkCtxKey struct{}

func withUnitOfWork(ctx context.Context, uow *UnitOfWork) context.Context {
	return context.WithValue(ctx, unitOfWorkCtxKey{}, uow)
}

func unitOfWorkFrom(ctx context.Context) (*UnitOfWork, bool) {
	uow, ok := ctx.Value(unitOfWorkCtxKey{}).(*UnitOfWork)
	return uow, ok && uow != nil
}

func (u *UnitOfWork) stage(ops ...stagedOp) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, ops...)
}

// pendingFor returns the last staged update or delete for a row.
func (u *UnitOfWork) pendingFor(table string, key any) (stagedOp, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	want := rowKey(table, key)
	for i := len(u.ops) - 1; i >= 0; i-- {
		op := u.ops[i]
		if op.kind == opInsert || op.table != table {
			continue
		}
		if rowKey(op.table, op.key) == want {
			return op, true
		}
	}
	return stagedOp{}, false
}

func (u *UnitOfWork) hasPendingFor(table string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, op := range u.ops {
		if op.table == table && op.kind != opInsert {
			return true
		}
	}
	return false
}

// SaveChanges applies every staged write in order inside a single transaction.
// On failure nothing is persisted and the staged writes are dropped.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	u.mu.Lock()
	ops := u.ops
	u.ops = nil
	u.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cascade := newCascadeExecutor(tx, u.rules)
		for _, op := range ops {
			if err := applyOp(tx, cascade, op); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateError(err, "failed to commit changes")
	}

	for _, op := range ops {
		if op.after != nil {
			op.after()
		}
	}
	return nil
}

func applyOp(tx *gorm.DB, cascade *cascadeExecutor, op stagedOp) error {
	switch op.kind {
	case opInsert:
		if err := tx.Omit(clause.Associations).Create(op.model).Error; err != nil {
			return fmt.Errorf("inserting into %s: %w", op.table, err)
		}
	case opUpdate:
		// Select("*") writes zero values too, so the row is fully overwritten.
		res := tx.Model(op.model).Select("*").Omit(clause.Associations).Updates(op.model)
		if res.Error != nil {
			return fmt.Errorf("updating %s %v: %w", op.table, op.key, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("updating %s %v: %w", op.table, op.key, apperrors.ErrNotFound)
		}
	case opDelete:
		return cascade.delete(op.table, op.key)
	}
	return nil
}

// Store opens units of work over a database.
type Store struct {
	db    *gorm.DB
	rules []Rule
}

// NewStore creates a Store applying DefaultRules on delete.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, rules: DefaultRules}
}

var _ portsrepo.UnitOfWorkScope = (*Store)(nil)

// NewScope returns ctx carrying a fresh unit of work.
func (s *Store) NewScope(ctx context.Context) context.Context {
	return withUnitOfWork(ctx, newUnitOfWork(s.db, s.rules))
}

// DB exposes the underlying handle the repositories are built on.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
