package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	"github.com/SscSPs/vetclinic_backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository implements portsrepo.Repository for a domain type D stored as model M.
type GormRepository[D any, M models.Model] struct {
	BaseRepository
	table    string
	toModel  func(D) M
	toDomain func(M) D
}

func newGormRepository[D any, M models.Model](db *gorm.DB, toModel func(D) M, toDomain func(M) D) *GormRepository[D, M] {
	var zero M
	return &GormRepository[D, M]{
		BaseRepository: BaseRepository{DB: db},
		table:          zero.TableName(),
		toModel:        toModel,
		toDomain:       toDomain,
	}
}

func (r *GormRepository[D, M]) Get(ctx context.Context, opts ...portsrepo.QueryOption) ([]D, error) {
	q := portsrepo.NewQuery(opts...)

	db, err := applyQuery(r.conn(ctx), q)
	if err != nil {
		return nil, err
	}
	var rows []M
	if err := db.Find(&rows).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to query %s", r.table))
	}

	uow, tracked := unitOfWorkFrom(ctx)
	tracked = tracked && !q.NoTracking

	out := make([]D, 0, len(rows))
	for _, m := range rows {
		if tracked {
			if op, ok := uow.pendingFor(r.table, m.PrimaryKey()); ok {
				if op.kind == opDelete {
					continue
				}
				m = *op.model.(*M)
			}
		}
		out = append(out, r.toDomain(m))
	}
	return out, nil
}

func (r *GormRepository[D, M]) GetFirstOrDefault(ctx context.Context, opts ...portsrepo.QueryOption) (*D, error) {
	q := portsrepo.NewQuery(opts...)
	uow, ok := unitOfWorkFrom(ctx)
	// Staged deletes may hide the first row, so only limit when nothing is pending.
	if q.Limit == 0 && (q.NoTracking || !ok || !uow.hasPendingFor(r.table)) {
		opts = append(opts, portsrepo.Limit(1))
	}

	found, err := r.Get(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *GormRepository[D, M]) Insert(ctx context.Context, entity *D) error {
	uow, err := r.unitOfWork(ctx)
	if err != nil {
		return err
	}
	uow.stage(r.insertOp(entity))
	return nil
}

func (r *GormRepository[D, M]) InsertMany(ctx context.Context, entities []*D) error {
	uow, err := r.unitOfWork(ctx)
	if err != nil {
		return err
	}
	ops := make([]stagedOp, 0, len(entities))
	for _, e := range entities {
		ops = append(ops, r.insertOp(e))
	}
	uow.stage(ops...)
	return nil
}

func (r *GormRepository[D, M]) insertOp(entity *D) stagedOp {
	m := r.toModel(*entity)
	return stagedOp{
		kind:  opInsert,
		table: r.table,
		model: &m,
		after: func() {
			*entity = r.toDomain(m)
		},
	}
}

func (r *GormRepository[D, M]) Update(ctx context.Context, entity *D) error {
	uow, err := r.unitOfWork(ctx)
	if err != nil {
		return err
	}
	m := r.toModel(*entity)
	uow.stage(stagedOp{kind: opUpdate, table: r.table, key: m.PrimaryKey(), model: &m})
	return nil
}

func (r *GormRepository[D, M]) Delete(ctx context.Context, entity *D) error {
	uow, err := r.unitOfWork(ctx)
	if err != nil {
		return err
	}
	uow.stage(r.deleteOp(*entity))
	return nil
}

func (r *GormRepository[D, M]) DeleteRange(ctx context.Context, entities []D) error {
	uow, err := r.unitOfWork(ctx)
	if err != nil {
		return err
	}
	ops := make([]stagedOp, 0, len(entities))
	for _, e := range entities {
		ops = append(ops, r.deleteOp(e))
	}
	uow.stage(ops...)
	return nil
}

func (r *GormRepository[D, M]) deleteOp(entity D) stagedOp {
	return stagedOp{kind: opDelete, table: r.table, key: r.toModel(entity).PrimaryKey()}
}

func (r *GormRepository[D, M]) SaveChanges(ctx context.Context) error {
	uow, err := r.unitOfWork(ctx)
	if err != nil {
		return err
	}
	return uow.SaveChanges(ctx)
}

func applyQuery(db *gorm.DB, q portsrepo.QueryOptions) (*gorm.DB, error) {
	for _, c := range q.Conditions {
		expr, err := conditionExpr(c)
		if err != nil {
			return nil, err
		}
		db = db.Where(expr)
	}
	for _, o := range q.Orderings {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	for _, inc := range q.Includes {
		db = db.Preload(inc)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db, nil
}

func conditionExpr(c portsrepo.Condition) (clause.Expression, error) {
	col := clause.Column{Table: clause.CurrentTable, Name: c.Column}
	switch c.Op {
	case portsrepo.OpEq:
		return clause.Eq{Column: col, Value: c.Value}, nil
	case portsrepo.OpIn:
		values, _ := c.Value.([]any)
		return clause.IN{Column: col, Values: values}, nil
	case portsrepo.OpGt:
		return clause.Gt{Column: col, Value: c.Value}, nil
	case portsrepo.OpIsNull:
		return clause.Expr{SQL: "? IS NULL", Vars: []any{col}}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q on column %s", c.Op, c.Column)
}
