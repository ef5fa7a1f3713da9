package pgsql

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Action is what happens to a dependent row when its principal is deleted.
type Action int

const (
	// Cascade deletes dependents whose ForeignKey references the principal.
	Cascade Action = iota
	// SetNull clears the dependents' ForeignKey.
	SetNull
	// CascadeOwned deletes the dependent row referenced by the principal's own ForeignKey.
	CascadeOwned
	// Detach leaves the dependent untouched.
	Detach
)

func (a Action) String() string {
	switch a {
	case Cascade:
		return "cascade"
	case SetNull:
		return "set-null"
	case CascadeOwned:
		return "cascade-owned"
	case Detach:
		return "detach"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Rule describes one relationship between two tables. All primary keys are "id".
type Rule struct {
	Principal  string
	Dependent  string
	ForeignKey string
	Action     Action
}

// DefaultRules is the relationship policy of the clinic schema.
// The database carries no ON DELETE actions; these rules are applied on commit.
var DefaultRules = []Rule{
	{Principal: "employee_positions", Dependent: "employees", ForeignKey: "employee_position_id", Action: SetNull},
	{Principal: "employee_positions", Dependent: "salaries", ForeignKey: "employee_position_id", Action: Cascade},

	{Principal: "procedures", Dependent: "order_procedures", ForeignKey: "procedure_id", Action: SetNull},

	{Principal: "orders", Dependent: "order_procedures", ForeignKey: "order_procedure_id", Action: CascadeOwned},

	// An appointment only points at its order procedure; the procedure outlives it.
	{Principal: "appointments", Dependent: "order_procedures", ForeignKey: "order_procedure_id", Action: Detach},

	{Principal: "order_procedures", Dependent: "appointments", ForeignKey: "order_procedure_id", Action: SetNull},
	{Principal: "order_procedures", Dependent: "orders", ForeignKey: "order_procedure_id", Action: Cascade},

	{Principal: "employees", Dependent: "employee_positions", ForeignKey: "employee_id", Action: SetNull},
	{Principal: "employees", Dependent: "schedules", ForeignKey: "employee_id", Action: Cascade},
	{Principal: "employees", Dependent: "order_procedures", ForeignKey: "employee_id", Action: SetNull},

	{Principal: "clients", Dependent: "pets", ForeignKey: "client_id", Action: Cascade},
	{Principal: "clients", Dependent: "phone_numbers", ForeignKey: "client_id", Action: Cascade},
}

// cascadeExecutor deletes rows inside a transaction, applying rules.
// A row is deleted at most once per executor, which makes cyclic rules safe.
type cascadeExecutor struct {
	tx      *gorm.DB
	rules   []Rule
	visited map[string]struct{}
}

func newCascadeExecutor(tx *gorm.DB, rules []Rule) *cascadeExecutor {
	return &cascadeExecutor{tx: tx, rules: rules, visited: make(map[string]struct{})}
}

type ownedRef struct {
	table string
	key   any
}

func (c *cascadeExecutor) delete(table string, key any) error {
	k := rowKey(table, key)
	if _, done := c.visited[k]; done {
		return nil
	}
	c.visited[k] = struct{}{}

	var owned []ownedRef
	for _, r := range c.rules {
		if r.Principal != table {
			continue
		}
		switch r.Action {
		case SetNull:
			err := c.tx.Table(r.Dependent).
				Where(clause.Eq{Column: clause.Column{Name: r.ForeignKey}, Value: key}).
				Update(r.ForeignKey, nil).Error
			if err != nil {
				return fmt.Errorf("clearing %s.%s: %w", r.Dependent, r.ForeignKey, err)
			}
		case Cascade:
			ids, err := c.selectColumn(r.Dependent, "id", r.ForeignKey, key)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if err := c.delete(r.Dependent, id); err != nil {
					return err
				}
			}
		case CascadeOwned:
			refs, err := c.selectColumn(table, r.ForeignKey, "id", key)
			if err != nil {
				return err
			}
			for _, ref := range refs {
				if ref != nil {
					owned = append(owned, ownedRef{table: r.Dependent, key: ref})
				}
			}
		case Detach:
		}
	}

	err := c.tx.Exec("DELETE FROM ? WHERE ? = ?", clause.Table{Name: table}, clause.Column{Name: "id"}, key).Error
	if err != nil {
		return fmt.Errorf("deleting %s %v: %w", table, key, err)
	}

	// Owned rows go after the principal so the principal's reference never dangles.
	for _, ref := range owned {
		if err := c.delete(ref.table, ref.key); err != nil {
			return err
		}
	}
	return nil
}

// selectColumn returns column from every row of table where where = value.
func (c *cascadeExecutor) selectColumn(table, column, where string, value any) ([]any, error) {
	rows, err := c.tx.Table(table).
		Select(column).
		Where(clause.Eq{Column: clause.Column{Name: where}, Value: value}).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("reading %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var out []any
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s.%s: %w", table, column, err)
		}
		out = append(out, normalizeKey(v))
	}
	return out, rows.Err()
}

func normalizeKey(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func rowKey(table string, key any) string {
	return fmt.Sprintf("%s:%v", table, key)
}
