package repositories

// Operator is a comparison used by a Condition.
type Operator string

const (
	OpEq     Operator = "="
	OpIn     Operator = "IN"
	OpGt     Operator = ">"
	OpIsNull Operator = "IS NULL"
)

// Condition is a store-agnostic filter on a single column.
type Condition struct {
	Column string
	Op     Operator
	Value  any
}

func Eq(column string, value any) Condition {
	return Condition{Column: column, Op: OpEq, Value: value}
}

// In matches rows whose column is one of values.
func In[V any](column string, values []V) Condition {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Condition{Column: column, Op: OpIn, Value: vs}
}

func Gt(column string, value any) Condition {
	return Condition{Column: column, Op: OpGt, Value: value}
}

func IsNull(column string) Condition {
	return Condition{Column: column, Op: OpIsNull}
}

// Ordering sorts results by a column.
type Ordering struct {
	Column string
	Desc   bool
}

// QueryOptions is the resolved form of a set of QueryOption values.
type QueryOptions struct {
	Conditions []Condition
	Orderings  []Ordering
	Includes   []string
	NoTracking bool
	Limit      int
}

// QueryOption configures a read.
type QueryOption func(*QueryOptions)

// Where adds filter conditions; all of them must hold.
func Where(conds ...Condition) QueryOption {
	return func(o *QueryOptions) {
		o.Conditions = append(o.Conditions, conds...)
	}
}

// OrderBy appends a sort column. Calls are applied in order.
func OrderBy(column string, desc bool) QueryOption {
	return func(o *QueryOptions) {
		o.Orderings = append(o.Orderings, Ordering{Column: column, Desc: desc})
	}
}

// Include eager-loads navigations by name, e.g. "PhoneNumbers" or "Order.OrderProcedure".
func Include(names ...string) QueryOption {
	return func(o *QueryOptions) {
		o.Includes = append(o.Includes, names...)
	}
}

// AsNoTracking reads committed state only, ignoring changes staged in the unit of work.
func AsNoTracking() QueryOption {
	return func(o *QueryOptions) {
		o.NoTracking = true
	}
}

func Limit(n int) QueryOption {
	return func(o *QueryOptions) {
		o.Limit = n
	}
}

// NewQuery resolves opts into a QueryOptions value.
func NewQuery(opts ...QueryOption) QueryOptions {
	var q QueryOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&q)
		}
	}
	return q
}
