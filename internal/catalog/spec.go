// Package catalog is a library of named, parameterized query specifications
// over the inventory schema. Each specification declares the tables it joins,
// a projection whose columns are qualified (and aliased where two tables
// expose the same column name), a selection template with positional
// placeholders, and the order in which callers must supply arguments.
// Correlated scalar sub-queries used as computed columns are themselves built
// as specifications and embedded into the projection.
package catalog

import "strings"

// Column is one projected expression. Alias is empty when the qualified
// expression is unambiguous on its own.
type Column struct {
	Expr  string
	Alias string
}

// Name returns the column name as it appears in the result set.
func (c Column) Name() string {
	if c.Alias != "" {
		return c.Alias
	}
	if i := strings.LastIndex(c.Expr, "."); i >= 0 {
		return c.Expr[i+1:]
	}
	return c.Expr
}

// Spec is a complete query specification. Values are immutable once built;
// SQL rendering is deterministic so the same specification always produces
// the same statement text.
type Spec struct {
	name    string
	columns []Column
	from    string
	where   string
	orderBy string
	limit   string
	params  []string
}

// Name identifies the specification in logs and errors.
func (s Spec) Name() string { return s.name }

// Columns returns the projection in result-set order.
func (s Spec) Columns() []Column { return s.columns }

// Params names the positional arguments the selection template expects, in
// the order they must be supplied at execution time.
func (s Spec) Params() []string { return s.params }

// SQL renders the specification as a single SELECT statement. User input is
// never concatenated into the text; every runtime value binds to a '?'
// placeholder.
func (s Spec) SQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	for i, c := range s.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Expr)
		if c.Alias != "" {
			b.WriteString(" AS ")
			b.WriteString(c.Alias)
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(s.from)
	if s.where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(s.where)
	}
	if s.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(s.orderBy)
	}
	if s.limit != "" {
		b.WriteString(" LIMIT ")
		b.WriteString(s.limit)
	}
	return b.String()
}

// subquery renders s parenthesized for embedding as a scalar projection
// expression or a selection operand.
func (s Spec) subquery() string {
	return "(" + s.SQL() + ")"
}
