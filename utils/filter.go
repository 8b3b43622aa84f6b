package utils

import "strings"

// OrderDirs are the only accepted sort directions.
var OrderDirs = map[string]bool{"asc": true, "desc": true}

// SafeOrderBy returns col if it is whitelisted, otherwise def. Out of
// range values fall back silently; sort columns are the one place the
// tool surface substitutes instead of rejecting.
func SafeOrderBy(col string, allowed map[string]bool, def string) string {
	if allowed[col] {
		return col
	}
	return def
}

// SafeOrderDir returns dir lowercased if valid, otherwise "desc".
func SafeOrderDir(dir string) string {
	d := strings.ToLower(dir)
	if OrderDirs[d] {
		return d
	}
	return "desc"
}

// Where builds a conjunctive predicate with positional placeholders.
// Column names are supplied by the handlers (closed set), values are
// always bound as args and never interpolated into the SQL text.
type Where struct {
	conds   []string
	args    []interface{}
	filters int
}

// NewWhere starts a predicate from a base condition that does not
// count as a caller-supplied filter (typically the soft-delete guard).
func NewWhere(base string, args ...interface{}) *Where {
	return &Where{conds: []string{base}, args: args}
}

func (w *Where) add(cond string, args ...interface{}) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
	w.filters++
}

// Eq adds an exact-match condition.
func (w *Where) Eq(col string, val interface{}) {
	w.add(col+" = ?", val)
}

// Contains adds a case-insensitive substring match. LOWER/LIKE keeps
// it portable across postgres and sqlite.
func (w *Where) Contains(col, val string) {
	w.add("LOWER("+col+") LIKE LOWER(?)", "%"+val+"%")
}

// Pattern adds a case-insensitive match with caller-supplied
// wildcards, or an exact match when the value carries none.
func (w *Where) Pattern(col, val string) {
	if strings.ContainsAny(val, "%_") {
		w.add("LOWER("+col+") LIKE LOWER(?)", val)
		return
	}
	w.Eq(col, val)
}

// In adds a membership test bound to a slice parameter.
func (w *Where) In(col string, vals []string) {
	w.add(col+" IN ?", vals)
}

// Gte adds an inclusive lower bound.
func (w *Where) Gte(col string, val interface{}) {
	w.add(col+" >= ?", val)
}

// Lte adds an inclusive upper bound.
func (w *Where) Lte(col string, val interface{}) {
	w.add(col+" <= ?", val)
}

// HasFilters reports whether any condition beyond the base was added.
// Searches with zero filters are rejected to avoid unbounded scans.
func (w *Where) HasFilters() bool {
	return w.filters > 0
}

// SQL renders the conjunction.
func (w *Where) SQL() string {
	return strings.Join(w.conds, " AND ")
}

// Args returns the bound values in placeholder order.
func (w *Where) Args() []interface{} {
	return w.args
}
