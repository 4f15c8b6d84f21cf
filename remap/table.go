package remap

import "fmt"

// Unresolved stands in for a live object that was never bound. It is only
// produced by a Table in relaxed mode.
type Unresolved struct {
	ID ID
}

// String implements fmt.Stringer.
func (u Unresolved) String() string {
	return "<unresolved " + u.ID.String() + ">"
}

// Table maps recorded IDs to the live objects created during replay.
type Table struct {
	objs    map[uint64]any
	relaxed bool
}

// TableOption configures a Table.
type TableOption func(*Table)

// Relaxed makes Resolve return an Unresolved sentinel instead of failing
// when an ID has no binding. Intended for diagnostic replay of damaged
// traces.
func Relaxed() TableOption {
	return func(t *Table) { t.relaxed = true }
}

// NewTable creates an empty table. Resolve is strict unless Relaxed is
// given.
func NewTable(opts ...TableOption) *Table {
	t := &Table{objs: make(map[uint64]any)}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Bind associates id with obj. A later Bind for the same id replaces the
// earlier one, since a replay may legitimately recreate a handle.
func (t *Table) Bind(id ID, obj any) {
	t.objs[id.N] = obj
}

// Resolve returns the live object bound to id.
func (t *Table) Resolve(id ID) (any, error) {
	obj, ok := t.objs[id.N]
	if ok {
		return obj, nil
	}
	if t.relaxed {
		return Unresolved{ID: id}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingHandle, id)
}

// IsRelaxed reports whether missing bindings are tolerated.
func (t *Table) IsRelaxed() bool {
	return t.relaxed
}

// Len returns the number of bound IDs.
func (t *Table) Len() int {
	return len(t.objs)
}
