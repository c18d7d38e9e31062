package expr

import "sort"

// slot is a one-shot forward cell: created empty, filled at most once, then
// promoted into the normal table on first read. Slots are shared by pointer
// across clones so a module pass resolves forwards observed by closures.
type slot struct {
	val    Expr
	filled bool
}

// Env is a first-class environment: a name table plus forward declarations.
// No name is ever present in both at once.
type Env struct {
	table    map[string]Expr
	forwards map[string]*slot
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{
		table:    make(map[string]Expr),
		forwards: make(map[string]*slot),
	}
}

// EnvFrom builds an environment over a copy of the given table.
func EnvFrom(table map[string]Expr) *Env {
	env := NewEnv()
	for name, val := range table {
		env.table[name] = val
	}
	return env
}

// Lookup resolves a name. A filled forward slot is promoted into the table
// and cleared on first read; an unfilled one stays pending and the lookup
// fails as Undefined.
func (e *Env) Lookup(name string) (Expr, error) {
	if val, ok := e.table[name]; ok {
		return val, nil
	}
	if s, ok := e.forwards[name]; ok && s.filled {
		e.table[name] = s.val
		delete(e.forwards, name)
		return s.val, nil
	}
	return nil, &UndefinedError{Name: name}
}

// Define binds a name, removing any shadowing forward slot.
func (e *Env) Define(name string, val Expr) {
	delete(e.forwards, name)
	e.table[name] = val
}

// SetForward fills the forward slot for name, failing as Undefined when no
// slot was declared.
func (e *Env) SetForward(name string, val Expr) error {
	s, ok := e.forwards[name]
	if !ok {
		return &UndefinedError{Name: name}
	}
	s.val = val
	s.filled = true
	return nil
}

// Clone copies both tables. Forward slots are shared, not copied.
func (e *Env) Clone() *Env {
	env := &Env{
		table:    make(map[string]Expr, len(e.table)),
		forwards: make(map[string]*slot, len(e.forwards)),
	}
	for name, val := range e.table {
		env.table[name] = val
	}
	for name, s := range e.forwards {
		env.forwards[name] = s
	}
	return env
}

// Merge returns a clone of e with every binding of other written in. Later
// bindings win on conflict.
func (e *Env) Merge(other *Env) *Env {
	env := e.Clone()
	env.MergeInPlace(other)
	return env
}

// MergeInPlace writes every table binding of other into e.
func (e *Env) MergeInPlace(other *Env) {
	for name, val := range other.table {
		e.Define(name, val)
	}
}

// WithForwards returns a clone with fresh empty slots for each name.
func (e *Env) WithForwards(names []string) *Env {
	env := e.Clone()
	for _, name := range names {
		env.forwards[name] = &slot{}
	}
	return env
}

// Names returns the bound names in sorted order. Pending forwards are not
// included.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.table))
	for name := range e.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound names.
func (e *Env) Len() int { return len(e.table) }

func (*Env) Order() Order { return OrderEnv }

func (*Env) String() string { return "(env ...)" }

// Equal on environments is identity: two envs are the same value only when
// they are the same cell.
func (e *Env) Equal(other Expr) bool {
	o, ok := other.(*Env)
	return ok && e == o
}

func (e *Env) Hash() uint64 { return hashString("(env ...)") + uint64(OrderEnv) }
