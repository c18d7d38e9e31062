package expr

// Operative is an unevaluated-argument callable. It unifies its pattern
// against the raw argument expression and its environment pattern against a
// clone of the caller's dynamic environment, then evaluates the body under
// the captured environment extended with both binding sets.
type Operative struct {
	Pat  Expr
	EPat Expr
	Body Expr
	Env  *Env
}

// NewOperative captures env by clone so later mutation of the defining
// environment does not leak into the closure.
func NewOperative(pat, epat, body Expr, env *Env) *Operative {
	return &Operative{Pat: pat, EPat: epat, Body: body, Env: env.Clone()}
}

func (*Operative) Order() Order { return OrderOperative }

func (o *Operative) String() string {
	return "(op " + o.Pat.String() + " " + o.EPat.String() + " ...)"
}

func (o *Operative) Equal(other Expr) bool {
	p, ok := other.(*Operative)
	return ok && o == p
}

func (o *Operative) Hash() uint64 { return hashString(o.String()) + uint64(OrderOperative) }

// Wrapped evaluates its argument list as a proper list, then delegates to
// the inner callable.
type Wrapped struct {
	Func Expr
}

func (*Wrapped) Order() Order { return OrderWrapped }

func (w *Wrapped) String() string { return "(wrap " + w.Func.String() + ")" }

func (w *Wrapped) Equal(other Expr) bool {
	o, ok := other.(*Wrapped)
	return ok && w == o
}

func (w *Wrapped) Hash() uint64 { return hashString(w.String()) + uint64(OrderWrapped) }

// Prim is a primitive implemented by the host. Name is kept for the
// registry; the printed form stays opaque.
type Prim struct {
	Name string
	Fn   PrimFunc
}

func (*Prim) Order() Order { return OrderPrim }

func (*Prim) String() string { return "(prim ...)" }

func (p *Prim) Equal(other Expr) bool {
	o, ok := other.(*Prim)
	return ok && p == o
}

func (p *Prim) Hash() uint64 { return hashString(p.Name) + uint64(OrderPrim) }

// IsCallable reports whether applying e can succeed through the callable
// protocol. Symbols are excluded: they self-apply but are not functions.
func IsCallable(e Expr) bool {
	switch e.(type) {
	case *Operative, *Wrapped, *Prim:
		return true
	default:
		return false
	}
}
