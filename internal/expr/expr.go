package expr

import (
	"hash/fnv"
	"io"
)

// Order ranks the expression variants. The ordering across variants is fixed
// and total: when two expressions of different variants are compared, the
// lower Order wins. Within a variant, atoms order naturally (see Less).
type Order int

const (
	OrderNil Order = iota
	OrderBlank
	OrderVar
	OrderInt
	OrderFloat
	OrderSymbol
	OrderString
	OrderQuote
	OrderRef
	OrderEnv
	OrderOperative
	OrderWrapped
	OrderPrim
	OrderCons
	OrderMap
	OrderNative
)

// Expr is the single value algebra of the language: every AST node, every
// runtime value and every data literal is an Expr. Evaluation, application
// and unification dispatch on the concrete variant in the evaluator package.
type Expr interface {
	Order() Order
	String() string
	Equal(other Expr) bool
	Hash() uint64
}

// Node is the host interpreter threaded through every primitive call.
// The concrete implementation lives in the evaluator package; primitives
// only see this surface.
type Node interface {
	Eval(e Expr, env *Env) (Expr, error)
	EvalList(e Expr, env *Env) (Expr, error)
	MakeRef() *Ref
	GetRef(id int64) (Expr, error)
	SetRef(id int64, val Expr) error
	Root() *Env
	Output() io.Writer
}

// PrimFunc is the signature of a host-implemented primitive. A nil result
// with a nil error becomes Nil at the apply boundary.
type PrimFunc func(node Node, env *Env, args Expr) (Expr, error)

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// mixHash folds one element hash into a running spine hash.
func mixHash(h uint64, e Expr) uint64 {
	return h*31 + e.Hash()
}

// Less reports whether a sorts before b in the canonical expression order
// used for Map keys. Different variants compare by Order; atoms of the same
// variant compare naturally; everything else is considered unordered and
// keeps insertion-independent canonical position only through Order.
func Less(a, b Expr) bool {
	if a.Order() != b.Order() {
		return a.Order() < b.Order()
	}

	switch x := a.(type) {
	case *Int:
		return x.Value.Cmp(b.(*Int).Value) < 0
	case *Float:
		return x.Value < b.(*Float).Value
	case *Symbol:
		return x.Name < b.(*Symbol).Name
	case *String:
		return x.Value < b.(*String).Value
	case *Var:
		return x.Name < b.(*Var).Name
	case *Ref:
		return x.ID < b.(*Ref).ID
	case *Quote:
		return Less(x.Expr, b.(*Quote).Expr)
	default:
		return false
	}
}
