package evaluator

import (
	"github.com/funvibe/poly/internal/expr"
)

// Eval evaluates an expression under env. Atoms, environments, callables and
// native values self-evaluate; variables resolve through the environment;
// quotes strip one level; a cons evaluates its head and applies it to the
// unevaluated tail; a map evaluates every key and value.
func (n *Node) Eval(e expr.Expr, env *expr.Env) (expr.Expr, error) {
	switch t := e.(type) {
	case *expr.Blank:
		return nil, &expr.CantEvalError{Expr: e}
	case *expr.Var:
		val, err := env.Lookup(t.Name)
		if err != nil && env != n.Env {
			// Top-level definitions stay visible inside closures even
			// though operatives capture their environment by clone.
			if rootVal, rootErr := n.Env.Lookup(t.Name); rootErr == nil {
				return rootVal, nil
			}
		}
		return val, err
	case *expr.Quote:
		return t.Expr, nil
	case *expr.Cons:
		head, err := n.Eval(t.Head, env)
		if err != nil {
			return nil, err
		}
		return n.Apply(head, env, t.Tail)
	case *expr.Map:
		out := expr.NewMap()
		for _, entry := range t.Entries() {
			k, err := n.Eval(entry.Key, env)
			if err != nil {
				return nil, err
			}
			v, err := n.Eval(entry.Value, env)
			if err != nil {
				return nil, err
			}
			out.Set(k, v)
		}
		return out, nil
	default:
		return e, nil
	}
}

// EvalList walks a proper list and returns a new proper list of the
// evaluated elements. An improper tail fails before any element evaluates.
func (n *Node) EvalList(e expr.Expr, env *expr.Env) (expr.Expr, error) {
	elems, err := expr.ListElements(e)
	if err != nil {
		return nil, err
	}
	out := make([]expr.Expr, len(elems))
	for i, elem := range elems {
		val, err := n.Eval(elem, env)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return expr.MakeList(out, nil), nil
}
