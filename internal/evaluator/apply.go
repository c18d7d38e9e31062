package evaluator

import (
	"github.com/funvibe/poly/internal/expr"
)

// Apply invokes callee on the unevaluated argument expression args under the
// caller's dynamic environment. The three callable variants differ only in
// whether and when they evaluate args; symbols self-apply as tag
// constructors; everything else fails as CantApply.
func (n *Node) Apply(callee expr.Expr, env *expr.Env, args expr.Expr) (expr.Expr, error) {
	switch f := callee.(type) {
	case *expr.Operative:
		patEnv, err := expr.Unify(f.Pat, args)
		if err != nil {
			return nil, err
		}
		dyn := env.Clone()
		epatEnv, err := expr.Unify(f.EPat, dyn)
		if err != nil {
			return nil, err
		}
		funcEnv := f.Env.Merge(patEnv)
		funcEnv.MergeInPlace(epatEnv)
		return n.Eval(f.Body, funcEnv)

	case *expr.Wrapped:
		evaluated, err := n.EvalList(args, env)
		if err != nil {
			return nil, err
		}
		return n.Apply(f.Func, env, evaluated)

	case *expr.Prim:
		val, err := f.Fn(n, env, args)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return expr.TheNil, nil
		}
		return val, nil

	case *expr.Symbol:
		body, err := n.EvalList(args, env)
		if err != nil {
			return nil, err
		}
		return &expr.Cons{Head: f, Tail: body}, nil

	default:
		return nil, &expr.CantApplyError{Expr: callee}
	}
}
