package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/poly/internal/expr"
)

// primTable is the process-wide primitive table. It is populated by the
// register functions at init time, is immutable afterwards, and is copied
// into every new node's root environment.
var primTable = map[string]expr.Expr{}

// prim registers an operative primitive: its PrimFunc receives the argument
// expression raw.
func prim(name string, fn expr.PrimFunc) {
	primTable[name] = &expr.Prim{Name: name, Fn: fn}
}

// wprim registers an applicative primitive: the argument list is evaluated
// before the PrimFunc runs.
func wprim(name string, fn expr.PrimFunc) {
	primTable[name] = &expr.Wrapped{Func: &expr.Prim{Name: name, Fn: fn}}
}

func init() {
	registerCore()
	registerMath()
	registerRefs()
	registerYaml()
	registerUuid()
	registerSql()
}

// args unpacks a proper argument list, checking the argument count. want < 0
// means any count.
func args(e expr.Expr, want int) ([]expr.Expr, error) {
	elems, err := expr.ListElements(e)
	if err != nil {
		return nil, err
	}
	if want >= 0 && len(elems) != want {
		return nil, &expr.InvalidTypeError{Expr: e, Want: fmt.Sprintf("list of %d arguments", want)}
	}
	return elems, nil
}

func wantVar(e expr.Expr) (*expr.Var, error) {
	v, ok := e.(*expr.Var)
	if !ok {
		return nil, &expr.InvalidTypeError{Expr: e, Want: "Var"}
	}
	return v, nil
}

func wantString(e expr.Expr) (*expr.String, error) {
	s, ok := e.(*expr.String)
	if !ok {
		return nil, &expr.InvalidTypeError{Expr: e, Want: "String"}
	}
	return s, nil
}

func wantEnv(e expr.Expr) (*expr.Env, error) {
	env, ok := e.(*expr.Env)
	if !ok {
		return nil, &expr.InvalidTypeError{Expr: e, Want: "Env"}
	}
	return env, nil
}

func wantCallable(e expr.Expr) (expr.Expr, error) {
	if !expr.IsCallable(e) {
		return nil, &expr.InvalidTypeError{Expr: e, Want: "Func"}
	}
	return e, nil
}

// pairs splits a proper list of two-element lists into (first, second)
// tuples; let bindings and match clauses share this shape.
func pairs(e expr.Expr) ([][2]expr.Expr, error) {
	elems, err := expr.ListElements(e)
	if err != nil {
		return nil, err
	}
	out := make([][2]expr.Expr, 0, len(elems))
	for _, elem := range elems {
		pair, err := expr.ListElements(elem)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, &expr.InvalidTypeError{Expr: elem, Want: "pair"}
		}
		out = append(out, [2]expr.Expr{pair[0], pair[1]})
	}
	return out, nil
}

func registerCore() {
	prim("module", primModule)
	prim("op", primOp)
	prim("let", primLet)
	prim("match", primMatch)
	prim("set*", primSetStar)
	wprim("op*", primOpStar)
	wprim("wrap", primWrap)
	wprim("eval", primEval)
	wprim("hash", primHash)
	wprim("show", primShow)
	wprim("fmt", primFmt)
	wprim("print-string", primPrintString)
	wprim("cons", primCons)
	wprim("join", primJoin)
}

// primOp constructs an operative capturing the defining environment.
func primOp(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 3)
	if err != nil {
		return nil, err
	}
	return expr.NewOperative(elems[0], elems[1], elems[2], env), nil
}

// primOpStar is op with an explicit environment argument.
func primOpStar(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 4)
	if err != nil {
		return nil, err
	}
	opEnv, err := wantEnv(elems[3])
	if err != nil {
		return nil, err
	}
	return expr.NewOperative(elems[0], elems[1], elems[2], opEnv), nil
}

// primWrap promotes a callable to an applicative.
func primWrap(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	fn, err := wantCallable(elems[0])
	if err != nil {
		return nil, err
	}
	return &expr.Wrapped{Func: fn}, nil
}

// primLet evaluates bindings sequentially in a single growing environment,
// then the body forms in order, returning the last. Each right-hand side
// sees the bindings produced so far and nothing later.
func primLet(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, -1)
	if err != nil {
		return nil, err
	}
	if len(elems) < 2 {
		return nil, &expr.InvalidTypeError{Expr: argExpr, Want: "bindings and body"}
	}
	bindings, err := pairs(elems[0])
	if err != nil {
		return nil, err
	}

	scope := env.Clone()
	for _, binding := range bindings {
		val, err := node.Eval(binding[1], scope)
		if err != nil {
			return nil, err
		}
		bound, err := expr.Unify(binding[0], val)
		if err != nil {
			return nil, err
		}
		scope.MergeInPlace(bound)
	}

	var out expr.Expr = expr.TheNil
	for _, body := range elems[1:] {
		out, err = node.Eval(body, scope)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// primMatch evaluates the scrutinee and tries each clause in order. Only a
// clause's own match failure is caught; anything else propagates. With no
// matching clause the result is Nil.
func primMatch(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 2)
	if err != nil {
		return nil, err
	}
	clauses, err := pairs(elems[1])
	if err != nil {
		return nil, err
	}
	val, err := node.Eval(elems[0], env)
	if err != nil {
		return nil, err
	}

	for _, clause := range clauses {
		bound, err := expr.Unify(clause[0], val)
		if err != nil {
			continue
		}
		return node.Eval(clause[1], env.Merge(bound))
	}
	return expr.TheNil, nil
}

// primModule evaluates a named group of definitions whose right-hand sides
// may forward-reference each other. Every name gets a forward slot up front;
// definitions then resolve in source order, filling their slot so later
// definitions and captured closures observe the completed binding.
func primModule(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	cons, ok := argExpr.(*expr.Cons)
	if !ok {
		return nil, &expr.InvalidTypeError{Expr: argExpr, Want: "Cons"}
	}
	nameVar, err := wantVar(cons.Head)
	if err != nil {
		return nil, err
	}
	defExprs, err := expr.ListElements(cons.Tail)
	if err != nil {
		return nil, err
	}
	if len(defExprs)%2 != 0 {
		return nil, &expr.InvalidTypeError{Expr: cons.Tail, Want: "name/value pairs"}
	}

	def := &ModuleDef{
		Name: nameVar.Name,
		Defs: make(map[string]expr.Expr, len(defExprs)/2),
	}
	exprs := make(map[string]expr.Expr, len(defExprs)/2)
	for i := 0; i+1 < len(defExprs); i += 2 {
		v, err := wantVar(defExprs[i])
		if err != nil {
			return nil, err
		}
		def.Names = append(def.Names, v.Name)
		exprs[v.Name] = defExprs[i+1]
	}

	menv := env.WithForwards(def.Names)
	for _, name := range def.Names {
		val, err := node.Eval(exprs[name], menv)
		if err != nil {
			return nil, err
		}
		def.Defs[name] = val
		if err := menv.SetForward(name, val); err != nil {
			return nil, err
		}
	}
	return expr.NewNative(def), nil
}

// primSetStar binds a name at the node's root environment. The name is taken
// raw; only the value expression is evaluated.
func primSetStar(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 2)
	if err != nil {
		return nil, err
	}
	v, err := wantVar(elems[0])
	if err != nil {
		return nil, err
	}
	val, err := node.Eval(elems[1], env)
	if err != nil {
		return nil, err
	}
	node.Root().Define(v.Name, val)
	return nil, nil
}

// primEval evaluates an expression under a first-class environment.
func primEval(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 2)
	if err != nil {
		return nil, err
	}
	evalEnv, err := wantEnv(elems[1])
	if err != nil {
		return nil, err
	}
	return node.Eval(elems[0], evalEnv)
}

func primHash(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	h := elems[0].Hash()
	out := expr.NewInt(0)
	out.Value.SetUint64(h)
	return out, nil
}

func primShow(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	return &expr.String{Value: elems[0].String()}, nil
}

// primFmt interpolates positional arguments into a format string, replacing
// each {} in order with the argument's printed form. Placeholders beyond the
// argument list are left untouched.
func primFmt(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	cons, ok := argExpr.(*expr.Cons)
	if !ok {
		return nil, &expr.InvalidTypeError{Expr: argExpr, Want: "Cons"}
	}
	format, err := wantString(cons.Head)
	if err != nil {
		return nil, err
	}
	rest, err := expr.ListElements(cons.Tail)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	s := format.Value
	for _, arg := range rest {
		at := strings.Index(s, "{}")
		if at < 0 {
			break
		}
		b.WriteString(s[:at])
		b.WriteString(arg.String())
		s = s[at+2:]
	}
	b.WriteString(s)
	return &expr.String{Value: b.String()}, nil
}

func primPrintString(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	s, err := wantString(elems[0])
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(node.Output(), s.Value)
	return nil, nil
}

func primCons(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 2)
	if err != nil {
		return nil, err
	}
	return &expr.Cons{Head: elems[0], Tail: elems[1]}, nil
}

// primJoin concatenates two proper lists. The empty list is a proper list.
func primJoin(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 2)
	if err != nil {
		return nil, err
	}
	left, err := expr.ListElements(elems[0])
	if err != nil {
		return nil, err
	}
	right, err := expr.ListElements(elems[1])
	if err != nil {
		return nil, err
	}
	return expr.MakeList(append(left, right...), nil), nil
}
