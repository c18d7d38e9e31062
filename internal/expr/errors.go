package expr

import (
	"fmt"
	"strconv"
)

// MatchError reports a unification failure. The match primitive catches it
// between clauses; everywhere else it propagates.
type MatchError struct {
	Pattern Expr
	Value   Expr
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("Can't match %s with %s", e.Pattern, e.Value)
}

// UndefinedError reports a variable lookup that missed every reachable
// layer.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return "Undefined var " + (&Var{Name: e.Name}).String()
}

// UndefinedRefError reports a ref id that is not in the node's ref table or
// whose cell is still null.
type UndefinedRefError struct {
	ID int64
}

func (e *UndefinedRefError) Error() string {
	return "Undefined ref " + strconv.FormatInt(e.ID, 10)
}

// CantEvalError reports a non-evaluable expression in evaluation position.
type CantEvalError struct {
	Expr Expr
}

func (e *CantEvalError) Error() string {
	return fmt.Sprintf("Can't evaluate %s", e.Expr)
}

// CantApplyError reports an application whose head is not callable.
type CantApplyError struct {
	Expr Expr
}

func (e *CantApplyError) Error() string {
	return fmt.Sprintf("Can't apply %s", e.Expr)
}

// DuplicateKeyError reports two equal keys in a map literal.
type DuplicateKeyError struct {
	Key Expr
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate key %s", e.Key)
}

// ImproperListError reports a spine walk that hit a non-Cons non-Nil tail.
type ImproperListError struct {
	Expr Expr
}

func (e *ImproperListError) Error() string {
	return fmt.Sprintf("Improper list %s", e.Expr)
}

// InvalidTypeError reports a primitive argument of the wrong variant. Want
// names the expected variant.
type InvalidTypeError struct {
	Expr Expr
	Want string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("%s must be of type %s", e.Expr, e.Want)
}
