package evaluator

import (
	"io"
	"os"

	"github.com/funvibe/poly/internal/expr"
)

// Node is one interpreter instance: the root environment with the primitive
// table installed, the reference table, and the writer primitives print to.
// A node is single-threaded; embedders that want parallelism run one node
// per thread.
type Node struct {
	Name string
	Env  *expr.Env

	// Out receives print-string output. Defaults to stdout; tests and
	// embedders swap it.
	Out io.Writer

	refs      map[int64]expr.Expr
	nextRefID int64
}

// NewNode creates a node with the primitive table bound in its root
// environment.
func NewNode(name string) *Node {
	return &Node{
		Name: name,
		Env:  expr.EnvFrom(primTable),
		Out:  os.Stdout,
		refs: make(map[int64]expr.Expr),
	}
}

// EvalRoot evaluates an expression under the node's root environment.
func (n *Node) EvalRoot(e expr.Expr) (expr.Expr, error) {
	return n.Eval(e, n.Env)
}

// Root returns the node's root environment.
func (n *Node) Root() *expr.Env { return n.Env }

// Output returns the writer primitives print to.
func (n *Node) Output() io.Writer { return n.Out }

// Names returns every name bound in the root environment, sorted.
func (n *Node) Names() []string { return n.Env.Names() }

// MakeRef allocates a fresh null reference cell.
func (n *Node) MakeRef() *expr.Ref {
	id := n.nextRefID
	n.nextRefID++
	n.refs[id] = nil
	return &expr.Ref{ID: id}
}

// GetRef reads a reference cell, failing when the id is unknown or the cell
// was never written.
func (n *Node) GetRef(id int64) (expr.Expr, error) {
	val, ok := n.refs[id]
	if !ok || val == nil {
		return nil, &expr.UndefinedRefError{ID: id}
	}
	return val, nil
}

// SetRef overwrites a reference cell.
func (n *Node) SetRef(id int64, val expr.Expr) error {
	if _, ok := n.refs[id]; !ok {
		return &expr.UndefinedRefError{ID: id}
	}
	n.refs[id] = val
	return nil
}
