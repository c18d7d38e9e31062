package modules

import (
	"os"

	"github.com/funvibe/poly/internal/evaluator"
	"github.com/funvibe/poly/internal/expr"
	"github.com/funvibe/poly/internal/parser"
)

// ModuleError wraps whatever went wrong while loading a module file. The
// cause stays reachable through Unwrap.
type ModuleError struct {
	Err error
}

func (e *ModuleError) Error() string {
	return "Module couldn't be loaded: " + e.Err.Error()
}

func (e *ModuleError) Unwrap() error { return e.Err }

// Load reads, parses and evaluates a module file, then imports every
// definition into the node's root environment under the module's own name
// plus "/".
func Load(node *evaluator.Node, path string) error {
	def, err := load(node, path)
	if err != nil {
		return err
	}
	bind(node, def, def.Name+"/")
	return nil
}

// LoadPrefixed is Load with an explicit prefix. The empty prefix imports
// definitions under their bare names; the REPL prelude loads that way.
func LoadPrefixed(node *evaluator.Node, path, prefix string) error {
	def, err := load(node, path)
	if err != nil {
		return err
	}
	bind(node, def, prefix)
	return nil
}

func load(node *evaluator.Node, path string) (*evaluator.ModuleDef, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModuleError{Err: err}
	}

	e, err := parser.ReadExpr(string(src))
	if err != nil {
		return nil, &ModuleError{Err: err}
	}
	val, err := node.EvalRoot(e)
	if err != nil {
		return nil, &ModuleError{Err: err}
	}

	def, ok := evaluator.AsModule(val)
	if !ok {
		return nil, &ModuleError{Err: &expr.InvalidTypeError{Expr: val, Want: "module"}}
	}
	return def, nil
}

func bind(node *evaluator.Node, def *evaluator.ModuleDef, prefix string) {
	for _, name := range def.Names {
		node.Env.Define(prefix+name, def.Defs[name])
	}
}
