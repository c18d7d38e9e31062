package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/funvibe/poly/internal/config"
	"github.com/funvibe/poly/internal/evaluator"
	"github.com/funvibe/poly/internal/parser"
)

var (
	outStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Repl is the interactive read-eval-print loop. Lines starting with ":" are
// host commands; everything else is read and evaluated on the node, and the
// last result stays bound to $.
type Repl struct {
	node      *evaluator.Node
	inPrompt  string
	outPrompt string
	in        *bufio.Scanner
	out       io.Writer
}

func NewRepl(cfg *config.Config, in io.Reader, out io.Writer) *Repl {
	inPrompt := cfg.InPrompt
	if inPrompt == "" {
		inPrompt = ">> "
	}
	outPrompt := cfg.OutPrompt
	if outPrompt == "" {
		outPrompt = "\n" + strings.Repeat(" ", len(inPrompt))
	}

	node := evaluator.NewNode(cfg.Name)
	node.Out = out

	repl := &Repl{
		node:      node,
		inPrompt:  inPrompt,
		outPrompt: outPrompt,
		in:        bufio.NewScanner(in),
		out:       out,
	}
	loadPrelude(node, cfg, out)
	return repl
}

// Run loops until :quit or end of input.
func (r *Repl) Run() error {
	r.printBanner("Poly " + config.Version)

	for {
		line, ok := r.readLine()
		if !ok {
			return nil
		}

		if cmd, isCommand := strings.CutPrefix(line, ":"); isCommand {
			if r.handleCommand(cmd) {
				return nil
			}
			continue
		}

		r.evalAndPrint(line)
	}
}

// readLine prompts until it has a non-blank line. It reports false at end of
// input.
func (r *Repl) readLine() (string, bool) {
	for {
		fmt.Fprint(r.out, r.inPrompt)
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return "", false
		}
		line := strings.TrimSpace(r.in.Text())
		if line != "" {
			return line, true
		}
	}
}

// handleCommand runs one ":" command and reports whether the REPL should
// exit.
func (r *Repl) handleCommand(cmd string) bool {
	switch {
	case cmd == "q" || cmd == "quit":
		return true
	case strings.HasPrefix(cmd, " "):
		r.printWarning(cmd[1:])
	default:
		r.printError(fmt.Errorf("Undefined command '%s'", cmd))
	}
	return false
}

func (r *Repl) evalAndPrint(line string) {
	e, err := parser.ReadExpr(line)
	if err != nil {
		r.printError(err)
		return
	}
	val, err := r.node.EvalRoot(e)
	if err != nil {
		r.printError(err)
		return
	}

	fmt.Fprintln(r.out, outStyle.Render(r.outPrompt)+val.String()+"\n")
	r.node.Env.Define("$", val)
}

func (r *Repl) printBanner(s string) {
	line := strings.Repeat("-", 72)
	fmt.Fprintln(r.out, line)
	fmt.Fprintln(r.out, s)
	fmt.Fprintln(r.out, line+"\n")
}

func (r *Repl) printWarning(s string) {
	fmt.Fprintln(r.out, warningStyle.Render("Warning: ")+s+"\n")
}

func (r *Repl) printError(err error) {
	fmt.Fprintln(r.out, errorStyle.Render("Error: ")+err.Error()+"\n")
}
