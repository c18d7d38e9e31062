package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/funvibe/poly/internal/expr"
	"github.com/funvibe/poly/internal/lexer"
	"github.com/funvibe/poly/internal/token"
)

// ReaderError reports input the reader could not turn into an expression.
type ReaderError struct {
	Input string
}

func (e *ReaderError) Error() string {
	return "Can't read '" + e.Input + "'"
}

// Parser turns a token stream into expression trees. The reader has no
// separate AST: it constructs the value algebra directly.
type Parser struct {
	input string
	lex   *lexer.Lexer
	cur   token.Token
	peek  token.Token
}

func New(input string) *Parser {
	p := &Parser{input: input, lex: lexer.New(input)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) fail() (expr.Expr, error) {
	return nil, &ReaderError{Input: p.input}
}

// ReadExpr reads exactly one expression from input. Trailing content other
// than separators and comments is an error.
func ReadExpr(input string) (expr.Expr, error) {
	p := New(input)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return p.fail()
	}
	return e, nil
}

func (p *Parser) parseExpr() (expr.Expr, error) {
	switch p.cur.Type {
	case token.UNDER:
		p.next()
		return expr.TheBlank, nil

	case token.IDENT:
		name := p.cur.Literal
		p.next()
		return &expr.Var{Name: name}, nil

	case token.RAWIDENT:
		name := p.cur.Literal
		p.next()
		return &expr.Var{Name: name}, nil

	case token.SYMBOL, token.RAWSYMBOL:
		name := p.cur.Literal
		p.next()
		return &expr.Symbol{Name: name}, nil

	case token.STRING:
		val := p.cur.Literal
		p.next()
		return &expr.String{Value: val}, nil

	case token.NUMBER:
		return p.parseNumber()

	case token.SQUOTE:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &expr.Quote{Expr: inner}, nil

	case token.LPAREN, token.LSQUARE:
		p.next()
		return p.parseList()

	case token.LBRACE:
		p.next()
		return p.parseMap()

	default:
		return p.fail()
	}
}

func (p *Parser) parseNumber() (expr.Expr, error) {
	s := p.cur.Literal
	p.next()

	digits, negative := strings.CutPrefix(s, "-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		n, ok := new(big.Int).SetString(digits[2:], 16)
		if !ok {
			return p.fail()
		}
		if negative {
			n.Neg(n)
		}
		return &expr.Int{Value: n}, nil
	}
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p.fail()
		}
		return &expr.Float{Value: f}, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return p.fail()
	}
	return &expr.Int{Value: n}, nil
}

func closesList(t token.Type) bool {
	return t == token.RPAREN || t == token.RSQUARE
}

// parseList reads list elements up to a closing bracket, with an optional
// dotted tail. Round and square brackets are interchangeable, as are their
// closers.
func (p *Parser) parseList() (expr.Expr, error) {
	var elems []expr.Expr

	for {
		if closesList(p.cur.Type) {
			p.next()
			return expr.MakeList(elems, nil), nil
		}
		if p.cur.Type == token.DOT && len(elems) > 0 {
			p.next()
			tail, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if !closesList(p.cur.Type) {
				return p.fail()
			}
			p.next()
			return expr.MakeList(elems, tail), nil
		}
		if p.cur.Type == token.EOF {
			return p.fail()
		}
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

// parseMap reads flat key/value pairs up to the closing brace. Duplicate
// keys fail at read time.
func (p *Parser) parseMap() (expr.Expr, error) {
	var elems []expr.Expr

	for p.cur.Type != token.RBRACE {
		if p.cur.Type == token.EOF {
			return p.fail()
		}
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	p.next()

	if len(elems)%2 != 0 {
		return p.fail()
	}
	return expr.MapFromPairs(elems)
}
