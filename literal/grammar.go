package literal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Expr is a sum of terms.
//
//nolint:govet
type Expr struct {
	Left *Term     `@@`
	Rest []*OpTerm `@@*`
}

// OpTerm is a term with its leading additive operator.
//
//nolint:govet
type OpTerm struct {
	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

// Term is a product of unary expressions.
//
//nolint:govet
type Term struct {
	Left *Unary     `@@`
	Rest []*OpUnary `@@*`
}

// OpUnary is a unary expression with its leading multiplicative operator.
//
//nolint:govet
type OpUnary struct {
	Op    string `@("*" | "/")`
	Unary *Unary `@@`
}

// Unary is a possibly negated primary expression.
//
//nolint:govet
type Unary struct {
	Neg     *Unary   `  "-" @@`
	Primary *Primary `| @@`
}

// Primary is an interval literal, a number, a constant or function call,
// or a parenthesized expression.
//
//nolint:govet
type Primary struct {
	Literal *Literal `  @@`
	Number  *float64 `| @Float`
	Call    *Call    `| @@`
	Sub     *Expr    `| "(" @@ ")"`
}

// Call is a named constant, or a function applied to its arguments if
// Args is non-nil.
//
//nolint:govet
type Call struct {
	Name string  `@Ident`
	Args []*Expr `( "(" @@ ( "," @@ )* ")" )?`
}

// Literal is an interval literal: [empty], [entire], [a] or [a, b].
//
//nolint:govet
type Literal struct {
	Empty  bool   `"[" ( @"empty"`
	Entire bool   `    | @"entire"`
	Lo     *Bound `    | @@`
	Hi     *Bound `      ( "," @@ )? ) "]"`
}

// Bound is a signed number or infinity.
//
//nolint:govet
type Bound struct {
	Sign  string   `@("-" | "+")?`
	Value *float64 `( @Float`
	Inf   bool     `| @"inf" )`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Float", Pattern: `(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[-+*/(),\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	exprParser = participle.MustBuild[Expr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)
	literalParser = participle.MustBuild[Literal](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)
)

// Parse parses an interval expression.
func Parse(src string) (*Expr, error) {
	expr, err := exprParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression %q: %w", src, err)
	}
	return expr, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (e *Expr) String() string {
	var sb strings.Builder
	sb.WriteString(e.Left.String())
	for _, r := range e.Rest {
		sb.WriteString(" " + r.Op + " " + r.Term.String())
	}
	return sb.String()
}

func (t *Term) String() string {
	var sb strings.Builder
	sb.WriteString(t.Left.String())
	for _, r := range t.Rest {
		sb.WriteString(" " + r.Op + " " + r.Unary.String())
	}
	return sb.String()
}

func (u *Unary) String() string {
	if u.Neg != nil {
		return "-" + u.Neg.String()
	}
	return u.Primary.String()
}

func (p *Primary) String() string {
	switch {
	case p.Literal != nil:
		return p.Literal.String()
	case p.Number != nil:
		return formatFloat(*p.Number)
	case p.Call != nil:
		return p.Call.String()
	}
	return "(" + p.Sub.String() + ")"
}

func (c *Call) String() string {
	if c.Args == nil {
		return c.Name
	}
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

func (l *Literal) String() string {
	switch {
	case l.Empty:
		return "[empty]"
	case l.Entire:
		return "[entire]"
	case l.Hi == nil:
		return "[" + l.Lo.String() + "]"
	}
	return "[" + l.Lo.String() + ", " + l.Hi.String() + "]"
}

func (b *Bound) String() string {
	sign := ""
	if b.Sign == "-" {
		sign = "-"
	}
	if b.Inf {
		return sign + "inf"
	}
	return sign + formatFloat(*b.Value)
}
