package literal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cs-au-dk/ivl/interval"

	"github.com/benbjohnson/immutable"
)

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrUnknownConstant = errors.New("unknown constant")
	ErrArity           = errors.New("wrong number of arguments")
	ErrExponent        = errors.New("exponent is not a singleton integer")
)

var unaryFuncs = map[string]func(interval.Interval) interval.Interval{
	"abs":             interval.Interval.Abs,
	"acos":            interval.Interval.Acos,
	"acosh":           interval.Interval.Acosh,
	"asin":            interval.Interval.Asin,
	"asinh":           interval.Interval.Asinh,
	"atan":            interval.Interval.Atan,
	"atanh":           interval.Interval.Atanh,
	"ceil":            interval.Interval.Ceil,
	"cos":             interval.Interval.Cos,
	"cosh":            interval.Interval.Cosh,
	"exp":             interval.Interval.Exp,
	"exp10":           interval.Interval.Exp10,
	"exp2":            interval.Interval.Exp2,
	"floor":           interval.Interval.Floor,
	"ln":              interval.Interval.Ln,
	"log10":           interval.Interval.Log10,
	"log2":            interval.Interval.Log2,
	"recip":           interval.Interval.Recip,
	"round":           interval.Interval.Round,
	"roundTiesToEven": interval.Interval.RoundTiesToEven,
	"sign":            interval.Interval.Sign,
	"sin":             interval.Interval.Sin,
	"sinh":            interval.Interval.Sinh,
	"sqr":             interval.Interval.Sqr,
	"sqrt":            interval.Interval.Sqrt,
	"tan":             interval.Interval.Tan,
	"tanh":            interval.Interval.Tanh,
	"trunc":           interval.Interval.Trunc,
}

var binaryFuncs = map[string]func(interval.Interval, interval.Interval) interval.Interval{
	"atan2":     interval.Interval.Atan2,
	"hull":      interval.Interval.ConvexHull,
	"intersect": interval.Interval.Intersection,
	"max":       interval.Interval.Max,
	"min":       interval.Interval.Min,
	"pow":       interval.Interval.Pow,
}

var constants = map[string]func() interval.Interval{
	"pi":  interval.Consts().Pi,
	"e":   interval.Consts().E,
	"tau": interval.Consts().Tau,
}

// Evaluator evaluates expressions, memoizing the value of every
// subexpression by its canonical text.
type Evaluator struct {
	memo *immutable.Map[string, interval.Interval]
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		memo: immutable.NewMap[string, interval.Interval](immutable.NewHasher("")),
	}
}

// Memoized returns the number of distinct subexpressions evaluated so far.
func (ev *Evaluator) Memoized() int {
	return ev.memo.Len()
}

// Eval evaluates expr with a fresh evaluator.
func Eval(expr *Expr) (interval.Interval, error) {
	return NewEvaluator().Eval(expr)
}

// EvalString parses and evaluates src.
func EvalString(src string) (interval.Interval, error) {
	expr, err := Parse(src)
	if err != nil {
		return interval.Empty(), err
	}
	return Eval(expr)
}

func (ev *Evaluator) Eval(expr *Expr) (interval.Interval, error) {
	key := expr.String()
	if v, ok := ev.memo.Get(key); ok {
		return v, nil
	}

	acc, err := ev.term(expr.Left)
	if err != nil {
		return acc, err
	}
	for _, r := range expr.Rest {
		v, err := ev.term(r.Term)
		if err != nil {
			return v, err
		}
		switch r.Op {
		case "+":
			acc = acc.Add(v)
		case "-":
			acc = acc.Sub(v)
		}
	}

	ev.memo = ev.memo.Set(key, acc)
	return acc, nil
}

func (ev *Evaluator) term(t *Term) (interval.Interval, error) {
	acc, err := ev.unary(t.Left)
	if err != nil {
		return acc, err
	}
	for _, r := range t.Rest {
		v, err := ev.unary(r.Unary)
		if err != nil {
			return v, err
		}
		switch r.Op {
		case "*":
			acc = acc.Mul(v)
		case "/":
			acc = acc.Div(v)
		}
	}
	return acc, nil
}

func (ev *Evaluator) unary(u *Unary) (interval.Interval, error) {
	if u.Neg != nil {
		v, err := ev.unary(u.Neg)
		return v.Neg(), err
	}

	p := u.Primary
	switch {
	case p.Literal != nil:
		return p.Literal.Interval()
	case p.Number != nil:
		return interval.Point(*p.Number)
	case p.Call != nil:
		return ev.call(p.Call)
	}
	return ev.Eval(p.Sub)
}

func (ev *Evaluator) call(c *Call) (interval.Interval, error) {
	if c.Args == nil {
		if k, ok := constants[c.Name]; ok {
			return k(), nil
		}
		return interval.Empty(), fmt.Errorf("%w: %s", ErrUnknownConstant, c.Name)
	}

	args := make([]interval.Interval, len(c.Args))
	for i, arg := range c.Args {
		v, err := ev.Eval(arg)
		if err != nil {
			return v, err
		}
		args[i] = v
	}

	arity := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, c.Name, n, len(args))
		}
		return nil
	}

	if f, ok := unaryFuncs[c.Name]; ok {
		if err := arity(1); err != nil {
			return interval.Empty(), err
		}
		return f(args[0]), nil
	}
	if f, ok := binaryFuncs[c.Name]; ok {
		if err := arity(2); err != nil {
			return interval.Empty(), err
		}
		return f(args[0], args[1]), nil
	}
	if c.Name == "powi" {
		if err := arity(2); err != nil {
			return interval.Empty(), err
		}
		n := args[1]
		if !n.IsSingleton() || n.Inf() != math.Trunc(n.Inf()) || math.Abs(n.Inf()) > math.MaxInt32 {
			return interval.Empty(), fmt.Errorf("%w: %s", ErrExponent, n)
		}
		return args[0].Powi(int(n.Inf())), nil
	}
	return interval.Empty(), fmt.Errorf("%w: %s", ErrUnknownFunction, c.Name)
}

func (b *Bound) float() float64 {
	v := math.Inf(1)
	if !b.Inf {
		v = *b.Value
	}
	if b.Sign == "-" {
		v = -v
	}
	return v
}

// Interval validates the literal and returns the interval it denotes.
func (l *Literal) Interval() (interval.Interval, error) {
	switch {
	case l.Empty:
		return interval.Empty(), nil
	case l.Entire:
		return interval.Entire(), nil
	}

	lo := l.Lo.float()
	hi := lo
	if l.Hi != nil {
		hi = l.Hi.float()
	}

	x, err := interval.New(lo, hi)
	if err != nil {
		return x, fmt.Errorf("%s: %w", l, err)
	}
	return x, nil
}

// ParseInterval parses a bare interval literal.
func ParseInterval(src string) (interval.Interval, error) {
	l, err := literalParser.ParseString("", src)
	if err != nil {
		return interval.Empty(), fmt.Errorf("failed to parse interval %q: %w", src, err)
	}
	return l.Interval()
}
