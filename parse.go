package solve

import (
	"sort"
	"strconv"
)

// Expression = Term { ('+' | '-') Term }
// Term       = Factor { ('*' | '/') Factor }
// Factor     = Power { '^' Power }
// Power      = [ '-' ] ( ident Value | ident | Value )
// Value      = num | '(' Expression ')'

// Expr is a compiled expression that can be evaluated with a context. An Expr
// is immutable and may be evaluated concurrently with different contexts.
type Expr[T Float] struct {
	// src is the normalized source text.
	src string
	// toks is the token sequence. Evaluation walks it once per call.
	toks []token[T]
	// names is the sorted list of variable names used in the expression.
	names []string
}

type (
	// Expr32 is an expression compiled and evaluated in binary32.
	Expr32 = Expr[float32]
	// Expr64 is an expression compiled and evaluated in binary64.
	Expr64 = Expr[float64]
)

// Compile normalizes and tokenizes an expression so it can be evaluated
// repeatedly. Whitespace is removed and letters are lowercased, so names are
// case-insensitive. The only errors Compile reports are *LexError; all other
// problems surface when the expression is evaluated.
func Compile[T Float](src string) (*Expr[T], error) {
	s := normalize(src)
	toks, err := lex[T](s)
	if err != nil {
		return nil, err
	}
	e := Expr[T]{src: s, toks: toks}
	seen := make(map[string]bool)
	for i, t := range toks {
		if t.kind != tokenIdent || seen[t.name] {
			continue
		}
		if i+1 < len(toks) && toks[i+1].kind == tokenOpen {
			// Function call.
			continue
		}
		seen[t.name] = true
		e.names = append(e.names, t.name)
	}
	sort.Strings(e.names)
	return &e, nil
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled.
func MustCompile[T Float](src string) *Expr[T] {
	e, err := Compile[T](src)
	if err != nil {
		panic("solve: Compile(" + strconv.Quote(src) + "): " + err.Error())
	}
	return e
}

// String returns the normalized source text of the expression.
func (e *Expr[T]) String() string {
	return e.src
}

// Vars returns the variable names used when evaluating the expression, in
// sorted order. Names followed by an open parenthesis are function calls and
// are not included.
func (e *Expr[T]) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Literals returns the values of the numeric literals in the expression, in
// source order.
func (e *Expr[T]) Literals() []T {
	var r []T
	for _, t := range e.toks {
		if t.kind == tokenNum {
			r = append(r, t.num)
		}
	}
	return r
}

// Idents returns every identifier in the expression, variable or function,
// in source order and including repeats.
func (e *Expr[T]) Idents() []string {
	var r []string
	for _, t := range e.toks {
		if t.kind == tokenIdent {
			r = append(r, t.name)
		}
	}
	return r
}

// eval parses and evaluates the expression in one pass. Any error aborts the
// whole evaluation.
func (e *Expr[T]) eval(vars map[string]T, funcs map[string]Func[T]) (T, error) {
	p := parser[T]{
		toks:  e.toks,
		end:   len(e.src) + 1,
		vars:  vars,
		funcs: funcs,
	}
	x, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.k < len(p.toks) {
		return 0, &SyntaxError{Col: p.col(), Msg: msgUnexpected, Near: p.near()}
	}
	return x, nil
}

// parser holds the cursor for a single evaluation.
type parser[T Float] struct {
	toks []token[T]
	// k is the index of the next token.
	k int
	// end is the column just past the end of the source.
	end   int
	vars  map[string]T
	funcs map[string]Func[T]
}

// peek returns the kind of the next token, or tokenNone at the end.
func (p *parser[T]) peek() tokenKind {
	if p.k < len(p.toks) {
		return p.toks[p.k].kind
	}
	return tokenNone
}

// col returns the position of the next token.
func (p *parser[T]) col() int {
	if p.k < len(p.toks) {
		return p.toks[p.k].pos
	}
	return p.end
}

// near returns the text of the next token for error messages.
func (p *parser[T]) near() string {
	if p.k >= len(p.toks) {
		return ""
	}
	t := p.toks[p.k]
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(float64(t.num), 'g', -1, 64)
	case tokenIdent:
		return t.name
	default:
		return t.kind.text()
	}
}

func (p *parser[T]) expression() (T, error) {
	x, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case tokenPlus:
			p.k++
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x += y
		case tokenMinus:
			p.k++
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

func (p *parser[T]) term() (T, error) {
	x, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case tokenMul:
			p.k++
			y, err := p.factor()
			if err != nil {
				return 0, err
			}
			x *= y
		case tokenDiv:
			p.k++
			y, err := p.factor()
			if err != nil {
				return 0, err
			}
			x /= y
		default:
			return x, nil
		}
	}
}

// factor parses a chain of exponentiations. Exponentiation is
// right-associative, so the operands are collected first and folded from the
// right: a^b^c^d = a^(b^(c^d)).
func (p *parser[T]) factor() (T, error) {
	x, err := p.power()
	if err != nil {
		return 0, err
	}
	if p.peek() != tokenPow {
		return x, nil
	}
	stk := []T{x}
	for p.peek() == tokenPow {
		p.k++
		y, err := p.power()
		if err != nil {
			return 0, err
		}
		stk = append(stk, y)
	}
	r := stk[len(stk)-1]
	for i := len(stk) - 2; i >= 0; i-- {
		r = pow(stk[i], r)
	}
	return r, nil
}

// power parses an optionally negated function call, variable, or value. The
// sign applies to the operand itself, so -2^2 is (-2)^2.
func (p *parser[T]) power() (T, error) {
	neg := false
	if p.peek() == tokenMinus {
		p.k++
		neg = true
	}
	var x T
	var err error
	if p.peek() == tokenIdent {
		t := p.toks[p.k]
		p.k++
		if p.peek() == tokenOpen {
			x, err = p.call(t)
		} else {
			x, err = p.lookup(t)
		}
	} else {
		x, err = p.value()
	}
	if err != nil {
		return 0, err
	}
	if neg {
		x = -x
	}
	return x, nil
}

// call applies the function named by t to the parenthesized value that
// follows it.
func (p *parser[T]) call(t token[T]) (T, error) {
	f := p.funcs[t.name]
	if f == nil {
		return 0, &UnknownFunctionError{Col: t.pos, Name: t.name}
	}
	x, err := p.value()
	if err != nil {
		return 0, err
	}
	return f(x), nil
}

// lookup gets the value of the variable named by t.
func (p *parser[T]) lookup(t token[T]) (T, error) {
	if len(p.vars) == 0 {
		return 0, &NoVariablesProvidedError{Col: t.pos, Name: t.name}
	}
	x, ok := p.vars[t.name]
	if !ok {
		return 0, &UninitializedVariableError{Col: t.pos, Name: t.name}
	}
	return x, nil
}

func (p *parser[T]) value() (T, error) {
	switch p.peek() {
	case tokenNum:
		x := p.toks[p.k].num
		p.k++
		return x, nil
	case tokenOpen:
		open := p.toks[p.k]
		p.k++
		x, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.peek() != tokenClose {
			return 0, &SyntaxError{Col: open.pos, Msg: msgUnmatched, Near: p.near()}
		}
		p.k++
		return x, nil
	default:
		return 0, &SyntaxError{Col: p.col(), Msg: msgOperand, Near: p.near()}
	}
}
