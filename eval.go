package solve

import (
	"log"
	"math"
	"strings"
)

// Context is a context for evaluating expressions. It holds variable values,
// the function table, and the error from the most recent evaluation. The
// context only reads its tables during evaluation. It is not safe to use a
// Context concurrently; Clone it for each goroutine instead.
type Context[T Float] struct {
	vars   map[string]T
	funcs  map[string]Func[T]
	report func(error)
	err    error
}

type (
	// Context32 is a Context for binary32 expressions.
	Context32 = Context[float32]
	// Context64 is a Context for binary64 expressions.
	Context64 = Context[float64]
)

// ContextOption is an option used when creating a context.
type ContextOption[T Float] interface {
	ctxOption(*Context[T])
}

// NewContext creates a new evaluation context. Without options, the context
// has the variable pi and the functions from DefaultFuncs, and Solve reports
// errors to the standard logger.
func NewContext[T Float](opts ...ContextOption[T]) *Context[T] {
	ctx := Context[T]{
		vars:   map[string]T{"pi": T(math.Pi)},
		funcs:  DefaultFuncs[T](),
		report: logReport,
	}
	return ctx.Clone(opts...)
}

func logReport(err error) {
	log.Printf("solve: %v", err)
}

// Eval evaluates a compiled expression and returns the result. If an error
// occurs, e.g. a missing variable or an unmatched parenthesis, the result is 0
// and the error is returned. The error is also available from ctx.Err.
func (ctx *Context[T]) Eval(e *Expr[T]) (T, error) {
	r, err := e.eval(ctx.vars, ctx.funcs)
	ctx.err = err
	return r, err
}

// Solve evaluates a compiled expression. It never fails: if evaluation
// fails, the error is passed to the context's reporter, recorded for ctx.Err,
// and the result is 0. Callers which need to distinguish a genuine zero from
// a failure should use Eval or check Err.
func (ctx *Context[T]) Solve(e *Expr[T]) T {
	r, err := ctx.Eval(e)
	if err != nil {
		if ctx.report != nil {
			ctx.report(err)
		}
		return 0
	}
	return r
}

// Err returns the error from the most recent evaluation with ctx, if any.
func (ctx *Context[T]) Err() error {
	return ctx.err
}

// Set sets the value of a variable. The name is lowercased to match compiled
// identifiers. Returns ctx for chaining.
func (ctx *Context[T]) Set(name string, value T) *Context[T] {
	if ctx.vars == nil {
		ctx.vars = make(map[string]T)
	}
	ctx.vars[strings.ToLower(name)] = value
	return ctx
}

// Delete removes a variable. Deleting the last variable makes every variable
// reference fail with *NoVariablesProvidedError.
func (ctx *Context[T]) Delete(name string) *Context[T] {
	delete(ctx.vars, strings.ToLower(name))
	return ctx
}

// Lookup returns the value of a variable and whether it is set.
func (ctx *Context[T]) Lookup(name string) (T, bool) {
	v, ok := ctx.vars[strings.ToLower(name)]
	return v, ok
}

// Len returns the number of variables in the context.
func (ctx *Context[T]) Len() int {
	return len(ctx.vars)
}

// Func returns the function registered under name, or nil if there is none.
func (ctx *Context[T]) Func(name string) Func[T] {
	return ctx.funcs[strings.ToLower(name)]
}

// Clone creates a copy of a context and applies options to it. The clone has
// no error recorded. Changes to either context's tables do not affect the
// other.
func (ctx *Context[T]) Clone(opts ...ContextOption[T]) *Context[T] {
	n := Context[T]{
		vars:   make(map[string]T, len(ctx.vars)),
		funcs:  make(map[string]Func[T], len(ctx.funcs)),
		report: ctx.report,
	}
	for k, v := range ctx.vars {
		n.vars[k] = v
	}
	for k, v := range ctx.funcs {
		n.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.ctxOption(&n)
	}
	return &n
}

// Eval is a shortcut to compile an expression and evaluate it in a new
// context created with the given options.
func Eval[T Float](src string, opts ...ContextOption[T]) (T, error) {
	e, err := Compile[T](src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(e)
}

// SolveString is a shortcut to compile an expression and solve it in a new
// context created with the given options. Compile errors are reported the
// same way as evaluation errors, and the result is 0.
func SolveString[T Float](src string, opts ...ContextOption[T]) T {
	ctx := NewContext(opts...)
	e, err := Compile[T](src)
	if err != nil {
		ctx.err = err
		if ctx.report != nil {
			ctx.report(err)
		}
		return 0
	}
	return ctx.Solve(e)
}
