package solve

import "strings"

type (
	varopt[T Float] struct {
		name string
		val  T
	}
	varsopt[T Float]   map[string]T
	novarsopt[T Float] struct{}
	funcopt[T Float]   struct {
		name string
		fn   Func[T]
	}
	funcsopt[T Float]  map[string]Func[T]
	reportopt[T Float] func(error)
)

// SetVar sets the value of a variable in the context.
func SetVar[T Float](name string, val T) ContextOption[T] {
	return varopt[T]{name, val}
}

func (o varopt[T]) ctxOption(ctx *Context[T]) {
	ctx.Set(o.name, o.val)
}

// SetVars sets the values of any number of variables in the context.
func SetVars[T Float](vars map[string]T) ContextOption[T] {
	return varsopt[T](vars)
}

func (o varsopt[T]) ctxOption(ctx *Context[T]) {
	for k, v := range o {
		ctx.Set(k, v)
	}
}

// NoVars removes every variable from the context, including pi. Options
// after NoVars may add variables again. With an empty variable table, any
// variable reference fails with *NoVariablesProvidedError.
func NoVars[T Float]() ContextOption[T] {
	return novarsopt[T]{}
}

func (novarsopt[T]) ctxOption(ctx *Context[T]) {
	ctx.vars = make(map[string]T)
}

// SetFunc sets a function in the context. To remove a function, pass nil for
// fn; calls to it then fail with *UnknownFunctionError.
func SetFunc[T Float](name string, fn Func[T]) ContextOption[T] {
	return funcopt[T]{name, fn}
}

func (o funcopt[T]) ctxOption(ctx *Context[T]) {
	setfunc(ctx, o.name, o.fn)
}

// SetFuncs sets a group of functions in the context. Nil entries remove the
// function with that name.
func SetFuncs[T Float](fns map[string]Func[T]) ContextOption[T] {
	return funcsopt[T](fns)
}

func (o funcsopt[T]) ctxOption(ctx *Context[T]) {
	for k, v := range o {
		setfunc(ctx, k, v)
	}
}

// DisableDefaultFuncs removes all default functions from the context. Their
// names will be evaluated as variables when not followed by a parenthesis and
// as unknown functions otherwise.
func DisableDefaultFuncs[T Float]() ContextOption[T] {
	m := make(funcsopt[T], 7)
	for k := range DefaultFuncs[T]() {
		m[k] = nil
	}
	return m
}

func setfunc[T Float](ctx *Context[T], name string, fn Func[T]) {
	name = strings.ToLower(name)
	if fn == nil {
		delete(ctx.funcs, name)
		return
	}
	if ctx.funcs == nil {
		ctx.funcs = make(map[string]Func[T])
	}
	ctx.funcs[name] = fn
}

// Report sets the function that Solve uses to report evaluation errors. A
// nil function discards them; they remain available from Err.
func Report[T Float](f func(error)) ContextOption[T] {
	return reportopt[T](f)
}

func (o reportopt[T]) ctxOption(ctx *Context[T]) {
	ctx.report = o
}
