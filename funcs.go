package solve

import "math"

// Float is the set of numeric types in which expressions are compiled and
// evaluated.
type Float interface {
	~float32 | ~float64
}

// Func is a function from reals to reals as named in an expression, e.g. the
// sin in "sin(x)". The argument is the value of the parenthesized term that
// follows the name.
type Func[T Float] func(x T) T

// Monadic adapts a float64 function, such as those in package math, to a Func
// computing in T. For float32 the argument is widened and the result rounded.
func Monadic[T Float](f func(float64) float64) Func[T] {
	return func(x T) T {
		return T(f(float64(x)))
	}
}

// DefaultFuncs returns a new map containing the functions available in every
// new Context: sin, cos, tan, abs, exp, log, and sqrt. log is the natural
// logarithm.
func DefaultFuncs[T Float]() map[string]Func[T] {
	return map[string]Func[T]{
		"sin":  Monadic[T](math.Sin),
		"cos":  Monadic[T](math.Cos),
		"tan":  Monadic[T](math.Tan),
		"abs":  Monadic[T](math.Abs),
		"exp":  Monadic[T](math.Exp),
		"log":  Monadic[T](math.Log),
		"sqrt": Monadic[T](math.Sqrt),
	}
}

// pow raises x to y in T.
func pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}
