// Package solve compiles and evaluates arithmetic expressions in float32 or
// float64.
//
// An expression is written in ordinary infix notation with + - * / and ^,
// parentheses, variables, and calls to named functions of one argument, e.g.
// "x^2/sin(2*pi/y)-x/2". Whitespace is ignored and names are
// case-insensitive. Multiplication must be explicit: "2x" is an error, but
// "2*x" is fine. Exponentiation is right-associative, so "2^2^3" is 256. A
// leading minus belongs to the operand it precedes, so "-2^2" is (-2)^2 = 4.
//
// Compile an expression once, then evaluate it as many times as needed with a
// Context holding the variables. Context.Eval returns errors to the caller.
// Context.Solve never fails; it reports the error and produces 0 instead.
//
package solve
