package solve

import "strconv"

// SyntaxError is an error indicating a malformed token sequence, such as an
// open parenthesis with no close parenthesis. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token at which the problem was detected, or
	// one past the end of the source if the expression ended early.
	Col int
	// Msg describes the problem.
	Msg string
	// Near is the text of the offending token, if any.
	Near string
}

func (err *SyntaxError) Error() string {
	if err.Near == "" {
		return errpos(err.Col, err.Msg)
	}
	return errpos(err.Col, err.Msg+" near "+strconv.Quote(err.Near))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// Messages used in SyntaxError.
const (
	msgUnmatched  = "unmatched open parenthesis"
	msgOperand    = "missing operand"
	msgUnexpected = "unexpected token"
)

// UnknownFunctionError is an error indicating a call to a name that is not in
// the function table. It implements InputError.
type UnknownFunctionError struct {
	// Col is the position of the function name.
	Col int
	// Name is the function name that was called.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *UnknownFunctionError) Pos() int {
	return err.Col
}

// UninitializedVariableError is an error from a lookup for a variable that is
// missing from a non-empty variable table. It implements InputError.
type UninitializedVariableError struct {
	// Col is the position of the variable reference.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *UninitializedVariableError) Error() string {
	return errpos(err.Col, "uninitialized variable "+strconv.Quote(err.Name))
}

func (err *UninitializedVariableError) Pos() int {
	return err.Col
}

// NoVariablesProvidedError is an error from a variable lookup when the
// variable table is empty. Often the name was meant as a function but is
// missing its parenthesized argument. It implements InputError.
type NoVariablesProvidedError struct {
	// Col is the position of the variable reference.
	Col int
	// Name is the name that was looked up.
	Name string
}

func (err *NoVariablesProvidedError) Error() string {
	return errpos(err.Col, "no variables provided for "+strconv.Quote(err.Name)+" (or function is missing parentheses)")
}

func (err *NoVariablesProvidedError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position in the normalized source text of
	// the token that caused the error. Normalized text has no whitespace, so
	// positions may differ from those in the original input.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*UnknownFunctionError)(nil)
	_ InputError = (*UninitializedVariableError)(nil)
	_ InputError = (*NoVariablesProvidedError)(nil)
)
