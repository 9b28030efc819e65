package solve

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

type token[T Float] struct {
	kind tokenKind
	// num is the value of a tokenNum.
	num T
	// name is the text of a tokenIdent.
	name string
	// pos is the 1-based column of the token in the normalized source.
	pos int
}

func (t token[T]) String() string {
	s := t.kind.String()
	switch t.kind {
	case tokenNum:
		s += ":" + strconv.FormatFloat(float64(t.num), 'g', -1, 64)
	case tokenIdent:
		s += ":" + t.name
	}
	return s + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	tokenPlus
	tokenMinus
	tokenMul
	tokenDiv
	tokenPow
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenIdent is a variable or function name.
	tokenIdent
	// tokenNum is a numeric literal.
	tokenNum
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenPlus:
		return "Plus"
	case tokenMinus:
		return "Minus"
	case tokenMul:
		return "Mul"
	case tokenDiv:
		return "Div"
	case tokenPow:
		return "Pow"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenIdent:
		return "Ident"
	case tokenNum:
		return "Num"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// text returns the source text a punctuation token was scanned from.
func (k tokenKind) text() string {
	switch k {
	case tokenPlus:
		return "+"
	case tokenMinus:
		return "-"
	case tokenMul:
		return "*"
	case tokenDiv:
		return "/"
	case tokenPow:
		return "^"
	case tokenOpen:
		return "("
	case tokenClose:
		return ")"
	default:
		return ""
	}
}

// Operators contains the characters which are scanned as operators, in the
// order of their token kinds.
const Operators = "+-*/^"

// maxFracDigits is the number of significant fraction digits that contribute
// to a literal's value. Later digits cannot change a binary64 result.
const maxFracDigits = 19

// normalize removes all whitespace from src and lowercases the remainder.
func normalize(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, r := range src {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func isletter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// lex scans normalized source into tokens. Characters that begin no token
// are skipped.
func lex[T Float](src string) ([]token[T], error) {
	var toks []token[T]
	for i := 0; i < len(src); i++ {
		c := src[i]
		var k tokenKind
		switch c {
		case '(':
			k = tokenOpen
		case ')':
			k = tokenClose
		default:
			if j := strings.IndexByte(Operators, c); j >= 0 {
				k = tokenPlus + tokenKind(j)
			}
		}
		if k != tokenNone {
			toks = append(toks, token[T]{kind: k, pos: i + 1})
			continue
		}
		switch {
		case isletter(c):
			j := i + 1
			for j < len(src) && isletter(src[j]) {
				j++
			}
			toks = append(toks, token[T]{kind: tokenIdent, name: src[i:j], pos: i + 1})
			i = j - 1
		case isdigit(c):
			v, j, err := scanNum[T](src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token[T]{kind: tokenNum, num: v, pos: i + 1})
			i = j - 1
		}
	}
	return toks, nil
}

// scanNum scans a literal starting at src[i], which must be a digit. The
// result is the literal's value and the index of the first byte after it.
func scanNum[T Float](src string, i int) (T, int, error) {
	start := i
	var v T
	for i < len(src) && isdigit(src[i]) {
		v = v*10 + T(src[i]-'0')
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		if i >= len(src) || !isdigit(src[i]) {
			return 0, i, &LexError{Col: i, Text: src[start:i], Msg: "decimal point not followed by digit"}
		}
		var frac T
		n, sig := 0, 0
		for i < len(src) && isdigit(src[i]) {
			if sig < maxFracDigits {
				frac = frac*10 + T(src[i]-'0')
				n++
				if frac > 0 {
					sig++
				}
			}
			i++
		}
		if frac > 0 {
			// Only the scale can overflow, which makes the quotient 0.
			v += T(float64(frac) / math.Pow(10, float64(n)))
		}
	}
	if i < len(src) && isletter(src[i]) {
		return 0, i, &LexError{Col: i + 1, Text: src[start : i+1], Msg: "implicit multiplication not allowed"}
	}
	return v, i, nil
}

// LexError indicates malformed source text. It implements InputError.
type LexError struct {
	// Col is the column in the normalized source at which the error was
	// detected.
	Col int
	// Text is the text of the literal being scanned, up to and including the
	// offending character.
	Text string
	// Msg describes the problem.
	Msg string
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Msg+" in "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
