// Package timeexpr evaluates single-operator time expressions such as
// "5:00pm + 5hr30min", "45min - 10min" or "9:00am to 5:00pm".
//
// An expression is tokenized, split into (literal, operator, literal),
// each literal is classified as a duration or an instant, the pair is
// evaluated according to its operation shape, and the result is formatted
// back into text for the current 12/24-hour mode.
package timeexpr

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenDigit TokenType = iota // 0-9
	TokenColon                  // :

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenTo    // to

	// Keywords
	TokenNow // now
	TokenAM  // am
	TokenPM  // pm
	TokenHr  // hr
	TokenMin // min
)

// Token represents a single lexical token.
type Token struct {
	Type  TokenType
	Value string // raw text
}

// IsOperator reports whether the token is one of +, - or to.
func (t Token) IsOperator() bool {
	switch t.Type {
	case TokenPlus, TokenMinus, TokenTo:
		return true
	}
	return false
}

// String returns a debug-friendly representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenDigit:
		return "DIGIT"
	case TokenColon:
		return "COLON"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenTo:
		return "TO"
	case TokenNow:
		return "NOW"
	case TokenAM:
		return "AM"
	case TokenPM:
		return "PM"
	case TokenHr:
		return "HR"
	case TokenMin:
		return "MIN"
	default:
		return "UNKNOWN"
	}
}

var keywords = map[string]TokenType{
	"to":  TokenTo,
	"now": TokenNow,
	"am":  TokenAM,
	"pm":  TokenPM,
	"hr":  TokenHr,
	"min": TokenMin,
}
