package timeexpr

import (
	"strings"
	"unicode"
)

// Tokenize splits raw input into tokens.
//
// Digits, ':' and the operator symbols are emitted as soon as they are
// seen. Any other non-space character is appended to a keyword buffer
// which is emitted and reset once it spells a keyword exactly. Characters
// that never complete a keyword are dropped without error.
func Tokenize(raw string) []Token {
	var (
		tokens []Token
		buf    strings.Builder
	)

	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			tokens = append(tokens, Token{Type: TokenDigit, Value: string(r)})
			continue
		case r == ':':
			tokens = append(tokens, Token{Type: TokenColon, Value: ":"})
			continue
		case r == '+':
			tokens = append(tokens, Token{Type: TokenPlus, Value: "+"})
			continue
		case r == '-':
			tokens = append(tokens, Token{Type: TokenMinus, Value: "-"})
			continue
		}

		buf.WriteRune(r)
		if tt, ok := keywords[buf.String()]; ok {
			tokens = append(tokens, Token{Type: tt, Value: buf.String()})
			buf.Reset()
		}
	}

	return tokens
}

// TokenizeStrings tokenizes a pre-segmented token stream, one entry per
// key press ("5", ":", "0", "0", "pm", ...). Entries are joined before
// tokenizing so multi-character keywords may arrive whole or split.
func TokenizeStrings(parts []string) []Token {
	return Tokenize(strings.Join(parts, ""))
}

// joinTokens concatenates token values back into literal text.
func joinTokens(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value)
	}
	return b.String()
}
