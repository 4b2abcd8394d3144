package timeexpr

import "strings"

// Terms is an expression split on its single operator.
type Terms struct {
	Left  string // joined literal text
	Op    Token
	Right string
}

// SplitTerms splits tokens into (literal, operator, literal). Every
// operator token closes the current term and forms a term of its own, so
// anything other than exactly one operator between two non-empty
// literals is rejected.
func SplitTerms(tokens []Token) (Terms, bool) {
	var (
		terms   [][]Token
		current []Token
	)
	for _, tok := range tokens {
		if tok.IsOperator() {
			terms = append(terms, current, []Token{tok})
			current = nil
			continue
		}
		current = append(current, tok)
	}
	terms = append(terms, current)

	if len(terms) != 3 || len(terms[1]) != 1 || !terms[1][0].IsOperator() {
		return Terms{}, false
	}
	if len(terms[0]) == 0 || len(terms[2]) == 0 {
		return Terms{}, false
	}
	return Terms{
		Left:  joinTokens(terms[0]),
		Op:    terms[1][0],
		Right: joinTokens(terms[2]),
	}, true
}

// LiteralKind classifies a literal as an instant or a duration. Instants
// must contain ':' or be "now"; durations must mention hr or min. Both
// must also pass full validation.
func (p Parser) LiteralKind(lit string) (Kind, bool) {
	if strings.Contains(lit, ":") || lit == "now" {
		if p.IsValidInstantLiteral(lit) {
			return Instant, true
		}
		return 0, false
	}
	if strings.Contains(lit, "hr") || strings.Contains(lit, "min") {
		if IsValidDurationLiteral(lit) {
			return Duration, true
		}
	}
	return 0, false
}

// ParseLiteral classifies lit and computes its value.
func (p Parser) ParseLiteral(lit string) (Value, bool) {
	kind, ok := p.LiteralKind(lit)
	if !ok {
		return Value{}, false
	}
	if kind == Duration {
		return Value{Kind: Duration, Millis: ParseDurationLiteral(lit)}, true
	}
	ms, ok := p.ParseInstantLiteral(lit)
	if !ok {
		return Value{}, false
	}
	return Value{Kind: Instant, Millis: ms}, true
}

// ParseExpression parses a token stream into a classified expression.
func (p Parser) ParseExpression(tokens []Token) (Expression, bool) {
	terms, ok := SplitTerms(tokens)
	if !ok {
		return Expression{}, false
	}
	return p.ParseTerms(terms)
}

// ParseTerms classifies already split terms.
func (p Parser) ParseTerms(terms Terms) (Expression, bool) {
	op, ok := operatorFor(terms.Op)
	if !ok {
		return Expression{}, false
	}
	left, ok := p.ParseLiteral(terms.Left)
	if !ok {
		return Expression{}, false
	}
	right, ok := p.ParseLiteral(terms.Right)
	if !ok {
		return Expression{}, false
	}
	shape, ok := classify(left.Kind, op, right.Kind)
	if !ok {
		return Expression{}, false
	}
	return Expression{Left: left, Op: op, Right: right, Shape: shape}, true
}
