package timeexpr

import "math"

// Evaluate applies the arithmetic rule for the expression's shape.
//
//	duration ± duration = duration (sign kept)
//	instant  ± duration = instant
//	instant to instant  = duration, always measured forward
//
// For "to", a right-hand instant earlier than the left one is taken to be
// on the following day: 5:00pm to 4:30pm is 23hr30min, not -30min.
func Evaluate(e Expression) (Value, bool) {
	switch e.Shape {
	case DurationAndDuration:
		ms, ok := applySign(e.Left.Millis, e.Op, e.Right.Millis)
		return Value{Kind: Duration, Millis: ms}, ok
	case InstantAndDuration:
		ms, ok := applySign(e.Left.Millis, e.Op, e.Right.Millis)
		return Value{Kind: Instant, Millis: ms}, ok
	case InstantToInstant:
		if e.Op != To {
			return Value{}, false
		}
		if e.Right.Millis >= e.Left.Millis {
			return Value{Kind: Duration, Millis: e.Right.Millis - e.Left.Millis}, true
		}
		return Value{Kind: Duration, Millis: Day + e.Right.Millis - e.Left.Millis}, true
	}
	return Value{}, false
}

// applySign adds or subtracts right. It fails instead of wrapping when
// the result does not fit in int64.
func applySign(left int64, op Operator, right int64) (int64, bool) {
	switch op {
	case Plus:
		if (right > 0 && left > math.MaxInt64-right) || (right < 0 && left < math.MinInt64-right) {
			return 0, false
		}
		return left + right, true
	case Minus:
		if (right > 0 && left < math.MinInt64+right) || (right < 0 && left > math.MaxInt64+right) {
			return 0, false
		}
		return left - right, true
	}
	return 0, false
}
