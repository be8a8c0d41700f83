package algebra

import "fmt"

// DomainError reports an operand outside the algebraic domain of an operation:
// a value not in a field's carrier, a division by the additive zero, a
// polynomial that cannot be made monic, a p-th root of a non-perfect power, or
// a malformed textual expression.
type DomainError struct {
	msg string
}

// Errorf builds a DomainError with a formatted message.
func Errorf(format string, args ...any) *DomainError {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string { return e.msg }

// ExhaustionError reports a bounded probabilistic search that used its full
// retry budget without success. The randomized algorithms here are Las Vegas:
// exhaustion aborts the attempt, it never degrades into a partial result.
type ExhaustionError struct {
	msg string
}

// Exhaustedf builds an ExhaustionError with a formatted message.
func Exhaustedf(format string, args ...any) *ExhaustionError {
	return &ExhaustionError{msg: fmt.Sprintf(format, args...)}
}

func (e *ExhaustionError) Error() string { return e.msg }
