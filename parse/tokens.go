package parse

import (
	"fmt"
	"slices"
)

// Token matches one token equal to v.
func Token[E comparable](v E) Parser[E, []E, E] {
	return Value[[]E](v, fmt.Sprintf("Expected %v", v))
}

// TokenIn matches one token contained in set.
func TokenIn[E comparable](set ...E) Parser[E, []E, E] {
	return OneOf[[]E](set, fmt.Sprintf("Expected one of %v", set))
}

// Tokens matches target exactly.
func Tokens[E comparable](target []E) Parser[[]E, []E, E] {
	return Sequence[[]E, E](target, func(a, b []E) bool { return slices.Equal(a, b) },
		fmt.Sprintf("Expected %v", target))
}
