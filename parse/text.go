package parse

import (
	"fmt"
	"strings"
	"unicode"
)

// Rune matches r.
func Rune(r rune) Parser[rune, string, rune] {
	return Value[string](r, fmt.Sprintf("Expected %q", r))
}

// AnyRune matches any single rune.
func AnyRune() Parser[rune, string, rune] {
	return Item[string](func(rune) bool { return true }, "Expected any character")
}

// RuneIn matches one rune contained in set.
func RuneIn(set string) Parser[rune, string, rune] {
	return Item[string](func(r rune) bool { return strings.ContainsRune(set, r) },
		fmt.Sprintf("Expected one of %q", set))
}

// RuneRange matches one rune in [lo, hi].
func RuneRange(lo, hi rune) Parser[rune, string, rune] {
	return Item[string](func(r rune) bool { return lo <= r && r <= hi },
		fmt.Sprintf("Expected %q…%q", lo, hi))
}

// Letter matches one Unicode letter.
func Letter() Parser[rune, string, rune] {
	return Item[string](unicode.IsLetter, "Expected letter")
}

// Digit matches one Unicode decimal digit.
func Digit() Parser[rune, string, rune] {
	return Item[string](unicode.IsDigit, "Expected digit")
}

// Space matches one white space rune, newlines included.
func Space() Parser[rune, string, rune] {
	return Item[string](unicode.IsSpace, "Expected white space")
}

// Literal matches target exactly.
func Literal(target string) Parser[string, string, rune] {
	return Sequence[string, rune](target, func(a, b string) bool { return a == b },
		fmt.Sprintf("Expected '%s'", target))
}

// Spaces consumes any amount of white space, including none.
func Spaces() Parser[string, string, rune] {
	return OptionalRun[string](unicode.IsSpace)
}

// Digits consumes one or more digits.
func Digits() Parser[string, string, rune] {
	return Run[string](unicode.IsDigit, "Expected digit")
}

// Word consumes one or more letters.
func Word() Parser[string, string, rune] {
	return Run[string](unicode.IsLetter, "Expected letter")
}
