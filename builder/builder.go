// Package builder provides accumulators that fold repeated parse results into
// a single output container.
package builder

import "strings"

// Builder absorbs parts one at a time and produces an output. Append may
// mutate the receiver or return a new Builder; callers must always continue
// with the returned value.
type Builder[Out, Part any] interface {
	Append(part Part) Builder[Out, Part]
	Output() Out
}

// Factory creates an empty Builder. Repetition combinators call it once per
// invocation.
type Factory[Out, Part any] func() Builder[Out, Part]

type stringBuilder struct {
	sb strings.Builder
}

// Strings concatenates string parts. Its empty output is "".
func Strings() Builder[string, string] {
	return &stringBuilder{}
}

func (b *stringBuilder) Append(part string) Builder[string, string] {
	b.sb.WriteString(part)
	return b
}

func (b *stringBuilder) Output() string {
	return b.sb.String()
}

type runeBuilder struct {
	sb strings.Builder
}

// Runes concatenates rune parts into a string. Its empty output is "".
func Runes() Builder[string, rune] {
	return &runeBuilder{}
}

func (b *runeBuilder) Append(part rune) Builder[string, rune] {
	b.sb.WriteRune(part)
	return b
}

func (b *runeBuilder) Output() string {
	return b.sb.String()
}

type listBuilder[T any] struct {
	items []T
}

// List collects parts in order. Its empty output is an empty, non-nil slice.
func List[T any]() Builder[[]T, T] {
	return &listBuilder[T]{items: []T{}}
}

func (b *listBuilder[T]) Append(part T) Builder[[]T, T] {
	b.items = append(b.items, part)
	return b
}

func (b *listBuilder[T]) Output() []T {
	return b.items
}

// Entry is a key/value part for Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type mapBuilder[K comparable, V any] struct {
	m map[K]V
}

// Map collects entries into a map. A later entry replaces an earlier one with
// the same key. Its empty output is an empty, non-nil map.
func Map[K comparable, V any]() Builder[map[K]V, Entry[K, V]] {
	return &mapBuilder[K, V]{m: make(map[K]V)}
}

func (b *mapBuilder[K, V]) Append(part Entry[K, V]) Builder[map[K]V, Entry[K, V]] {
	b.m[part.Key] = part.Value
	return b
}

func (b *mapBuilder[K, V]) Output() map[K]V {
	return b.m
}
