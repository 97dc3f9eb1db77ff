package basiclog

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Unit-granularity duration counts. Each renders as its stored count
// followed by its unit word, with no conversion between units.
type (
	// Seconds renders as "<n>seconds".
	Seconds int64
	// Milliseconds renders as "<n>milliseconds".
	Milliseconds int64
	// Microseconds renders as "<n>microseconds".
	Microseconds int64
	// Nanoseconds renders as "<n>nanoseconds".
	Nanoseconds int64
	// Minutes renders as "<n>minutes".
	Minutes int64
	// Hours renders as "<n>hours".
	Hours int64
)

// appendable is implemented by the container and wrapper types, keeping the
// rendering dispatch closed over a fixed set.
type appendable interface {
	render(sb *strings.Builder)
}

// writeValue renders one value. Container elements go through the same
// rules recursively.
func writeValue(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		if x {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case string:
		sb.WriteString(x)
	case int:
		sb.WriteString(strconv.Itoa(x))
	case int8:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		sb.WriteString(strconv.FormatInt(x, 10))
	case uint:
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		sb.WriteString(strconv.FormatUint(x, 10))
	case uintptr:
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	case float32:
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	case Seconds:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
		sb.WriteString("seconds")
	case Milliseconds:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
		sb.WriteString("milliseconds")
	case Microseconds:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
		sb.WriteString("microseconds")
	case Nanoseconds:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
		sb.WriteString("nanoseconds")
	case Minutes:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
		sb.WriteString("minutes")
	case Hours:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
		sb.WriteString("hours")
	case time.Duration:
		// A Go duration's stored count is nanoseconds.
		sb.WriteString(strconv.FormatInt(x.Nanoseconds(), 10))
		sb.WriteString("nanoseconds")
	case time.Time:
		sb.WriteString(x.Local().Format("2006-01-02 15:04:05"))
	case appendable:
		x.render(sb)
	default:
		fmt.Fprintf(sb, "%v", x)
	}
}

// Pair is a 2-tuple. It renders as Pair{first,second}.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its two halves.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (p Pair[A, B]) render(sb *strings.Builder) {
	sb.WriteString("Pair{")
	writeValue(sb, p.First)
	sb.WriteByte(',')
	writeValue(sb, p.Second)
	sb.WriteByte('}')
}

// Optional holds either one value or nothing. It renders as
// Optional{<value>} or Optional{ nullopt }.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) render(sb *strings.Builder) {
	if o.ok {
		sb.WriteString("Optional{")
		writeValue(sb, o.value)
		sb.WriteByte('}')
		return
	}
	// The asymmetric spacing is kept for output compatibility.
	sb.WriteString("Optional{ nullopt }")
}

// Seq is an ordered sequence. It renders as Seq{e1,e2,...} in slice order.
type Seq[T any] []T

func (s Seq[T]) render(sb *strings.Builder) {
	sb.WriteString("Seq{")
	for i, e := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeValue(sb, e)
	}
	sb.WriteByte('}')
}

// Set holds unique elements and renders them in ascending order as
// Set{e1,e2,...}.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet builds a Set from elems, dropping duplicates.
func NewSet[T cmp.Ordered](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

func (s Set[T]) render(sb *strings.Builder) {
	keys := make([]T, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	sb.WriteString("Set{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeValue(sb, k)
	}
	sb.WriteByte('}')
}

// Map is a key-unique mapping that keeps insertion order. It renders as
// Map{k1:v1,k2:v2,...} in that order.
type Map[K comparable, V any] []Pair[K, V]

// NewMap builds a Map from entries, keeping the first occurrence of a
// duplicate key.
func NewMap[K comparable, V any](entries ...Pair[K, V]) Map[K, V] {
	seen := make(map[K]struct{}, len(entries))
	m := make(Map[K, V], 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.First]; dup {
			continue
		}
		seen[e.First] = struct{}{}
		m = append(m, e)
	}
	return m
}

func (m Map[K, V]) render(sb *strings.Builder) {
	sb.WriteString("Map{")
	for i, e := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeValue(sb, e.First)
		sb.WriteByte(':')
		writeValue(sb, e.Second)
	}
	sb.WriteByte('}')
}
