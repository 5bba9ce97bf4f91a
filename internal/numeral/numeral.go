package numeral

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Numeral is the scalar numeric type underlying an entity.
type Numeral interface {
	constraints.Integer | constraints.Float
}

// Shape is the numeral view over an entity of type E. It pairs E with its
// underlying numeral type N and lets policies read and write components without
// knowing whether E is a single value or a fixed-length sequence.
type Shape[E any, N Numeral] interface {
	Name() string
	Arity() int
	New() E
	At(entity E, i int) N
	Set(entity *E, i int, value N)
	Validate(entity E) error
}

// Scalar is the shape of an entity that is its own numeral.
type Scalar[N Numeral] struct{}

func (Scalar[N]) Name() string { return "scalar" }

func (Scalar[N]) Arity() int { return 1 }

func (Scalar[N]) New() N {
	var zero N
	return zero
}

func (Scalar[N]) At(entity N, _ int) N { return entity }

func (Scalar[N]) Set(entity *N, _ int, value N) { *entity = value }

func (Scalar[N]) Validate(N) error { return nil }

// Vector is the shape of a fixed-length numeral sequence. Every entity of a run
// carries exactly Size components.
type Vector[N Numeral] struct {
	Size int
}

// NewVector returns a vector shape with the given size.
func NewVector[N Numeral](size int) (Vector[N], error) {
	if size <= 0 {
		return Vector[N]{}, fmt.Errorf("vector size must be > 0, got %d", size)
	}
	return Vector[N]{Size: size}, nil
}

func (v Vector[N]) Name() string { return "vector[" + strconv.Itoa(v.Size) + "]" }

func (v Vector[N]) Arity() int { return v.Size }

func (v Vector[N]) New() []N { return make([]N, v.Size) }

func (Vector[N]) At(entity []N, i int) N { return entity[i] }

func (Vector[N]) Set(entity *[]N, i int, value N) { (*entity)[i] = value }

func (v Vector[N]) Validate(entity []N) error {
	if len(entity) != v.Size {
		return fmt.Errorf("entity has %d components, shape requires %d", len(entity), v.Size)
	}
	return nil
}

// Components copies the entity's components into a new slice.
func Components[E any, N Numeral](shape Shape[E, N], entity E) []N {
	out := make([]N, shape.Arity())
	for i := range out {
		out[i] = shape.At(entity, i)
	}
	return out
}

// Sum adds every component of the entity in float64.
func Sum[E any, N Numeral](shape Shape[E, N], entity E) float64 {
	total := 0.0
	for i := 0; i < shape.Arity(); i++ {
		total += float64(shape.At(entity, i))
	}
	return total
}

// Fill assigns value to every component of the entity.
func Fill[E any, N Numeral](shape Shape[E, N], entity *E, value N) {
	for i := 0; i < shape.Arity(); i++ {
		shape.Set(entity, i, value)
	}
}

// Clone returns a copy of the entity that shares no storage with the original.
func Clone[E any, N Numeral](shape Shape[E, N], entity E) E {
	out := shape.New()
	for i := 0; i < shape.Arity(); i++ {
		shape.Set(&out, i, shape.At(entity, i))
	}
	return out
}

// IsFloat reports whether N is a floating point type.
func IsFloat[N Numeral]() bool {
	var zero N
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// Convert casts v to N. Integer numerals truncate toward zero; values outside
// the integer range saturate instead of wrapping.
func Convert[N Numeral](v float64) N {
	if IsFloat[N]() {
		return N(v)
	}
	if math.IsNaN(v) {
		return 0
	}
	lo, hi := integerBounds[N]()
	if v <= lo {
		return N(lo)
	}
	if v >= hi {
		return N(hi)
	}
	return N(v)
}

// integerBounds returns float64 bounds that are safely representable in N.
func integerBounds[N Numeral]() (float64, float64) {
	var zero N
	switch any(zero).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	case uint, uint64, uintptr:
		return 0, math.Nextafter(math.MaxUint64, 0)
	default:
		return math.Nextafter(math.MinInt64, 0), math.Nextafter(math.MaxInt64, 0)
	}
}

// Format renders an entity as its components separated by single spaces.
func Format[E any, N Numeral](shape Shape[E, N], entity E) string {
	parts := make([]string, shape.Arity())
	for i := range parts {
		parts[i] = formatNumeral(shape.At(entity, i))
	}
	return strings.Join(parts, " ")
}

func formatNumeral[N Numeral](v N) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
