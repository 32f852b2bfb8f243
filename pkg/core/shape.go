package core

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// Shape
// =============================================================================

// Shape is the coarse structure of a value, used to check that examples
// are plausible instances of a representation.
type Shape int

// Shapes.
const (
	ShapeAny Shape = iota + 1
	ShapeNull
	ShapeBoolean
	ShapeInteger
	ShapeFloat
	ShapeDecimal
	ShapeText
	ShapeBytes
	ShapeSequence
	ShapeMapping
	ShapeTemporal
	ShapeOpaque
	ShapeNever
)

var shapeNames = map[Shape]string{
	ShapeAny:      "any",
	ShapeNull:     "null",
	ShapeBoolean:  "boolean",
	ShapeInteger:  "integer",
	ShapeFloat:    "float",
	ShapeDecimal:  "decimal",
	ShapeText:     "text",
	ShapeBytes:    "bytes",
	ShapeSequence: "sequence",
	ShapeMapping:  "mapping",
	ShapeTemporal: "temporal",
	ShapeOpaque:   "opaque",
	ShapeNever:    "never",
}

// String returns the string representation of the shape.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Shape) numeric() bool {
	return s == ShapeBoolean || s == ShapeInteger || s == ShapeFloat || s == ShapeDecimal
}

// Accepts reports whether a value of shape v can be an instance of a
// representation of shape s. Booleans count as numbers, matching the
// documented validator where bool is an integer subtype.
func (s Shape) Accepts(v Shape) bool {
	switch {
	case s == ShapeAny || s == ShapeOpaque:
		return true
	case s == ShapeNever:
		return false
	case s.numeric():
		return v.numeric()
	default:
		return s == v
	}
}

// =============================================================================
// Example values
// =============================================================================

// DecimalValue is an arbitrary-precision decimal example, kept in its literal form.
type DecimalValue string

// Dec returns a decimal example value.
func Dec(literal string) DecimalValue { return DecimalValue(literal) }

// TupleValue is a fixed-length heterogeneous sequence example.
type TupleValue []any

// CalendarDate is a date without time of day.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Day returns a calendar date example.
func Day(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// BigInt parses a base-10 integer literal. It panics on malformed input and
// is meant for literal catalog data only.
func BigInt(literal string) *big.Int {
	n, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		panic(fmt.Sprintf("core: invalid integer literal %q", literal))
	}
	return n
}

// ShapeOf classifies an example value.
func ShapeOf(v any) Shape {
	switch v.(type) {
	case nil:
		return ShapeNull
	case bool:
		return ShapeBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return ShapeInteger
	case float32, float64:
		return ShapeFloat
	case DecimalValue:
		return ShapeDecimal
	case string:
		return ShapeText
	case []byte:
		return ShapeBytes
	case TupleValue:
		return ShapeSequence
	case time.Time, time.Duration, CalendarDate:
		return ShapeTemporal
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return ShapeSequence
	case reflect.Map:
		return ShapeMapping
	default:
		return ShapeOpaque
	}
}

// FormatExample renders an example value deterministically.
func FormatExample(v any) string {
	var sb strings.Builder
	formatValue(&sb, v)
	return sb.String()
}

func formatValue(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		sb.WriteString(strconv.FormatBool(x))
	case string:
		sb.WriteString(strconv.Quote(x))
	case []byte:
		sb.WriteString("b")
		sb.WriteString(quoteBytes(x))
	case float32:
		sb.WriteString(formatFloat(float64(x)))
	case float64:
		sb.WriteString(formatFloat(x))
	case *big.Int:
		sb.WriteString(x.String())
	case DecimalValue:
		sb.WriteString("decimal(")
		sb.WriteString(string(x))
		sb.WriteString(")")
	case CalendarDate:
		sb.WriteString(x.String())
	case time.Time:
		sb.WriteString(x.Format("2006-01-02T15:04:05.999999999Z07:00"))
	case time.Duration:
		sb.WriteString(x.String())
	case TupleValue:
		sb.WriteString("(")
		for i, item := range x {
			if i > 0 {
				sb.WriteString(", ")
			}
			formatValue(sb, item)
		}
		sb.WriteString(")")
	default:
		formatReflect(sb, reflect.ValueOf(v))
	}
}

func formatReflect(sb *strings.Builder, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sb.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Slice, reflect.Array:
		sb.WriteString("[")
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			formatValue(sb, rv.Index(i).Interface())
		}
		sb.WriteString("]")
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		vals := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			ks := FormatExample(k.Interface())
			keys = append(keys, ks)
			vals[ks] = rv.MapIndex(k)
		}
		sort.Strings(keys)
		sb.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			formatValue(sb, vals[k].Interface())
		}
		sb.WriteString("}")
	default:
		fmt.Fprintf(sb, "%v", rv.Interface())
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e21) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func quoteBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		switch {
		case c == '"' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
