// Package builtin contains the authored coercion rules of the validation engine.
package builtin

import (
	"math"
	"time"

	"github.com/leapstack-labs/convcat/pkg/core"
)

// Entries returns the built-in coercion rules in reading order, grouped by
// target type. Each call returns a fresh slice.
func Entries() []core.Entry {
	return []core.Entry{
		{
			Target: core.String, Input: core.String, Mode: core.Strict, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaStr},
		},
		{
			Target: core.String, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "Assumes UTF-8, error on unicode decoding error.",
			Valid:     []any{[]byte("this is bytes")},
			Invalid:   []any{[]byte("\x81")},
			Schemas:   []core.SchemaKind{core.SchemaStr},
		},
		{
			Target: core.String, Input: core.ByteArray, Mode: core.Lax, Channel: core.Native,
			Condition: "Assumes UTF-8, error on unicode decoding error.",
			Valid:     []any{[]byte("this is bytearraythis is bytearraythis is bytearray")},
			Invalid:   []any{[]byte("\x81\x81\x81\x81\x81")},
			Schemas:   []core.SchemaKind{core.SchemaStr},
		},

		{
			Target: core.Bytes, Input: core.Bytes, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaBytes},
		},
		{
			Target: core.Bytes, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Valid:   []any{"foo"},
			Schemas: []core.SchemaKind{core.SchemaBytes},
		},
		{
			Target: core.Bytes, Input: core.String, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{"foo"},
			Schemas: []core.SchemaKind{core.SchemaBytes},
		},
		{
			Target: core.Bytes, Input: core.ByteArray, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{[]byte("this is bytearraythis is bytearraythis is bytearray")},
			Schemas: []core.SchemaKind{core.SchemaBytes},
		},

		{
			Target: core.Integer, Input: core.Integer, Mode: core.Strict, Channel: core.Both,
			Condition: "Max abs value `2^64` - `i64` is used internally, `bool` explicitly forbidden.",
			Invalid:   []any{core.BigInt("18446744073709551616"), true, false},
			Schemas:   []core.SchemaKind{core.SchemaInt},
		},
		{
			Target: core.Integer, Input: core.Integer, Mode: core.Lax, Channel: core.Both,
			Condition: "`i64`. Limits `numbers > (2 ^ 63) - 1` to `(2 ^ 63) - 1`.",
			Schemas:   []core.SchemaKind{core.SchemaInt},
		},
		{
			Target: core.Integer, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Condition: "`i64`, Must be exact int, e.g. `val % 1 == 0`, raises error for `nan`, `inf`.",
			Valid:     []any{2.0},
			Invalid:   []any{2.1, math.MaxFloat64, math.NaN(), math.Inf(1)},
			Schemas:   []core.SchemaKind{core.SchemaInt},
		},
		{
			Target: core.Integer, Input: core.Decimal, Mode: core.Lax, Channel: core.Native,
			Condition: "`i64`, Must be exact int, e.g. `val % 1 == 0`.",
			Valid:     []any{core.Dec("2.0")},
			Invalid:   []any{core.Dec("2.1")},
			Schemas:   []core.SchemaKind{core.SchemaInt},
		},
		{
			Target: core.Integer, Input: core.Boolean, Mode: core.Lax, Channel: core.Both,
			Valid:   []any{true, false},
			Schemas: []core.SchemaKind{core.SchemaInt},
		},
		{
			Target: core.Integer, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "`i64`, Must be numeric only, e.g. `[0-9]+`.",
			Valid:     []any{"123"},
			Invalid:   []any{"test", "123x"},
			Schemas:   []core.SchemaKind{core.SchemaInt},
		},
		{
			Target: core.Integer, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "`i64`, Must be numeric only, e.g. `[0-9]+`.",
			Valid:     []any{[]byte("123")},
			Invalid:   []any{[]byte("test"), []byte("123x")},
			Schemas:   []core.SchemaKind{core.SchemaInt},
		},

		{
			Target: core.Float, Input: core.Float, Mode: core.Strict, Channel: core.Both,
			Condition: "`bool` explicitly forbidden.",
			Invalid:   []any{true, false},
			Schemas:   []core.SchemaKind{core.SchemaFloat},
		},
		{
			Target: core.Float, Input: core.Integer, Mode: core.Strict, Channel: core.Both,
			Valid:   []any{123},
			Schemas: []core.SchemaKind{core.SchemaFloat},
		},
		{
			Target: core.Float, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "Must match `[0-9]+(\\.[0-9]+)?`.",
			Valid:     []any{"3.141"},
			Invalid:   []any{"test", "3.141x"},
			Schemas:   []core.SchemaKind{core.SchemaFloat},
		},
		{
			Target: core.Float, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "Must match `[0-9]+(\\.[0-9]+)?`.",
			Valid:     []any{[]byte("3.141")},
			Invalid:   []any{[]byte("test"), []byte("3.141x")},
			Schemas:   []core.SchemaKind{core.SchemaFloat},
		},
		{
			Target: core.Float, Input: core.Decimal, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{core.Dec("3.5")},
			Schemas: []core.SchemaKind{core.SchemaFloat},
		},
		{
			Target: core.Float, Input: core.Boolean, Mode: core.Lax, Channel: core.Both,
			Valid:   []any{true, false},
			Schemas: []core.SchemaKind{core.SchemaFloat},
		},

		{
			Target: core.Boolean, Input: core.Boolean, Mode: core.Strict, Channel: core.Both,
			Valid:   []any{true, false},
			Schemas: []core.SchemaKind{core.SchemaBool},
		},
		{
			Target: core.Boolean, Input: core.Integer, Mode: core.Lax, Channel: core.Both,
			Condition: "Allowed values: `0, 1`.",
			Valid:     []any{0, 1},
			Invalid:   []any{2, 100},
			Schemas:   []core.SchemaKind{core.SchemaBool},
		},
		{
			Target: core.Boolean, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Condition: "Allowed values: `0.0, 1.0`.",
			Valid:     []any{0.0, 1.0},
			Invalid:   []any{2.0, 100.0},
			Schemas:   []core.SchemaKind{core.SchemaBool},
		},
		{
			Target: core.Boolean, Input: core.Decimal, Mode: core.Lax, Channel: core.Native,
			Condition: "Allowed values: `Decimal(0), Decimal(1)`.",
			Valid:     []any{core.Dec("0"), core.Dec("1")},
			Invalid:   []any{core.Dec("2"), core.Dec("100")},
			Schemas:   []core.SchemaKind{core.SchemaBool},
		},
		{
			Target: core.Boolean, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "Allowed values: `'f'`, `'n'`, `'no'`, `'off'`, `'false'`, `'False'`, `'t'`, `'y'`, `'on'`, `'yes'`, `'true'`, `'True'`.",
			Valid:     []any{"f", "n", "no", "off", "false", "False", "t", "y", "on", "yes", "true", "True"},
			Invalid:   []any{"test"},
			Schemas:   []core.SchemaKind{core.SchemaBool},
		},

		{
			Target: core.Null, Input: core.Null, Mode: core.Strict, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaNone},
		},

		{
			Target: core.Date, Input: core.Date, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaDate},
		},
		{
			Target: core.Date, Input: core.DateTime, Mode: core.Lax, Channel: core.Native,
			Condition: "Must be exact date, eg. no `H`, `M`, `S`, `f`.",
			Valid:     []any{time.Date(2017, time.May, 5, 0, 0, 0, 0, time.UTC)},
			Invalid:   []any{time.Date(2017, time.May, 5, 10, 0, 0, 0, time.UTC)},
			Schemas:   []core.SchemaKind{core.SchemaDate},
		},
		{
			Target: core.Date, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "Format: `YYYY-MM-DD`.",
			Valid:     []any{"2017-05-05"},
			Invalid:   []any{"2017-5-5", "2017/05/05"},
			Schemas:   []core.SchemaKind{core.SchemaDate},
		},
		{
			Target: core.Date, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "Format: `YYYY-MM-DD` (UTF-8).",
			Valid:     []any{[]byte("2017-05-05")},
			Invalid:   []any{[]byte("2017-5-5"), []byte("2017/05/05")},
			Schemas:   []core.SchemaKind{core.SchemaDate},
		},
		{
			Target: core.Date, Input: core.Integer, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds or ms from epoch. See speedate. Must be exact date.",
			Valid:     []any{1493942400000, 1493942400},
			Invalid:   []any{1493942401000},
			Schemas:   []core.SchemaKind{core.SchemaDate},
		},
		{
			Target: core.Date, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds or ms from epoch. See speedate. Must be exact date.",
			Valid:     []any{1493942400000.0, 1493942400.0},
			Invalid:   []any{1493942401000.0},
			Schemas:   []core.SchemaKind{core.SchemaDate},
		},
		{
			Target: core.Date, Input: core.Decimal, Mode: core.Lax, Channel: core.Native,
			Condition: "Interpreted as seconds or ms from epoch. See speedate. Must be exact date.",
			Valid:     []any{core.Dec("1493942400000"), core.Dec("1493942400")},
			Invalid:   []any{core.Dec("1493942401000")},
			Schemas:   []core.SchemaKind{core.SchemaDate},
		},

		{
			Target: core.DateTime, Input: core.DateTime, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaDatetime},
		},
		{
			Target: core.DateTime, Input: core.Date, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{core.Day(2017, time.May, 5)},
			Schemas: []core.SchemaKind{core.SchemaDatetime},
		},
		{
			Target: core.DateTime, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "Format: `YYYY-MM-DDTHH:MM:SS.f`. See speedate.",
			Valid:     []any{"2017-05-05 10:10:10", "2017-05-05T10:10:10.0002", "2017-05-05 10:10:10+00:00"},
			Invalid:   []any{"2017-5-5T10:10:10"},
			Schemas:   []core.SchemaKind{core.SchemaDatetime},
		},
		{
			Target: core.DateTime, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "Format: `YYYY-MM-DDTHH:MM:SS.f`. See speedate, (UTF-8).",
			Valid:     []any{[]byte("2017-05-05 10:10:10"), []byte("2017-05-05T10:10:10.0002"), []byte("2017-05-05 10:10:10+00:00")},
			Invalid:   []any{[]byte("2017-5-5T10:10:10")},
			Schemas:   []core.SchemaKind{core.SchemaDatetime},
		},
		{
			Target: core.DateTime, Input: core.Integer, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds or ms from epoch, see speedate.",
			Valid:     []any{1493979010000, 1493979010},
			Schemas:   []core.SchemaKind{core.SchemaDatetime},
		},
		{
			Target: core.DateTime, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds or ms from epoch, see speedate.",
			Valid:     []any{1493979010000.0, 1493979010.0},
			Schemas:   []core.SchemaKind{core.SchemaDatetime},
		},
		{
			Target: core.DateTime, Input: core.Decimal, Mode: core.Lax, Channel: core.Native,
			Condition: "Interpreted as seconds or ms from epoch, see speedate.",
			Valid:     []any{core.Dec("1493979010000"), core.Dec("1493979010")},
			Schemas:   []core.SchemaKind{core.SchemaDatetime},
		},

		{
			Target: core.Time, Input: core.Time, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTime},
		},
		{
			Target: core.Time, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "Format: `HH:MM:SS.FFFFFF`. See speedate.",
			Valid:     []any{"10:10:10.0002"},
			Invalid:   []any{"1:1:1"},
			Schemas:   []core.SchemaKind{core.SchemaTime},
		},
		{
			Target: core.Time, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "Format: `HH:MM:SS.FFFFFF`. See speedate.",
			Valid:     []any{[]byte("10:10:10.0002")},
			Invalid:   []any{[]byte("1:1:1")},
			Schemas:   []core.SchemaKind{core.SchemaTime},
		},
		{
			Target: core.Time, Input: core.Integer, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds, range `0 - 86399`.",
			Valid:     []any{3720},
			Invalid:   []any{-1, 86400},
			Schemas:   []core.SchemaKind{core.SchemaTime},
		},
		{
			Target: core.Time, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds, range `0 - 86399.9*`.",
			Valid:     []any{3720.0002},
			Invalid:   []any{-1.0, 86400.0},
			Schemas:   []core.SchemaKind{core.SchemaTime},
		},
		{
			Target: core.Time, Input: core.Decimal, Mode: core.Lax, Channel: core.Native,
			Condition: "Interpreted as seconds, range `0 - 86399.9*`.",
			Valid:     []any{core.Dec("3720.0002")},
			Invalid:   []any{core.Dec("-1"), core.Dec("86400")},
			Schemas:   []core.SchemaKind{core.SchemaTime},
		},

		{
			Target: core.Duration, Input: core.Duration, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTimedelta},
		},
		{
			Target: core.Duration, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "Format: `ISO8601`. See speedate.",
			Valid:     []any{"1 days 10:10", "1 d 10:10"},
			Invalid:   []any{"1 10:10"},
			Schemas:   []core.SchemaKind{core.SchemaTimedelta},
		},
		{
			Target: core.Duration, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "Format: `ISO8601`. See speedate, (UTF-8).",
			Valid:     []any{[]byte("1 days 10:10"), []byte("1 d 10:10")},
			Invalid:   []any{[]byte("1 10:10")},
			Schemas:   []core.SchemaKind{core.SchemaTimedelta},
		},
		{
			Target: core.Duration, Input: core.Integer, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds.",
			Valid:     []any{123000},
			Schemas:   []core.SchemaKind{core.SchemaTimedelta},
		},
		{
			Target: core.Duration, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Condition: "Interpreted as seconds.",
			Valid:     []any{123000.0002},
			Schemas:   []core.SchemaKind{core.SchemaTimedelta},
		},
		{
			Target: core.Duration, Input: core.Decimal, Mode: core.Lax, Channel: core.Native,
			Condition: "Interpreted as seconds.",
			Valid:     []any{core.Dec("123000.0002")},
			Schemas:   []core.SchemaKind{core.SchemaTimedelta},
		},

		{
			Target: core.Dict, Input: core.Dict, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaDict},
		},
		{
			Target: core.Dict, Input: core.Object, Mode: core.Strict, Channel: core.Wire,
			Valid:   []any{"{\"v\": {\"1\": 1, \"2\": 2}}"},
			Schemas: []core.SchemaKind{core.SchemaDict},
		},
		{
			Target: core.Dict, Input: core.Mapping, Mode: core.Lax, Channel: core.Native,
			Condition: "Must implement the mapping interface and have an `items()` method.",
			Schemas:   []core.SchemaKind{core.SchemaDict},
		},

		{
			Target: core.TypedDict, Input: core.Dict, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTypedDict},
		},
		{
			Target: core.TypedDict, Input: core.Object, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaTypedDict},
		},
		{
			Target: core.TypedDict, Input: core.Any, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTypedDict},
		},
		{
			Target: core.TypedDict, Input: core.Mapping, Mode: core.Lax, Channel: core.Native,
			Condition: "Must implement the mapping interface and have an `items()` method.",
			Schemas:   []core.SchemaKind{core.SchemaTypedDict},
		},

		{
			Target: core.List, Input: core.List, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaList},
		},
		{
			Target: core.List, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaList},
		},
		{
			Target: core.List, Input: core.Tuple, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaList},
		},
		{
			Target: core.List, Input: core.Set, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaList},
		},
		{
			Target: core.List, Input: core.FrozenSet, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaList},
		},
		{
			Target: core.List, Input: core.Deque, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaList},
		},
		{
			Target: core.List, Input: core.DictKeys, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaList},
		},
		{
			Target: core.List, Input: core.DictValues, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaList},
		},

		{
			Target: core.Tuple, Input: core.Tuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},
		{
			Target: core.Tuple, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},
		{
			Target: core.Tuple, Input: core.List, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},
		{
			Target: core.Tuple, Input: core.Set, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},
		{
			Target: core.Tuple, Input: core.FrozenSet, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},
		{
			Target: core.Tuple, Input: core.Deque, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},
		{
			Target: core.Tuple, Input: core.DictKeys, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},
		{
			Target: core.Tuple, Input: core.DictValues, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaTuplePositional, core.SchemaTupleVariable},
		},

		{
			Target: core.Set, Input: core.Set, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},
		{
			Target: core.Set, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},
		{
			Target: core.Set, Input: core.List, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},
		{
			Target: core.Set, Input: core.Tuple, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},
		{
			Target: core.Set, Input: core.FrozenSet, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},
		{
			Target: core.Set, Input: core.Deque, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},
		{
			Target: core.Set, Input: core.DictKeys, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},
		{
			Target: core.Set, Input: core.DictValues, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaSet},
		},

		{
			Target: core.FrozenSet, Input: core.FrozenSet, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},
		{
			Target: core.FrozenSet, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},
		{
			Target: core.FrozenSet, Input: core.List, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},
		{
			Target: core.FrozenSet, Input: core.Tuple, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},
		{
			Target: core.FrozenSet, Input: core.Set, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},
		{
			Target: core.FrozenSet, Input: core.Deque, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},
		{
			Target: core.FrozenSet, Input: core.DictKeys, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},
		{
			Target: core.FrozenSet, Input: core.DictValues, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFrozenSet},
		},

		{
			Target: core.IsInstance, Input: core.Any, Mode: core.Strict, Channel: core.Native,
			Condition: "`isinstance()` check returns `True`.",
			Schemas:   []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IsInstance, Input: core.Unrepresentable, Mode: core.Strict, Channel: core.Wire,
			Condition: "Never valid.",
			Schemas:   []core.SchemaKind{core.SchemaIsInstance},
		},

		{
			Target: core.Callable, Input: core.Any, Mode: core.Strict, Channel: core.Native,
			Condition: "`callable()` check returns `True`.",
			Schemas:   []core.SchemaKind{core.SchemaCallable},
		},
		{
			Target: core.Callable, Input: core.Unrepresentable, Mode: core.Strict, Channel: core.Wire,
			Condition: "Never valid.",
			Schemas:   []core.SchemaKind{core.SchemaCallable},
		},

		{
			Target: core.Deque, Input: core.Deque, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFunctionWrap},
		},
		{
			Target: core.Deque, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionWrap},
		},
		{
			Target: core.Deque, Input: core.List, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},
		{
			Target: core.Deque, Input: core.Tuple, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},
		{
			Target: core.Deque, Input: core.Set, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},
		{
			Target: core.Deque, Input: core.FrozenSet, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},

		{
			Target: core.Any, Input: core.Any, Mode: core.Strict, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaAny},
		},

		{
			Target: core.TypedNamedTuple, Input: core.TypedNamedTuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.TypedNamedTuple, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.TypedNamedTuple, Input: core.NamedTuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.TypedNamedTuple, Input: core.Tuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.TypedNamedTuple, Input: core.List, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.TypedNamedTuple, Input: core.Dict, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},

		{
			Target: core.NamedTuple, Input: core.NamedTuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.NamedTuple, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.NamedTuple, Input: core.TypedNamedTuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.NamedTuple, Input: core.Tuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.NamedTuple, Input: core.List, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},
		{
			Target: core.NamedTuple, Input: core.Dict, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCall},
		},

		{
			Target: core.Sequence, Input: core.List, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},
		{
			Target: core.Sequence, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},
		{
			Target: core.Sequence, Input: core.Tuple, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},
		{
			Target: core.Sequence, Input: core.Deque, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaChain},
		},

		{
			Target: core.Iterable, Input: core.List, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaGenerator},
		},
		{
			Target: core.Iterable, Input: core.Array, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaGenerator},
		},
		{
			Target: core.Iterable, Input: core.Tuple, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaGenerator},
		},
		{
			Target: core.Iterable, Input: core.Set, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaGenerator},
		},
		{
			Target: core.Iterable, Input: core.FrozenSet, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaGenerator},
		},
		{
			Target: core.Iterable, Input: core.Deque, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaGenerator},
		},

		{
			Target: core.Class, Input: core.Class, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsSubclass},
		},

		{
			Target: core.Pattern, Input: core.String, Mode: core.Strict, Channel: core.Both,
			Condition: "Input should be a valid pattern.",
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.Pattern, Input: core.Bytes, Mode: core.Strict, Channel: core.Native,
			Condition: "Input should be a valid pattern.",
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.IPv4Address, Input: core.IPv4Address, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv4Address, Input: core.IPv4Interface, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv4Address, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.IPv4Address, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Address, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{[]byte("\x00\x00\x00\x00")},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Address, Input: core.Integer, Mode: core.Lax, Channel: core.Native,
			Condition: "integer representing the IP address, should be less than `2**32`",
			Valid:     []any{168430090},
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.IPv4Interface, Input: core.IPv4Interface, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv4Interface, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.IPv4Interface, Input: core.IPv4Address, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Interface, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Interface, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{[]byte("\xff\xff\xff\xff")},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Interface, Input: core.Tuple, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{core.TupleValue{"192.168.0.1", "24"}},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Interface, Input: core.Integer, Mode: core.Lax, Channel: core.Native,
			Condition: "integer representing the IP address, should be less than `2**32`",
			Valid:     []any{168430090},
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.IPv4Network, Input: core.IPv4Network, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv4Network, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.IPv4Network, Input: core.IPv4Address, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Network, Input: core.IPv4Interface, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Network, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Network, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{[]byte("\xff\xff\xff\xff")},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv4Network, Input: core.Integer, Mode: core.Lax, Channel: core.Native,
			Condition: "integer representing the IP network, should be less than `2**32`",
			Valid:     []any{168430090},
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.IPv6Address, Input: core.IPv6Address, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv6Address, Input: core.IPv6Interface, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv6Address, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.IPv6Address, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Address, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{[]byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x01")},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Address, Input: core.Integer, Mode: core.Lax, Channel: core.Native,
			Condition: "integer representing the IP address, should be less than `2**128`",
			Valid:     []any{core.BigInt("340282366920938463463374607431768211455")},
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.IPv6Interface, Input: core.IPv6Interface, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv6Interface, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.IPv6Interface, Input: core.IPv6Address, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Interface, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Interface, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{[]byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x01")},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Interface, Input: core.Tuple, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{core.TupleValue{"2001:db00::1", "120"}},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Interface, Input: core.Integer, Mode: core.Lax, Channel: core.Native,
			Condition: "integer representing the IP address, should be less than `2**128`",
			Valid:     []any{core.BigInt("340282366920938463463374607431768211455")},
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.IPv6Network, Input: core.IPv6Network, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IPv6Network, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.IPv6Network, Input: core.IPv6Address, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Network, Input: core.IPv6Interface, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Network, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Network, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{[]byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x01")},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IPv6Network, Input: core.Integer, Mode: core.Lax, Channel: core.Native,
			Condition: "integer representing the IP address, should be less than `2**128`",
			Valid:     []any{core.BigInt("340282366920938463463374607431768211455")},
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.Enum, Input: core.Enum, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.Enum, Input: core.Any, Mode: core.Strict, Channel: core.Wire,
			Condition: "Input value should be convertible to enum values.",
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.Enum, Input: core.Any, Mode: core.Lax, Channel: core.Native,
			Condition: "Input value should be convertible to enum values.",
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.IntEnum, Input: core.IntEnum, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.IntEnum, Input: core.Any, Mode: core.Strict, Channel: core.Wire,
			Condition: "Input value should be convertible to enum values.",
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.IntEnum, Input: core.Any, Mode: core.Lax, Channel: core.Native,
			Condition: "Input value should be convertible to enum values.",
			Schemas:   []core.SchemaKind{core.SchemaFunctionPlain},
		},

		{
			Target: core.Decimal, Input: core.Decimal, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaCustomError},
		},
		{
			Target: core.Decimal, Input: core.Integer, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaCustomError},
		},
		{
			Target: core.Decimal, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaCustomError},
		},
		{
			Target: core.Decimal, Input: core.Float, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaCustomError},
		},
		{
			Target: core.Decimal, Input: core.Integer, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.Decimal, Input: core.String, Mode: core.Lax, Channel: core.Both,
			Condition: "Must match `[0-9]+(\\.[0-9]+)?`.",
			Valid:     []any{"3.141"},
			Invalid:   []any{"test", "3.141x"},
			Schemas:   []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.Decimal, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},

		{
			Target: core.Path, Input: core.Path, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.Path, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.Path, Input: core.String, Mode: core.Lax, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},

		{
			Target: core.UUID, Input: core.UUID, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaIsInstance},
		},
		{
			Target: core.UUID, Input: core.String, Mode: core.Strict, Channel: core.Wire,
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},
		{
			Target: core.UUID, Input: core.String, Mode: core.Lax, Channel: core.Native,
			Valid:   []any{"{12345678-1234-5678-1234-567812345678}"},
			Schemas: []core.SchemaKind{core.SchemaFunctionAfter},
		},

		{
			Target: core.ByteSize, Input: core.String, Mode: core.Strict, Channel: core.Both,
			Valid:   []any{"1.2", "1.5 KB", "6.2EiB"},
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.ByteSize, Input: core.Integer, Mode: core.Strict, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.ByteSize, Input: core.Float, Mode: core.Strict, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},
		{
			Target: core.ByteSize, Input: core.Decimal, Mode: core.Strict, Channel: core.Native,
			Schemas: []core.SchemaKind{core.SchemaFunctionPlain},
		},

	}
}
