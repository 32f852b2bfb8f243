package catalog

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/convcat/pkg/core"
	"gopkg.in/yaml.v3"
)

// Example tags understood in catalog files. Untagged scalars, sequences
// and mappings decode to their plain YAML values.
const (
	tagBytes   = "!bytes"
	tagDecimal = "!decimal"
	tagDate    = "!date"
	tagTuple   = "!tuple"
	tagBigInt  = "!bigint"
)

// rawFile is the on-disk layout of a catalog file.
type rawFile struct {
	Entries []rawEntry `yaml:"entries"`
}

// rawEntry keeps examples as nodes so their tags survive decoding.
type rawEntry struct {
	Valid   []yaml.Node    `yaml:"valid"`
	Invalid []yaml.Node    `yaml:"invalid"`
	Fields  map[string]any `yaml:",inline"`
}

// entrySpec holds the scalar fields of an entry before name resolution.
type entrySpec struct {
	Target    string   `mapstructure:"target"`
	Input     string   `mapstructure:"input"`
	Mode      string   `mapstructure:"mode"`
	Channel   string   `mapstructure:"channel"`
	Condition string   `mapstructure:"condition"`
	Schemas   []string `mapstructure:"schemas"`
}

// LoadFile reads a YAML catalog file and loads it.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is supplied by the maintainer
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cat, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Decode reads a YAML catalog document and loads it. Unknown type, mode,
// channel or schema names are reported as *SchemaError.
func Decode(r io.Reader) (*Catalog, error) {
	entries, err := DecodeEntries(r)
	if err != nil {
		return nil, err
	}
	return Load(entries)
}

// DecodeEntries reads a YAML catalog document into entries without loading them.
func DecodeEntries(r io.Reader) ([]core.Entry, error) {
	var raw rawFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	entries := make([]core.Entry, 0, len(raw.Entries))
	var errs []error
	for i, re := range raw.Entries {
		e, err := resolveEntry(i, re)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return entries, nil
}

func resolveEntry(i int, re rawEntry) (core.Entry, error) {
	var spec entrySpec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &spec,
		ErrorUnused: true,
	})
	if err != nil {
		return core.Entry{}, err
	}
	if err := dec.Decode(re.Fields); err != nil {
		return core.Entry{}, &SchemaError{Index: i, Field: "entry", Reason: err.Error()}
	}

	var errs []error
	e := core.Entry{Condition: spec.Condition}

	e.Target = lookupType(i, "target_type", spec.Target, &errs)
	e.Input = lookupType(i, "input_representation", spec.Input, &errs)

	if m, ok := core.ParseMode(spec.Mode); ok {
		e.Mode = m
	} else {
		errs = append(errs, schemaErrorf(i, "mode", "unknown mode %q", spec.Mode))
	}
	if c, ok := core.ParseChannel(spec.Channel); ok {
		e.Channel = c
	} else {
		errs = append(errs, schemaErrorf(i, "channel", "unknown channel %q", spec.Channel))
	}
	for _, name := range spec.Schemas {
		k, ok := core.ParseSchemaKind(name)
		if !ok {
			errs = append(errs, schemaErrorf(i, "implementing_schema_kinds", "unknown schema kind %q", name))
			continue
		}
		e.Schemas = append(e.Schemas, k)
	}

	e.Valid = decodeExamples(i, "valid_examples", re.Valid, &errs)
	e.Invalid = decodeExamples(i, "invalid_examples", re.Invalid, &errs)

	if len(errs) > 0 {
		return core.Entry{}, errors.Join(errs...)
	}
	return e, nil
}

func lookupType(i int, field, name string, errs *[]error) core.TypeRef {
	if name == "" {
		*errs = append(*errs, schemaErrorf(i, field, "is required"))
		return core.TypeRef{}
	}
	t, ok := core.LookupType(name)
	if !ok {
		*errs = append(*errs, schemaErrorf(i, field, "unknown type %q", name))
	}
	return t
}

func decodeExamples(i int, field string, nodes []yaml.Node, errs *[]error) []any {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]any, 0, len(nodes))
	for n := range nodes {
		v, err := nodeValue(&nodes[n])
		if err != nil {
			*errs = append(*errs, schemaErrorf(i, field, "example %d: %v", n, err))
			continue
		}
		out = append(out, v)
	}
	return out
}

// nodeValue converts a YAML node into an example value, honoring example tags.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Tag {
	case tagBytes:
		return []byte(n.Value), nil
	case tagDecimal:
		return core.Dec(strings.TrimSpace(n.Value)), nil
	case tagBigInt:
		v, ok := new(big.Int).SetString(strings.TrimSpace(n.Value), 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", n.Value)
		}
		return v, nil
	case tagDate:
		t, err := time.Parse(time.DateOnly, strings.TrimSpace(n.Value))
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", n.Value, err)
		}
		return core.Day(t.Year(), t.Month(), t.Day()), nil
	case tagTuple:
		if n.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%s requires a sequence", tagTuple)
		}
		items := make(core.TupleValue, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
