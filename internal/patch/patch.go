// Package patch builds single-row partial UPDATE statements from
// client-supplied field bags. Each entity declares an allow-list of
// mutable fields; anything else, including the identity field, is
// dropped before a statement is emitted.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoFields is returned when an update request contains no mutable
// fields after filtering. Callers should report it before touching
// storage.
var ErrNoFields = errors.New("no fields to update")

// KV is a single field from a decoded JSON object, in document order.
type KV struct {
	Key   string
	Value any
}

// Field is a validated (column, value) pair ready for statement building.
type Field struct {
	Column string
	Value  any
}

// Spec describes how one entity accepts partial updates. Columns maps
// accepted JSON field names to their storage columns; the identity
// field must not appear in it.
type Spec struct {
	Table     string
	KeyColumn string
	Columns   map[string]string
}

// ParseObject decodes a single JSON object while preserving the order
// the caller submitted its fields in. A map would lose that order, and
// placeholder numbering depends on it.
func ParseObject(r io.Reader) ([]KV, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding body: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var kvs []KV

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding field name: %w", err)
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("expected a field name")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", key, err)
		}

		var val any
		if err := json.Unmarshal(raw, &val); err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", key, err)
		}

		kvs = append(kvs, KV{Key: key, Value: val})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding body: %w", err)
	}

	return kvs, nil
}

// Map filters the submitted fields down to the entity's mutable
// columns, preserving submission order. Unknown fields and the
// identity field are dropped silently; an empty result is ErrNoFields.
func (s Spec) Map(kvs []KV) ([]Field, error) {
	fields := make([]Field, 0, len(kvs))

	for _, kv := range kvs {
		col, ok := s.Columns[kv.Key]
		if !ok {
			continue
		}

		fields = append(fields, Field{Column: col, Value: kv.Value})
	}

	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	return fields, nil
}

// Build emits one parameterized UPDATE targeting the row identified by
// key. Placeholders are assigned positionally: fields first, in order,
// then the key. Build performs no existence check; a zero-rows-affected
// execution is the caller's not-found condition.
func (s Spec) Build(fields []Field, key any) (string, []any) {
	var b strings.Builder

	b.WriteString("UPDATE ")
	b.WriteString(s.Table)
	b.WriteString(" SET ")

	args := make([]any, 0, len(fields)+1)

	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s = $%d", f.Column, i+1)
		args = append(args, f.Value)
	}

	fmt.Fprintf(&b, " WHERE %s = $%d", s.KeyColumn, len(fields)+1)
	args = append(args, key)

	return b.String(), args
}
