// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package payload assembles the JSON request body for one API call. A body
// starts from the command's typed flags, mapped to fixed field names, and a
// caller-supplied raw JSON override (inline string or file) is then merged on
// top, winning every top-level key conflict.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// InvalidRawBodyError reports a raw override that could not be read or parsed
// as a JSON object. It is always raised before any network call.
type InvalidRawBodyError struct {
	Source string // "--body" or the file path
	Err    error
}

func (e *InvalidRawBodyError) Error() string {
	return fmt.Sprintf("invalid raw body from %s: %v", e.Source, e.Err)
}

func (e *InvalidRawBodyError) Unwrap() error { return e.Err }

// Builder accumulates the canonical fields for one endpoint. Fields left at
// their zero value are never added, so the remote service applies its own
// defaults; absence means "let the server decide", not "send empty".
type Builder struct {
	fields map[string]any
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{fields: map[string]any{}}
}

// String sets key to value unless value is blank.
func (b *Builder) String(key, value string) *Builder {
	if strings.TrimSpace(value) != "" {
		b.fields[key] = value
	}
	return b
}

// StringList sets key to the trimmed, non-empty entries of values. A list
// that ends up empty is omitted entirely.
func (b *Builder) StringList(key string, values []string) *Builder {
	var cleaned []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) > 0 {
		b.fields[key] = cleaned
	}
	return b
}

// Bool sets key to value unconditionally. Used for fields where the canonical
// default must be explicit on the wire (e.g. answer's "stream": false).
func (b *Builder) Bool(key string, value bool) *Builder {
	b.fields[key] = value
	return b
}

// Build merges the raw override (if any) onto the canonical fields and
// returns the final request body. rawInline wins over rawFile when both are
// supplied.
func (b *Builder) Build(rawInline, rawFile string) (map[string]any, error) {
	override, err := LoadOverride(rawInline, rawFile)
	if err != nil {
		return nil, err
	}
	return Merge(b.fields, override), nil
}

// LoadOverride parses the raw JSON override from the inline string or, when
// the inline string is empty, from the named file. The override must be a
// JSON object; JSON null is treated as no override. Returns an empty map when
// neither source is given.
func LoadOverride(rawInline, rawFile string) (map[string]any, error) {
	var raw, source string
	switch {
	case rawInline != "":
		raw, source = rawInline, "--body"
	case rawFile != "":
		data, err := os.ReadFile(rawFile)
		if err != nil {
			return nil, &InvalidRawBodyError{Source: rawFile, Err: err}
		}
		raw, source = string(data), rawFile
	default:
		return map[string]any{}, nil
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, &InvalidRawBodyError{Source: source, Err: err}
	}
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, &InvalidRawBodyError{Source: source, Err: fmt.Errorf("body must be a JSON object, got %T", value)}
	}
}

// Merge returns a new object holding every key of base overlaid with every
// key of override. The merge is shallow: an override value replaces the base
// value wholesale, whatever the types on either side.
func Merge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// RequireString checks that body[key] is a non-blank string. Validation runs
// after the merge, so a raw override can satisfy a required field no flag set.
func RequireString(body map[string]any, key string) error {
	v, ok := body[key]
	if !ok {
		return fmt.Errorf("missing %s", key)
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fmt.Errorf("missing %s", key)
	}
	return nil
}

// RequireAny checks that at least one of keys is present in body.
func RequireAny(body map[string]any, keys ...string) error {
	for _, k := range keys {
		if _, ok := body[k]; ok {
			return nil
		}
	}
	return fmt.Errorf("missing one of: %s", strings.Join(keys, ", "))
}
