// Package dataset decodes table input files into typed value slices.
//
// Input is YAML or JSON (JSON is read through the YAML decoder). It is either
// a bare list of values or a document:
//
//	title: Measurements
//	columns: [min, max]
//	arrangement: row-major
//	width: 40
//	type: float
//	values: [1.5, 2.25, 3, 4.125]
//
// Nested lists in values are flattened row by row.
package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// ErrNoValues is returned when the input contains nothing to render.
var ErrNoValues = errors.New("input contains no values")

// Document is a decoded table input.
type Document struct {
	Title       string        `yaml:"title,omitempty" json:"title,omitempty"`
	Columns     []string      `yaml:"columns,omitempty" json:"columns,omitempty"`
	Width       int           `yaml:"width,omitempty" json:"width,omitempty"`
	Arrangement string        `yaml:"arrangement,omitempty" json:"arrangement,omitempty"`
	Type        string        `yaml:"type,omitempty" json:"type,omitempty"`
	Values      []interface{} `yaml:"values" json:"values"`

	raw interface{}
}

// Parse decodes data as a document or a bare list of values.
func Parse(data []byte) (*Document, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrNoValues
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	raw = normalize(raw)

	doc := &Document{raw: raw}
	switch v := raw.(type) {
	case []interface{}:
		doc.Values = v
	case map[string]interface{}:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parsing input document: %w", err)
		}
		doc.Values, _ = normalize(doc.Values).([]interface{})
	default:
		return nil, fmt.Errorf("parsing input: expected a list or a mapping, got %T", raw)
	}

	doc.Values = flatten(doc.Values)
	return doc, nil
}

// Select replaces the document values with the results of a jq expression
// evaluated against the whole input. Array results are flattened one level.
func (d *Document) Select(expr string) error {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}

	parsed, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid --select: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return fmt.Errorf("invalid --select: %w", err)
	}

	var values []interface{}
	iter := code.Run(d.raw)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("select error: %w", err)
		}
		if list, isList := v.([]interface{}); isList {
			values = append(values, list...)
			continue
		}
		values = append(values, v)
	}

	d.Values = flatten(values)
	return nil
}

func flatten(values []interface{}) []interface{} {
	nested := false
	for _, v := range values {
		if _, ok := v.([]interface{}); ok {
			nested = true
			break
		}
	}
	if !nested {
		return values
	}

	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		if row, ok := v.([]interface{}); ok {
			out = append(out, row...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// normalize converts YAML specific containers into the shapes gojq accepts.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []interface{}:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	case int64:
		return int(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
