package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report is an ordered mapping from report field name to its normalized
// string value. Field order is insertion order, which the builder keeps
// equal to the order fields were requested in.
type Report struct {
	order  []string
	values map[string]string
}

func NewReport() *Report {
	return &Report{values: make(map[string]string)}
}

// Set inserts or overwrites a field value. A new field is appended at the
// end of the order.
func (r *Report) Set(field, value string) {
	if _, exists := r.values[field]; !exists {
		r.order = append(r.order, field)
	}
	r.values[field] = value
}

func (r *Report) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Fields returns the field names in report order.
func (r *Report) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Report) Len() int {
	return len(r.order)
}

// String renders the report as "field: value" lines in report order.
func (r *Report) String() string {
	var b strings.Builder
	for _, f := range r.order {
		fmt.Fprintf(&b, "%s: %s\n", f, r.values[f])
	}
	return b.String()
}

// MarshalJSON renders the report as a JSON object with keys in report
// order. encoding/json map marshalling would sort keys, losing the
// requested order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[f])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the report as a YAML mapping with keys in report
// order.
func (r *Report) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.order {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f},
			&yaml.Node{Kind: yaml.ScalarNode, Value: r.values[f]},
		)
	}
	return node, nil
}
