// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v3"
)

// Counts is an ordered list of named counters. It serializes as a JSON or
// YAML object whose key order follows the slice order, so rankings survive
// an export and re-import.
type Counts []Count

// Get returns the count stored under name.
func (c Counts) Get(name string) (int, bool) {
	for _, e := range c {
		if e.Name == name {
			return e.Count, true
		}
	}
	return 0, false
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

// MarshalJSON writes c as an object in slice order.
func (c Counts) MarshalJSON() ([]byte, error) {
	return marshalObject(len(c), func(i int) (string, any) {
		return c[i].Name, c[i].Count
	})
}

// UnmarshalJSON reads an object into c, keeping the document's key order.
func (c *Counts) UnmarshalJSON(data []byte) error {
	out := Counts{}
	err := unmarshalObject(data, func(key string, dec *json.Decoder) error {
		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("decoding count for %q: %w", key, err)
		}
		out = append(out, Count{Name: key, Count: n})
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalYAML writes c as a mapping in slice order.
func (c Counts) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range c {
		node.Content = append(node.Content,
			stringNode(e.Name),
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(e.Count)},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping into c, keeping the document's key order.
func (c *Counts) UnmarshalYAML(value *yaml.Node) error {
	out := Counts{}
	err := eachMappingPair(value, func(key string, v *yaml.Node) error {
		var n int
		if err := v.Decode(&n); err != nil {
			return fmt.Errorf("decoding count for %q: %w", key, err)
		}
		out = append(out, Count{Name: key, Count: n})
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// TheoryFindings is an ordered list of theory findings, serialized as an
// object keyed by theory name.
type TheoryFindings []TheoryFinding

// Get returns the finding for the named theory.
func (t TheoryFindings) Get(name string) (TheoryFinding, bool) {
	for _, f := range t {
		if f.Name == name {
			return f, true
		}
	}
	return TheoryFinding{}, false
}

// MarshalJSON writes t as an object in slice order.
func (t TheoryFindings) MarshalJSON() ([]byte, error) {
	return marshalObject(len(t), func(i int) (string, any) {
		f := t[i]
		if f.Terms == nil {
			f.Terms = []string{}
		}
		return f.Name, f
	})
}

// UnmarshalJSON reads an object into t, keeping the document's key order.
func (t *TheoryFindings) UnmarshalJSON(data []byte) error {
	out := TheoryFindings{}
	err := unmarshalObject(data, func(key string, dec *json.Decoder) error {
		var f TheoryFinding
		if err := dec.Decode(&f); err != nil {
			return fmt.Errorf("decoding theory %q: %w", key, err)
		}
		f.Name = key
		out = append(out, f)
		return nil
	})
	if err != nil {
		return err
	}
	*t = out
	return nil
}

// MarshalYAML writes t as a mapping in slice order.
func (t TheoryFindings) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range t {
		var v yaml.Node
		if err := v.Encode(f); err != nil {
			return nil, fmt.Errorf("encoding theory %q: %w", f.Name, err)
		}
		node.Content = append(node.Content, stringNode(f.Name), &v)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping into t, keeping the document's key order.
func (t *TheoryFindings) UnmarshalYAML(value *yaml.Node) error {
	out := TheoryFindings{}
	err := eachMappingPair(value, func(key string, v *yaml.Node) error {
		var f TheoryFinding
		if err := v.Decode(&f); err != nil {
			return fmt.Errorf("decoding theory %q: %w", key, err)
		}
		f.Name = key
		out = append(out, f)
		return nil
	})
	if err != nil {
		return err
	}
	*t = out
	return nil
}

// MarshalJSON writes k as [word, count].
func (k KeywordCount) MarshalJSON() ([]byte, error) {
	return encodeJSON([]any{k.Word, k.Count})
}

// UnmarshalJSON reads a [word, count] pair.
func (k *KeywordCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("keyword entry: expected [word, count], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &k.Word); err != nil {
		return fmt.Errorf("keyword word: %w", err)
	}
	if err := json.Unmarshal(pair[1], &k.Count); err != nil {
		return fmt.Errorf("keyword count: %w", err)
	}
	return nil
}

// MarshalYAML writes k as a flow sequence [word, count].
func (k KeywordCount) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			stringNode(k.Word),
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(k.Count)},
		},
	}, nil
}

// UnmarshalYAML reads a [word, count] sequence.
func (k *KeywordCount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: keyword entry must be [word, count]", value.Line)
	}
	if err := value.Content[0].Decode(&k.Word); err != nil {
		return fmt.Errorf("keyword word: %w", err)
	}
	if err := value.Content[1].Decode(&k.Count); err != nil {
		return fmt.Errorf("keyword count: %w", err)
	}
	return nil
}

// marshalObject builds a JSON object from n key/value pairs in order.
func marshalObject(n int, pair func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := pair(i)
		kb, err := encodeJSON(key)
		if err != nil {
			return nil, err
		}
		vb, err := encodeJSON(value)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", key, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON marshals v without HTML escaping so citation strings such as
// "(Smith & Jones, 2020)" are written verbatim.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// unmarshalObject walks a JSON object, handing each key and the positioned
// decoder to fn. A JSON null is accepted as an empty object.
func unmarshalObject(data []byte, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := fn(key, dec); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func eachMappingPair(value *yaml.Node, fn func(key string, v *yaml.Node) error) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if err := fn(value.Content[i].Value, value.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
