package model

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// The wire form accepts either the compact string notation ("@id",
// "outer/name", "name") or the explicit object form {is_attr, name, wrapped}.

func (x *XMLType) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseXMLType(s)
		if err != nil {
			return err
		}
		*x = *parsed
		return nil
	}
	var w xmlTypeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("invalid xml binding: %w", err)
	}
	x.fromWire(w)
	return nil
}

func (x *XMLType) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.toWire())
}

func (x *XMLType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		parsed, err := ParseXMLType(s)
		if err != nil {
			return err
		}
		*x = *parsed
		return nil
	}
	var w xmlTypeWire
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("invalid xml binding: %w", err)
	}
	x.fromWire(w)
	return nil
}
