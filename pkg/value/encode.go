package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToJSON encodes v as JSON, keeping map order. Typed strings become
// {"type", "value"} objects, code becomes {"language", "code"} objects
// and holes become null. A non-empty indent pretty-prints the output.
func ToJSON(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	if indent == "" {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case *Map:
		buf.WriteByte('{')
		i := 0
		for k, item := range v.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case *Array:
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case String:
		writeJSONString(buf, string(v))
	case Integer:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(v)))
	case Null, Hole:
		buf.WriteString("null")
	case TypedString:
		buf.WriteString(`{"type":`)
		writeJSONString(buf, v.Type)
		buf.WriteString(`,"value":`)
		writeJSONString(buf, v.Value)
		buf.WriteByte('}')
	case Code:
		buf.WriteString(`{"language":`)
		writeJSONString(buf, v.Language)
		buf.WriteString(`,"code":`)
		writeJSONString(buf, v.Content)
		buf.WriteByte('}')
	default:
		return fmt.Errorf("json: unsupported value %T", v)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	// Marshalling a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}

// ToYAML encodes v as a YAML document, keeping map order. Typed strings
// carry their type as a local tag, holes are tagged !hole and code becomes
// a mapping with a literal block body.
func ToYAML(v Value) ([]byte, error) {
	node, err := ToYAMLNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// ToYAMLNode converts v to a yaml.v3 node tree.
func ToYAMLNode(v Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case *Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, item := range v.All() {
			child, err := ToYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, stringNode(k), child)
		}
		return node, nil
	case *Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items {
			child, err := ToYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case String:
		return stringNode(string(v)), nil
	case Integer:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(v), 10)}, nil
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(v))}, nil
	case Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case Hole:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!hole", Value: ""}, nil
	case TypedString:
		node := stringNode(v.Value)
		node.Tag = "!" + v.Type
		return node, nil
	case Code:
		code := stringNode(v.Content)
		if strings.Contains(v.Content, "\n") {
			code.Style = yaml.LiteralStyle
		}
		return &yaml.Node{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				stringNode("language"), stringNode(v.Language),
				stringNode("code"), code,
			},
		}, nil
	default:
		return nil, fmt.Errorf("yaml: unsupported value %T", v)
	}
}

func stringNode(s string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node
}
