package yamlvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec errors.
var (
	// ErrMultiDocument is returned when a values file contains more than one YAML document.
	ErrMultiDocument = errors.New("values file contains multiple yaml documents")
	// ErrNonStringKey is returned when a mapping uses a non-string key.
	ErrNonStringKey = errors.New("mapping key is not a string")
	// ErrDuplicateKey is returned when a mapping repeats a key.
	ErrDuplicateKey = errors.New("mapping contains duplicate key")
)

const encodeIndent = 2

// Decode parses a single-document YAML byte slice into a value tree.
// An empty document decodes to null. Anchors and aliases are resolved
// during decoding, so the resulting tree has no sharing with the
// document structure.
func Decode(data []byte) (*Value, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node

	err := decoder.Decode(&doc)
	if errors.Is(err, io.EOF) {
		return Null(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// A second document in the stream is a caller mistake; values
	// files hold exactly one tree.
	err = decoder.Decode(&yaml.Node{})
	if err == nil {
		return nil, ErrMultiDocument
	}

	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return Null(), nil
		}

		root = doc.Content[0]
	}

	return fromNode(root)
}

// fromNode converts a resolved yaml.v3 node into a Value.
func fromNode(node *yaml.Node) (*Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.ScalarNode:
		return fromScalarNode(node)
	case yaml.SequenceNode:
		items := make([]*Value, 0, len(node.Content))

		for _, child := range node.Content {
			item, err := fromNode(child)
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}

		return Array(items...), nil
	case yaml.MappingNode:
		return fromMappingNode(node)
	default:
		return nil, fmt.Errorf("parse yaml: unsupported node kind %d at line %d", node.Kind, node.Line)
	}
}

func fromScalarNode(node *yaml.Node) (*Value, error) {
	switch node.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool

		err := node.Decode(&b)
		if err != nil {
			return nil, fmt.Errorf("parse bool at line %d: %w", node.Line, err)
		}

		return Bool(b), nil
	case "!!int":
		var i int64

		err := node.Decode(&i)
		if err != nil {
			return nil, fmt.Errorf("parse int at line %d: %w", node.Line, err)
		}

		return Int(i), nil
	case "!!float":
		var f float64

		err := node.Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("parse float at line %d: %w", node.Line, err)
		}

		return Real(f), nil
	default:
		// Strings, plus scalar tags the value model has no variant
		// for (timestamps, binary); those keep their textual form.
		return String(node.Value), nil
	}
}

func fromMappingNode(node *yaml.Node) (*Value, error) {
	result := Map()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
			return nil, fmt.Errorf("%w: %q at line %d", ErrNonStringKey, keyNode.Value, keyNode.Line)
		}

		if _, exists := result.Get(keyNode.Value); exists {
			return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, keyNode.Value, keyNode.Line)
		}

		child, err := fromNode(node.Content[i+1])
		if err != nil {
			return nil, err
		}

		result.Set(keyNode.Value, child)
	}

	return result, nil
}

// Encode serializes a value tree to YAML with two-space indentation.
// Map keys are emitted in insertion order and the int/real distinction
// survives the round trip.
func Encode(value *Value) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(encodeIndent)

	err := encoder.Encode(toNode(value))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// toNode converts a Value into a yaml.v3 node tree.
func toNode(value *Value) *yaml.Node {
	switch value.Kind() {
	case KindNull:
		return scalarNode("!!null", "null")
	case KindBool:
		return scalarNode("!!bool", strconv.FormatBool(value.Bool()))
	case KindInt:
		return scalarNode("!!int", strconv.FormatInt(value.Int(), 10))
	case KindReal:
		return scalarNode("!!float", formatReal(value.Real()))
	case KindString:
		return scalarNode("!!str", value.Str())
	case KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range value.Items() {
			node.Content = append(node.Content, toNode(item))
		}

		return node
	case KindMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range value.Keys() {
			child, _ := value.Get(key)
			node.Content = append(node.Content, scalarNode("!!str", key), toNode(child))
		}

		return node
	default:
		return scalarNode("!!null", "null")
	}
}

func scalarNode(tag, text string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}

// formatReal renders a float in YAML float syntax. Plain integral
// renderings get a trailing ".0" so the value does not resolve back
// to an int on the next decode.
func formatReal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}

	return text
}
