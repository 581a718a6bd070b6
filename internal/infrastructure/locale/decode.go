package locale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"

	"localeaudit/internal/domain/entities"
)

// The decoders below walk the documents token by token instead of unmarshalling
// into maps, so that keys come out in file order. Arrays become branches keyed by
// index. Scalars keep their literal text and their kind; nulls have no text.

// DecodeTOML parses a TOML document. Tables and dotted keys become branches.
func DecodeTOML(data []byte) (*entities.Tree, error) {
	root := entities.NewTree()
	current := root
	arrays := make(map[*entities.Tree]bool)

	var p unstable.Parser
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			current = tomlTable(root, tomlKey(expr.Key()), arrays)
		case unstable.ArrayTable:
			path := tomlKey(expr.Key())
			array := tomlTable(root, path[:len(path)-1], arrays).Branch(path[len(path)-1])
			arrays[array] = true
			current = array.Branch(strconv.Itoa(array.Len()))
		case unstable.KeyValue:
			path := tomlKey(expr.Key())
			setTOMLValue(current.Branch(path[:len(path)-1]...), path[len(path)-1], expr.Value())
		}
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return root, nil
}

// tomlTable walks path from root. A segment naming an array of tables resolves
// to its last element, so [a.b] after [[a]] lands in a.<last>.b.
func tomlTable(root *entities.Tree, path []string, arrays map[*entities.Tree]bool) *entities.Tree {
	current := root
	for _, key := range path {
		current = current.Branch(key)
		if arrays[current] && current.Len() > 0 {
			current = current.Branch(strconv.Itoa(current.Len() - 1))
		}
	}
	return current
}

func tomlKey(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func setTOMLValue(tree *entities.Tree, key string, v *unstable.Node) {
	switch v.Kind {
	case unstable.InlineTable:
		child := tree.Branch(key)
		it := v.Children()
		for it.Next() {
			kv := it.Node()
			path := tomlKey(kv.Key())
			setTOMLValue(child.Branch(path[:len(path)-1]...), path[len(path)-1], kv.Value())
		}
	case unstable.Array:
		child := tree.Branch(key)
		it := v.Children()
		for i := 0; it.Next(); i++ {
			setTOMLValue(child, strconv.Itoa(i), it.Node())
		}
	case unstable.Integer, unstable.Float:
		tree.SetLeaf(key, entities.Leaf{Value: string(v.Data), Kind: entities.KindNumber})
	case unstable.Bool:
		tree.SetLeaf(key, entities.Leaf{Value: string(v.Data), Kind: entities.KindBool})
	default:
		tree.Set(key, string(v.Data))
	}
}

// DecodeJSON parses a JSON document whose top level is an object.
func DecodeJSON(data []byte) (*entities.Tree, error) {
	root := entities.NewTree()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return root, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse json: top level must be an object")
	}
	if err := readJSONObject(dec, root); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return root, nil
}

func readJSONObject(dec *json.Decoder, tree *entities.Tree) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		if err := readJSONValue(dec, tree, key); err != nil {
			return err
		}
	}
	_, err := dec.Token()
	return err
}

func readJSONValue(dec *json.Decoder, tree *entities.Tree, key string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case json.Delim:
		child := tree.Branch(key)
		if v == '{' {
			return readJSONObject(dec, child)
		}
		for i := 0; dec.More(); i++ {
			if err := readJSONValue(dec, child, strconv.Itoa(i)); err != nil {
				return err
			}
		}
		_, err := dec.Token()
		return err
	case string:
		tree.Set(key, v)
	case json.Number:
		tree.SetLeaf(key, entities.Leaf{Value: v.String(), Kind: entities.KindNumber})
	case bool:
		tree.SetLeaf(key, entities.Leaf{Value: strconv.FormatBool(v), Kind: entities.KindBool})
	case nil:
		tree.SetLeaf(key, entities.Leaf{Kind: entities.KindNull})
	}
	return nil
}

// DecodeYAML parses a YAML document whose top level is a mapping.
func DecodeYAML(data []byte) (*entities.Tree, error) {
	root := entities.NewTree()
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return root, nil
	}
	top := doc.Content[0]
	if top.ShortTag() == "!!null" {
		return root, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse yaml: top level must be a mapping (line %d)", top.Line)
	}
	setYAMLMapping(root, top)
	return root, nil
}

func setYAMLMapping(tree *entities.Tree, n *yaml.Node) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		setYAMLValue(tree, n.Content[i].Value, n.Content[i+1])
	}
}

func setYAMLValue(tree *entities.Tree, key string, n *yaml.Node) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		setYAMLMapping(tree.Branch(key), n)
	case yaml.SequenceNode:
		child := tree.Branch(key)
		for i, item := range n.Content {
			setYAMLValue(child, strconv.Itoa(i), item)
		}
	default:
		tree.SetLeaf(key, yamlLeaf(n))
	}
}

func yamlLeaf(n *yaml.Node) entities.Leaf {
	switch n.ShortTag() {
	case "!!null":
		return entities.Leaf{Kind: entities.KindNull}
	case "!!bool":
		return entities.Leaf{Value: n.Value, Kind: entities.KindBool}
	case "!!int", "!!float":
		return entities.Leaf{Value: n.Value, Kind: entities.KindNumber}
	default:
		return entities.Leaf{Value: n.Value}
	}
}
