// Package yaml loads the known documentation versions from a JSON or YAML
// file, keeping the order in which they are declared.
package yaml

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/docset"
	"gopkg.in/yaml.v3"
)

// DefaultVersionsKey is the top-level key holding the versions in package.json.
const DefaultVersionsKey = "nodeVersions"

// LoadVersions reads the versions declared under key in the file at path.
// Returns ENOTFOUND if the file does not exist.
func LoadVersions(path, key string) (docset.Versions, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, docset.Errorf(docset.ENOTFOUND, "versions config %q does not exist", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read versions config %q: %w", path, err)
	}
	return ParseVersions(data, key)
}

// ParseVersions decodes an ordered list of versions from JSON or YAML data.
//
// When key is set, the value under that top-level key is used; otherwise the
// whole document is. A mapping yields its keys in declaration order, a
// sequence yields its items. Anything else, or an empty list, returns EINVALID.
//
// Input starting with '{' or '[' is read as JSON first, since JSON escapes
// such as \/ are not valid YAML. Input that is not valid JSON is read as YAML.
func ParseVersions(data []byte, key string) (docset.Versions, error) {
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		versions, err := parseJSONVersions(trimmed, key)
		var e *docset.Error
		if err == nil || errors.As(err, &e) {
			return versions, err
		}
	}
	return parseYAMLVersions(data, key)
}

func parseYAMLVersions(data []byte, key string) (docset.Versions, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, docset.Errorf(docset.EINVALID, "invalid versions config: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, docset.Errorf(docset.EINVALID, "versions config is empty")
	}

	node := doc.Content[0]
	if key != "" {
		node = lookup(node, key)
		if node == nil {
			return nil, docset.Errorf(docset.EINVALID, "versions config has no %q key", key)
		}
	}

	var versions docset.Versions
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			versions = append(versions, node.Content[i].Value)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, docset.Errorf(docset.EINVALID, "version at line %d is not a scalar", item.Line)
			}
			versions = append(versions, item.Value)
		}
	default:
		return nil, docset.Errorf(docset.EINVALID, "versions must be a mapping or a sequence")
	}

	if len(versions) == 0 {
		return nil, docset.Errorf(docset.EINVALID, "versions config declares no versions")
	}
	return versions, nil
}

// lookup returns the value node for key in a mapping node, or nil.
func lookup(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// parseJSONVersions walks JSON tokens so mapping key order is kept.
// Syntax errors are returned unwrapped; everything else is an EINVALID error.
func parseJSONVersions(data []byte, key string) (docset.Versions, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if key != "" {
		found, err := seekJSONKey(dec, key)
		if err != nil {
			return nil, err
		} else if !found {
			return nil, docset.Errorf(docset.EINVALID, "versions config has no %q key", key)
		}
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	var versions docset.Versions
	switch tok {
	case json.Delim('{'):
		for dec.More() {
			k, err := dec.Token()
			if err != nil {
				return nil, err
			}
			versions = append(versions, k.(string))
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
	case json.Delim('['):
		for dec.More() {
			item, err := dec.Token()
			if err != nil {
				return nil, err
			}
			switch v := item.(type) {
			case string:
				versions = append(versions, v)
			case json.Number:
				versions = append(versions, v.String())
			default:
				return nil, docset.Errorf(docset.EINVALID, "version %v is not a string or number", item)
			}
		}
	default:
		return nil, docset.Errorf(docset.EINVALID, "versions must be a mapping or a sequence")
	}

	if len(versions) == 0 {
		return nil, docset.Errorf(docset.EINVALID, "versions config declares no versions")
	}
	return versions, nil
}

// seekJSONKey advances dec to the value of key in the top-level object.
func seekJSONKey(dec *json.Decoder, key string) (bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return false, err
	}
	if tok != json.Delim('{') {
		return false, nil
	}
	for dec.More() {
		k, err := dec.Token()
		if err != nil {
			return false, err
		}
		if k == key {
			return true, nil
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return false, err
		}
	}
	return false, nil
}
