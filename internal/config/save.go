// Package config provides configuration types, defaults, and persistence for recipebook.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/recipebook/internal/fsutil"
)

// SaveStorage updates the storage section in the config file.
// Only storage.format and storage.path are touched; comments and every other
// key are preserved by editing the yaml.Node tree in place. An empty Path
// removes the path key.
func SaveStorage(configPath string, storage StorageConfig) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode}
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level must be a mapping")
	}
	root := doc.Content[0]

	storageNode := mappingValue(root, "storage")
	if storageNode == nil || storageNode.Kind != yaml.MappingNode {
		storageNode = &yaml.Node{Kind: yaml.MappingNode}
		setMappingValue(root, "storage", storageNode)
	}

	if storage.Format != "" {
		setMappingValue(storageNode, "format", scalar(storage.Format))
	}
	if storage.Path != "" {
		setMappingValue(storageNode, "path", scalar(storage.Path))
	} else {
		deleteMappingKey(storageNode, "path")
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return fsutil.WriteFileAtomic(configPath, buf.Bytes())
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// mappingValue returns the value node for key, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// setMappingValue replaces the value for key, keeping the key node and its
// comments, or appends the pair when the key is absent.
func setMappingValue(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			old := mapping.Content[i+1]
			value.LineComment = old.LineComment
			value.HeadComment = old.HeadComment
			value.FootComment = old.FootComment
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content, scalar(key), value)
}

func deleteMappingKey(mapping *yaml.Node, key string) {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content = append(mapping.Content[:i], mapping.Content[i+2:]...)
			return
		}
	}
}
