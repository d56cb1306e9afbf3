package filestore

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	"gopkg.in/yaml.v3"
)

// codec converts between records and one wire format.
type codec interface {
	name() string
	marshal(records []recipeRecord) ([]byte, error)
	unmarshal(data []byte) ([]recipeRecord, error)
}

// yamlCodec stores the collection as a top-level YAML sequence.
type yamlCodec struct{}

func (yamlCodec) name() string { return "yaml" }

func (yamlCodec) marshal(records []recipeRecord) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) unmarshal(data []byte) ([]recipeRecord, error) {
	var records []recipeRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// recipesDocument is the XML root element.
type recipesDocument struct {
	XMLName xml.Name       `xml:"recipes"`
	Recipes []recipeRecord `xml:"recipe"`
}

// xmlCodec stores the collection as <recipes><recipe>...</recipe></recipes>.
type xmlCodec struct{}

func (xmlCodec) name() string { return "xml" }

func (xmlCodec) marshal(records []recipeRecord) ([]byte, error) {
	out, err := xml.MarshalIndent(recipesDocument{Recipes: records}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

func (xmlCodec) unmarshal(data []byte) ([]recipeRecord, error) {
	var doc recipesDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Recipes, nil
}

// jsonCodec stores the collection as an indented JSON array.
type jsonCodec struct{}

func (jsonCodec) name() string { return "json" }

func (jsonCodec) marshal(records []recipeRecord) ([]byte, error) {
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func (jsonCodec) unmarshal(data []byte) ([]recipeRecord, error) {
	var records []recipeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
