package samples

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"corrosion-rate/core/types"
	"corrosion-rate/internal/errors"
)

// document is the shared YAML/JSON layout: a top-level samples list
type document struct {
	Samples []*types.Sample `json:"samples" yaml:"samples"`
}

// entries returns the decoded samples. A null list entry decodes to a nil
// pointer and is rejected.
func (d *document) entries(path string) ([]*types.Sample, error) {
	for i, s := range d.Samples {
		if s == nil {
			return nil, errors.Parsing("empty sample entry", nil).
				WithContext("path", path).
				WithContext("index", i)
		}
	}
	return d.Samples, nil
}

// YAMLLoader reads a samples list from .yaml/.yml files. Unknown keys are
// rejected so a misspelled parameter is not silently dropped.
type YAMLLoader struct{}

// NewYAMLLoader creates a YAML loader
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Name returns the loader name
func (l *YAMLLoader) Name() string {
	return "yaml"
}

// CanLoad handles .yaml and .yml files
func (l *YAMLLoader) CanLoad(path string) bool {
	return hasExt(path, ".yaml", ".yml")
}

// Load parses path
func (l *YAMLLoader) Load(ctx context.Context, path string) ([]*types.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read sample file", err).WithContext("path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Parsing("invalid YAML sample file", err).WithContext("path", path)
	}
	return doc.entries(path)
}

// JSONLoader reads the same layout as YAMLLoader from .json files
type JSONLoader struct{}

// NewJSONLoader creates a JSON loader
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{}
}

// Name returns the loader name
func (l *JSONLoader) Name() string {
	return "json"
}

// CanLoad handles .json files
func (l *JSONLoader) CanLoad(path string) bool {
	return hasExt(path, ".json")
}

// Load parses path
func (l *JSONLoader) Load(ctx context.Context, path string) ([]*types.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read sample file", err).WithContext("path", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Parsing("invalid JSON sample file", err).WithContext("path", path)
	}
	return doc.entries(path)
}
