package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"FundPicker/internal/model"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout. A bare list of funds is accepted too.
type catalogFile struct {
	Funds []model.Fund `json:"funds" yaml:"funds"`
}

// FileSource reads a YAML or JSON catalog file.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource { return &FileSource{Path: path} }

func (f *FileSource) Name() string { return "file:" + f.Path }

// Load decodes by extension; unknown extensions try YAML, then JSON.
func (f *FileSource) Load() ([]model.Fund, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	}
	funds, err := decodeYAML(data)
	if err != nil {
		if funds, jerr := decodeJSON(data); jerr == nil {
			return funds, nil
		}
		return nil, fmt.Errorf("parse catalog (tried YAML and JSON): %w", err)
	}
	return funds, nil
}

func decodeYAML(data []byte) ([]model.Fund, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var funds []model.Fund
		if err := root.Decode(&funds); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		return funds, nil
	}
	var cf catalogFile
	if err := root.Decode(&cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return cf.Funds, nil
}

func decodeJSON(data []byte) ([]model.Fund, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var funds []model.Fund
		if err := json.Unmarshal(data, &funds); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		return funds, nil
	}
	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return cf.Funds, nil
}

// WriteFile saves funds to path, as JSON for a .json extension and YAML otherwise.
func WriteFile(path string, funds []model.Fund) error {
	cf := catalogFile{Funds: funds}
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(cf, "", "  ")
	} else {
		data, err = yaml.Marshal(cf)
	}
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
