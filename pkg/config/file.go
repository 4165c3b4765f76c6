package config

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
)

// Defaults is the YAML document shape for declarative configuration:
//
//	mode: editing
//	middlewares: [trim, sanitize]
//
// Middlewares are symbolic names resolved against the registered
// middlewares when a render call runs.
type Defaults struct {
	Mode        string   `yaml:"mode"`
	Middlewares []string `yaml:"middlewares"`
}

// ParseDefaults decodes a YAML defaults document.
func ParseDefaults(data []byte) (Defaults, error) {
	var doc Defaults
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Defaults{}, fmt.Errorf("config: parse defaults: %w", err)
	}
	return doc, nil
}

// LoadDefaultsFS reads and decodes a YAML defaults document from fsys.
func LoadDefaultsFS(fsys fs.FS, path string) (Defaults, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Defaults{}, fmt.Errorf("config: read defaults %s: %w", path, err)
	}
	return ParseDefaults(data)
}

// ApplyDefaults folds the document into the configuration's field options.
// Middleware names must satisfy the identifier rule.
func (c *Configuration) ApplyDefaults(doc Defaults) error {
	if c.FieldOptions == nil {
		c.FieldOptions = NewOptions()
	}
	if mode := strings.TrimSpace(doc.Mode); mode != "" {
		c.FieldOptions.Mode = field.ParseMode(mode)
	}
	for _, raw := range doc.Middlewares {
		name := field.Name(strings.TrimSpace(raw))
		if !name.Valid() {
			return &fielderr.InvalidNameError{Name: name.String()}
		}
		c.FieldOptions.Middlewares = append(c.FieldOptions.Middlewares, name)
	}
	return nil
}
