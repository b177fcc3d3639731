package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// YamlLoader loads the catalog from a YAML file.
// Unknown fields are rejected, so typos do not silently drop configuration.
type YamlLoader struct {
	Path string
}

var _ Loader = (*YamlLoader)(nil)

func (l *YamlLoader) Load(ctx context.Context) (*Config, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", l.Path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var out Config
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode config %q: %w", l.Path, err)
	}
	return &out, nil
}

// TomlLoader loads the catalog from a TOML file.
type TomlLoader struct {
	Path string
}

var _ Loader = (*TomlLoader)(nil)

func (l *TomlLoader) Load(ctx context.Context) (*Config, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", l.Path, err)
	}
	var out Config
	md, err := toml.Decode(string(data), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %q: %w", l.Path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to decode config %q: unknown fields %v", l.Path, undecoded)
	}
	return &out, nil
}

// LoaderForPath picks the file loader by extension: .toml files are TOML, everything else YAML.
func LoaderForPath(path string) Loader {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return &TomlLoader{Path: path}
	}
	return &YamlLoader{Path: path}
}
