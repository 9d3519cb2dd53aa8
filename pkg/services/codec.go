package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"shici/pkg/json"
	"shici/pkg/models"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts json, yaml/yml and toml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// ResolveFormat returns the named format, or the one implied by path when
// name is blank.
func ResolveFormat(name, path string) (Format, error) {
	if strings.TrimSpace(name) == "" {
		return FormatFromPath(path), nil
	}
	return ParseFormat(name)
}

// FormatFromPath picks a format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatJSON
	}
	return f
}

// TOML has no top-level arrays, so poems live under a "poems" table array.
type tomlDocument struct {
	Poems []models.Poem `toml:"poems"`
}

// EncodePoems serializes poems. JSON output uses two-space indentation,
// keeps non-ASCII text literal and has no trailing newline.
func EncodePoems(poems []models.Poem, format Format) ([]byte, error) {
	if poems == nil {
		poems = []models.Poem{}
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		return json.MarshalPretty(poems)
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(poems); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(tomlDocument{Poems: poems}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}

// DecodePoems reads back a document written by EncodePoems.
func DecodePoems(data []byte, format Format) ([]models.Poem, error) {
	var poems []models.Poem
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &poems); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &poems); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		poems = doc.Poems
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if poems == nil {
		poems = []models.Poem{}
	}
	return poems, nil
}
