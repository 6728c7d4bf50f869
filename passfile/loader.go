// Package passfile loads pass descriptor files. JSON is the wire format;
// YAML is accepted as an authoring convenience and is converted to JSON
// before passing through the same strict codec, so both carriers enforce
// identical shape rules.
package passfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantmill/passkit/pass"
)

// Format identifies a descriptor file carrier syntax.
type Format int

const (
	// FormatJSON is the wire format.
	FormatJSON Format = iota
	// FormatYAML is the authoring format; converted to JSON before decode.
	FormatYAML
)

// Loader reads descriptor files with a configurable decoder. The zero
// value uses the strict defaults.
type Loader struct {
	Decoder pass.Decoder
}

// LoadFile reads and decodes the descriptor at path. The carrier syntax
// is chosen by extension: .yaml/.yml parse as YAML, everything else as
// JSON.
func (l *Loader) LoadFile(path string) (pass.Pass, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open descriptor: %w", err)
	}
	defer f.Close()
	return l.Load(f, formatForPath(path))
}

// Load reads and decodes a descriptor from r in the given format.
func (l *Loader) Load(r io.Reader, format Format) (pass.Pass, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	if format == FormatYAML {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	}
	return l.Decoder.Decode(data)
}

// LoadFile reads and decodes the descriptor at path with the default
// strict decoder.
func LoadFile(path string) (pass.Pass, error) {
	return (&Loader{}).LoadFile(path)
}

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// yamlToJSON re-expresses a YAML document as JSON. yaml.v3 decodes
// string-keyed mappings into map[string]any, which json.Marshal accepts
// directly.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	return b, nil
}
