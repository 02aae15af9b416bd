package project

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wallcable/pkg/errors"
)

// Format is a project file encoding.
type Format string

// Supported project file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension. Anything that is not
// .yaml, .yml or .json is read as TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return FormatTOML
}

// ParseFormat decodes data in format f.
func ParseFormat(data []byte, f Format) (*Project, error) {
	switch f {
	case FormatYAML:
		return ParseYAML(data)
	case FormatJSON:
		return ParseJSON(data)
	}
	return Parse(data)
}

// ParseYAML decodes a YAML project and assigns IDs to walls without one.
// Unknown keys are rejected.
func ParseYAML(data []byte) (*Project, error) {
	var p Project
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidProject, "empty project")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "decode project")
	}
	p.assignIDs()
	return &p, nil
}

// Marshal encodes p in format f.
func (p *Project) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(p, "", "  ")
	}
	return p.Bytes()
}
