package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/bloodline/pkg/errors"
)

// Format is a tree file encoding.
type Format string

// Supported tree file formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

var formatFromExt = map[string]Format{
	".json": FormatJSON,
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// FormatFromPath picks a format from the file extension (case-insensitive).
// Returns an UNSUPPORTED error for any other extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatFromExt[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported tree file extension %q (want .json, .toml, .yaml or .yml)", ext)
}

// document is the on-disk shape shared by every format. A record's Creator is
// the index of another record in Vampires; originals omit it. Offspring, when
// present, lists the record's offspring in the order they were turned.
type document struct {
	Vampires []record `json:"vampires" toml:"vampire" yaml:"vampires"`
}

type record struct {
	Name      string `json:"name" toml:"name" yaml:"name"`
	Year      int    `json:"year" toml:"year" yaml:"year"`
	Creator   *int  `json:"creator,omitempty" toml:"creator,omitempty" yaml:"creator,omitempty"`
	Offspring []int `json:"offspring,omitempty" toml:"offspring,omitempty" yaml:"offspring,omitempty,flow"`
}
