package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/bloodline/pkg/errors"
	"github.com/matzehuels/bloodline/pkg/lineage"
)

// Read decodes a tree file in format f from r.
//
// Records are added to the tree in file order, so a record's index in the
// file is its [lineage.ID]. Links are wired afterwards and may therefore
// reference records that appear later in the file: offspring lists first, in
// the order given, then any record whose creator is set but which no
// offspring list names, appended to its creator in file order.
//
// Read returns an INVALID_FORMAT error if the input cannot be decoded, a
// name is invalid, an index is out of range, an offspring list disagrees with
// a creator, or wiring fails
// (a vampire turning itself, or a loop of creators). The underlying
// [lineage] sentinel error is preserved in the chain. Read does not close r.
func Read(r io.Reader, f Format) (*lineage.Tree, error) {
	var doc document
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported tree format %q", f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", f)
	}
	return build(doc)
}

// ReadJSON decodes a JSON tree file from r. See [Read].
func ReadJSON(r io.Reader) (*lineage.Tree, error) { return Read(r, FormatJSON) }

// Import reads the tree file at path, choosing the format from its extension.
func Import(path string) (*lineage.Tree, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer file.Close()

	t, err := Read(file, f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return t, nil
}

func build(doc document) (*lineage.Tree, error) {
	t := lineage.New()
	for i, rec := range doc.Vampires {
		if err := errors.ValidateName(rec.Name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "vampire %d", i)
		}
		t.Add(rec.Name, rec.Year)
	}

	// Offspring lists fix sibling order, so they are wired first.
	for i, rec := range doc.Vampires {
		for _, c := range rec.Offspring {
			if c < 0 || c >= len(doc.Vampires) {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "vampire %d (%s): offspring index %d out of range", i, rec.Name, c)
			}
			if cr := doc.Vampires[c].Creator; cr != nil && *cr != i {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "vampire %d (%s): listed as offspring of %d but creator is %d", c, doc.Vampires[c].Name, i, *cr)
			}
			if err := t.AddOffspring(lineage.ID(i), lineage.ID(c)); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "vampire %d (%s): offspring %d", i, rec.Name, c)
			}
		}
	}

	for i, rec := range doc.Vampires {
		if rec.Creator == nil {
			continue
		}
		c := *rec.Creator
		if c < 0 || c >= len(doc.Vampires) {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "vampire %d (%s): creator index %d out of range", i, rec.Name, c)
		}
		if t.Creator(lineage.ID(i)) == lineage.ID(c) {
			continue
		}
		if err := t.AddOffspring(lineage.ID(c), lineage.ID(i)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "vampire %d (%s): creator %d", i, rec.Name, c)
		}
	}
	return t, nil
}
