package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/bloodline/pkg/errors"
	"github.com/matzehuels/bloodline/pkg/lineage"
)

// Write encodes t in format f and writes it to w. Vampires are written in ID
// order with their creator and their offspring in turning order, so [Read]
// rebuilds the same tree: identical IDs and identical sibling order.
func Write(t *lineage.Tree, w io.Writer, f Format) error {
	doc := toDocument(t)

	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported tree format %q", f)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", f)
	}
	return nil
}

// WriteJSON encodes t as indented JSON. See [Write].
func WriteJSON(t *lineage.Tree, w io.Writer) error { return Write(t, w, FormatJSON) }

// Export writes t to the file at path, choosing the format from its
// extension. The file is created or truncated.
func Export(t *lineage.Tree, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer file.Close()
	return Write(t, file, f)
}

func toDocument(t *lineage.Tree) document {
	doc := document{Vampires: make([]record, t.Len())}
	for i := range t.Len() {
		v, _ := t.Vampire(lineage.ID(i))
		rec := record{Name: v.Name, Year: v.YearConverted}
		if c := v.Creator(); c != lineage.None {
			idx := int(c)
			rec.Creator = &idx
		}
		for _, child := range t.Offspring(lineage.ID(i)) {
			rec.Offspring = append(rec.Offspring, int(child))
		}
		doc.Vampires[i] = rec
	}
	return doc
}
