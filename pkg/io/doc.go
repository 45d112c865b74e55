// Package io reads and writes vampire trees as JSON, TOML, or YAML files.
//
// # Format
//
// Every encoding stores a flat list of vampires. A vampire's creator is the
// index of another entry in the same list; originals have no creator:
//
//	{
//	  "vampires": [
//	    {"name": "Original", "year": 1500},
//	    {"name": "Ansel", "year": 1600, "creator": 0},
//	    {"name": "Sarah", "year": 1700, "creator": 1}
//	  ]
//	}
//
// The same tree in TOML uses an array of tables:
//
//	[[vampire]]
//	name = "Original"
//	year = 1500
//
//	[[vampire]]
//	name = "Ansel"
//	year = 1600
//	creator = 0
//
// and in YAML:
//
//	vampires:
//	  - name: Original
//	    year: 1500
//	  - name: Ansel
//	    year: 1600
//	    creator: 0
//
// Entries keep their list index as their [lineage.ID] on import. An entry may
// also carry an "offspring" list of indices in the order they were turned;
// [Export] always writes it, so sibling order survives a round trip through
// [Export] and [Import]. Hand-written files can leave it out, in which case
// offspring are attached to their creator in list order.
//
// # Import and Export
//
// [Import] and [Export] pick the format from the file extension (.json,
// .toml, .yaml, .yml). [Read] and [Write] work on any reader or writer with
// an explicit [Format].
//
//	t, err := io.Import("coven.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.Export(t, "coven.json")
//
// Errors are structured [errors.Error] values: INVALID_FORMAT for bad
// content, FILE_NOT_FOUND for a missing file, UNSUPPORTED for an unknown
// extension.
//
// [lineage.ID]: github.com/matzehuels/bloodline/pkg/lineage.ID
// [errors.Error]: github.com/matzehuels/bloodline/pkg/errors.Error
package io
