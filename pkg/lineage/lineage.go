package lineage

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownVampire is returned when an ID does not refer to a vampire
	// in the tree's arena.
	ErrUnknownVampire = errors.New("unknown vampire")

	// ErrSelfOffspring is returned by [Tree.AddOffspring] when a vampire is
	// added as its own offspring.
	ErrSelfOffspring = errors.New("vampire cannot be its own offspring")

	// ErrAlreadyTurned is returned by [Tree.AddOffspring] when the offspring
	// already has a creator. Vampires are never reparented.
	ErrAlreadyTurned = errors.New("vampire already has a creator")

	// ErrCycle is returned by [Tree.AddOffspring] when the offspring is an
	// ancestor of the creator, so attaching it would close a loop.
	ErrCycle = errors.New("offspring is an ancestor of its creator")

	// ErrDifferentLineage is returned by [Tree.ClosestCommonAncestor] when
	// the two vampires descend from different originals.
	ErrDifferentLineage = errors.New("vampires belong to different lineages")
)

// ID identifies a vampire within a [Tree]. IDs are dense indices assigned in
// creation order, starting at 0.
type ID int

// None is the ID returned when no vampire applies: the creator of an
// original, or a failed lookup.
const None ID = -1

// Vampire is a single entry in the tree. Name is the identity label used for
// lookups and for the "same vampire" check in [Tree.ClosestCommonAncestor].
type Vampire struct {
	Name          string
	YearConverted int

	creator   ID
	offspring []ID
}

// Creator returns the ID of the vampire that turned v, or None for an
// original.
func (v Vampire) Creator() ID { return v.creator }

// IsOriginal reports whether v has no creator.
func (v Vampire) IsOriginal() bool { return v.creator == None }

// Tree is an arena of vampires. Offspring lists own the edges; creators are
// plain back-references by ID.
//
// The zero value is an empty tree ready to use. Tree is not safe for
// concurrent use.
type Tree struct {
	vampires []Vampire
}

// New creates an empty tree.
func New() *Tree { return &Tree{} }

// Add creates a detached vampire and returns its ID. The vampire is an
// original until it is passed as offspring to [Tree.AddOffspring].
func (t *Tree) Add(name string, yearConverted int) ID {
	t.vampires = append(t.vampires, Vampire{
		Name:          name,
		YearConverted: yearConverted,
		creator:       None,
	})
	return ID(len(t.vampires) - 1)
}

// AddOffspring appends offspring to creator's offspring and sets creator as
// its creator. This is the only mutation the tree supports.
//
// Returns ErrUnknownVampire if either ID is not in the tree, ErrSelfOffspring
// if both are the same vampire, ErrAlreadyTurned if offspring already has a
// creator, or ErrCycle if offspring is an ancestor of creator.
func (t *Tree) AddOffspring(creator, offspring ID) error {
	if !t.valid(creator) || !t.valid(offspring) {
		return ErrUnknownVampire
	}
	if creator == offspring {
		return ErrSelfOffspring
	}
	if t.vampires[offspring].creator != None {
		return ErrAlreadyTurned
	}
	if t.Root(creator) == offspring {
		return ErrCycle
	}
	t.vampires[creator].offspring = append(t.vampires[creator].offspring, offspring)
	t.vampires[offspring].creator = creator
	return nil
}

// Vampire returns a copy of the vampire with the given ID and true, or the
// zero Vampire and false if the ID is unknown.
func (t *Tree) Vampire(id ID) (Vampire, bool) {
	if !t.valid(id) {
		return Vampire{}, false
	}
	return t.vampires[id], true
}

// Name returns the vampire's name, or "" if the ID is unknown.
func (t *Tree) Name(id ID) string {
	if !t.valid(id) {
		return ""
	}
	return t.vampires[id].Name
}

// Creator returns the creator of id, or None for originals and unknown IDs.
func (t *Tree) Creator(id ID) ID {
	if !t.valid(id) {
		return None
	}
	return t.vampires[id].creator
}

// Offspring returns a copy of id's offspring in the order they were added.
func (t *Tree) Offspring(id ID) []ID {
	if !t.valid(id) {
		return nil
	}
	return slices.Clone(t.vampires[id].offspring)
}

// NumberOfOffspring returns how many vampires id turned directly.
// Returns 0 if the ID is unknown.
func (t *Tree) NumberOfOffspring(id ID) int {
	if !t.valid(id) {
		return 0
	}
	return len(t.vampires[id].offspring)
}

// Len returns the number of vampires in the arena.
func (t *Tree) Len() int { return len(t.vampires) }

// Originals returns the IDs of all vampires without a creator, in creation
// order. A fully built tree has exactly one.
func (t *Tree) Originals() []ID {
	var roots []ID
	for i, v := range t.vampires {
		if v.creator == None {
			roots = append(roots, ID(i))
		}
	}
	return roots
}

// Root returns the original that id descends from (id itself for an
// original), or None if the ID is unknown.
func (t *Tree) Root(id ID) ID {
	root, _ := t.rootAndGeneration(id)
	return root
}

func (t *Tree) valid(id ID) bool {
	return id >= 0 && int(id) < len(t.vampires)
}
