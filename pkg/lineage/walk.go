package lineage

import "iter"

// Walk yields root and every descendant of root in pre-order: a vampire
// before its offspring, offspring in the order they were added. It uses an
// explicit stack, so arbitrarily deep lines do not grow the call stack.
// Walking an unknown ID yields nothing.
//
// The tree must not be mutated while a walk is in progress.
func (t *Tree) Walk(root ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if !t.valid(root) {
			return
		}
		stack := []ID{root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(id) {
				return
			}
			offspring := t.vampires[id].offspring
			for i := len(offspring) - 1; i >= 0; i-- {
				stack = append(stack, offspring[i])
			}
		}
	}
}

// FindByName returns the first vampire named name in a pre-order walk from
// root, or (None, false) if there is none.
//
// Names are the identity of a vampire. If two vampires share a name, only
// the first one in walk order can be found.
func (t *Tree) FindByName(root ID, name string) (ID, bool) {
	for id := range t.Walk(root) {
		if t.vampires[id].Name == name {
			return id, true
		}
	}
	return None, false
}

// Lookup searches every original's line, in creation order, for a vampire
// named name.
func (t *Tree) Lookup(name string) (ID, bool) {
	for _, root := range t.Originals() {
		if id, ok := t.FindByName(root, name); ok {
			return id, true
		}
	}
	return None, false
}

// DescendantCount returns the number of vampires descending from id, not
// counting id itself.
func (t *Tree) DescendantCount(id ID) int {
	if !t.valid(id) {
		return 0
	}
	n := -1
	for range t.Walk(id) {
		n++
	}
	return n
}

// ConvertedAfter returns, in pre-order from root, every vampire whose
// YearConverted is strictly greater than year. The result is empty (nil) when
// none qualify.
func (t *Tree) ConvertedAfter(root ID, year int) []ID {
	var out []ID
	for id := range t.Walk(root) {
		if t.vampires[id].YearConverted > year {
			out = append(out, id)
		}
	}
	return out
}
