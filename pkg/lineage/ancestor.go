package lineage

// ClosestCommonAncestor returns the deepest vampire that is an ancestor of,
// or the same as, both a and b. When one vampire is a direct ancestor of the
// other, that ancestor is returned rather than its creator.
//
// Two vampires sharing a name are treated as the same vampire and a is
// returned without walking the tree; see [Tree.FindByName] for why names act
// as identity.
//
// Returns ErrUnknownVampire if either ID is not in the tree, or
// ErrDifferentLineage if a and b descend from different originals.
// Runs in O(generation(a) + generation(b)).
func (t *Tree) ClosestCommonAncestor(a, b ID) (ID, error) {
	if !t.valid(a) || !t.valid(b) {
		return None, ErrUnknownVampire
	}
	if t.vampires[a].Name == t.vampires[b].Name {
		return a, nil
	}

	rootA, genA := t.rootAndGeneration(a)
	rootB, genB := t.rootAndGeneration(b)
	if rootA != rootB {
		return None, ErrDifferentLineage
	}
	if genA == 0 {
		return a, nil
	}
	if genB == 0 {
		return b, nil
	}

	for ; genA > genB; genA-- {
		a = t.vampires[a].creator
	}
	for ; genB > genA; genB-- {
		b = t.vampires[b].creator
	}

	// Equal generations: if the shallower input was on the deeper one's
	// chain, a == b already and the loop does not run.
	for a != b {
		a = t.vampires[a].creator
		b = t.vampires[b].creator
	}
	return a, nil
}
