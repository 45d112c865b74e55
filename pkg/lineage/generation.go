package lineage

// Generation returns the number of creator hops between id and its original.
// Originals are generation 0. The value is derived on every call by walking
// creators, so it is O(generation). Unknown IDs report 0.
func (t *Tree) Generation(id ID) int {
	_, gen := t.rootAndGeneration(id)
	return gen
}

// IsMoreSeniorThan reports whether a is strictly closer to its original than
// b. Vampires of the same generation are not senior to each other, so the
// relation is irreflexive and only a strict partial order.
func (t *Tree) IsMoreSeniorThan(a, b ID) bool {
	if !t.valid(a) || !t.valid(b) {
		return false
	}
	return t.Generation(a) < t.Generation(b)
}

// rootAndGeneration walks creators from id to the original, returning the
// original and the hop count. Unknown IDs yield (None, 0).
func (t *Tree) rootAndGeneration(id ID) (ID, int) {
	if !t.valid(id) {
		return None, 0
	}
	gen := 0
	for t.vampires[id].creator != None {
		id = t.vampires[id].creator
		gen++
	}
	return id, gen
}
