// Package lineage models a genealogy of vampires: every vampire is turned by
// at most one creator and may turn any number of offspring.
//
// # Overview
//
// A [Tree] is an arena. Vampires are created detached with [Tree.Add] and
// joined with [Tree.AddOffspring], which appends to the creator's offspring
// and records the creator as a back-reference by [ID]. There is no removal
// and no reparenting. Generation (distance from the original) is never
// stored; it is recomputed by walking creators.
//
//	t := lineage.New()
//	original := t.Add("Original", 1500)
//	ansel := t.Add("Ansel", 1600)
//	_ = t.AddOffspring(original, ansel)
//
// # Queries
//
//   - [Tree.Generation] and [Tree.IsMoreSeniorThan]: depth and seniority
//   - [Tree.ClosestCommonAncestor]: the deepest shared ancestor of two vampires
//   - [Tree.FindByName], [Tree.DescendantCount], [Tree.ConvertedAfter]:
//     pre-order walks built on [Tree.Walk]
//
// # Closest Common Ancestor
//
// The algorithm needs nothing but creator pointers. It lifts the deeper
// vampire until both are in the same generation, stops if they already meet
// (one was an ancestor of the other), and otherwise walks both up in lockstep
// until they do. Vampires from different originals are reported with
// [ErrDifferentLineage] instead of walking off the top of the tree.
//
// # Identity
//
// Names act as identity: [Tree.FindByName] returns the first match and
// [Tree.ClosestCommonAncestor] treats two vampires with the same name as the
// same vampire. Trees with duplicate names are accepted but those queries
// will not tell the duplicates apart.
//
// # Concurrency
//
// Tree is not safe for concurrent use. Read-only queries may run in parallel
// only if nothing calls [Tree.Add] or [Tree.AddOffspring] at the same time.
package lineage
