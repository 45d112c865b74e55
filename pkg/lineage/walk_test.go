package lineage

import (
	"slices"
	"testing"
)

func names(tr *Tree, ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = tr.Name(id)
	}
	return out
}

func TestWalkPreOrder(t *testing.T) {
	tr, ids := NewCoven()
	got := names(tr, slices.Collect(tr.Walk(ids["Original"])))
	want := []string{"Original", "Ansel", "Sarah", "Elgort", "Andrew", "Peter", "Bart", "Mirela", "Lucas"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkSubtree(t *testing.T) {
	tr, ids := NewCoven()
	got := names(tr, slices.Collect(tr.Walk(ids["Bart"])))
	want := []string{"Bart", "Mirela", "Lucas"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk(Bart) = %v, want %v", got, want)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tr, ids := NewCoven()
	var seen int
	for range tr.Walk(ids["Original"]) {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("seen = %d, want 3", seen)
	}
}

func TestWalkUnknown(t *testing.T) {
	tr := New()
	if got := slices.Collect(tr.Walk(ID(0))); len(got) != 0 {
		t.Errorf("Walk(unknown) = %v, want empty", got)
	}
}

func TestWalkDeepLine(t *testing.T) {
	const depth = 10_000
	tr := New()
	prev := tr.Add("v", 0)
	for i := 1; i < depth; i++ {
		id := tr.Add("v", i)
		_ = tr.AddOffspring(prev, id)
		prev = id
	}
	if got := tr.DescendantCount(ID(0)); got != depth-1 {
		t.Errorf("DescendantCount() = %d, want %d", got, depth-1)
	}
	if got := tr.Generation(prev); got != depth-1 {
		t.Errorf("Generation() = %d, want %d", got, depth-1)
	}
}

func TestFindByName(t *testing.T) {
	tr, ids := NewCoven()

	tests := []struct {
		root   string
		name   string
		want   ID
		wantOK bool
	}{
		{"Original", "Sarah", ids["Sarah"], true},
		{"Original", "Original", ids["Original"], true},
		{"Original", "Lucas", ids["Lucas"], true},
		{"Original", "Nobody", None, false},
		{"Bart", "Sarah", None, false},
		{"Ansel", "Peter", ids["Peter"], true},
	}

	for _, tt := range tests {
		t.Run(tt.root+"/"+tt.name, func(t *testing.T) {
			got, ok := tr.FindByName(ids[tt.root], tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FindByName(%s, %s) = (%d, %v), want (%d, %v)", tt.root, tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tr, ids := NewCoven()
	loner := tr.Add("Loner", 1999)

	if got, ok := tr.Lookup("Mirela"); !ok || got != ids["Mirela"] {
		t.Errorf("Lookup(Mirela) = (%d, %v)", got, ok)
	}
	if got, ok := tr.Lookup("Loner"); !ok || got != loner {
		t.Errorf("Lookup(Loner) = (%d, %v), want (%d, true)", got, ok, loner)
	}
	if _, ok := tr.Lookup("Nobody"); ok {
		t.Error("Lookup(Nobody) should fail")
	}
}

func TestDescendantCount(t *testing.T) {
	tr, ids := NewCoven()

	tests := []struct {
		name string
		want int
	}{
		{"Original", tr.Len() - 1},
		{"Ansel", 4},
		{"Bart", 2},
		{"Sarah", 1},
		{"Lucas", 0},
		{"Peter", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.DescendantCount(ids[tt.name]); got != tt.want {
				t.Errorf("DescendantCount(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}

	if got := tr.DescendantCount(ID(77)); got != 0 {
		t.Errorf("DescendantCount(unknown) = %d, want 0", got)
	}
}

func TestConvertedAfter(t *testing.T) {
	tr, ids := NewCoven()
	root := ids["Original"]

	if got := tr.ConvertedAfter(root, 1980); len(got) != 0 {
		t.Errorf("ConvertedAfter(1980) = %v, want empty", names(tr, got))
	}

	got := names(tr, tr.ConvertedAfter(root, 1800))
	want := []string{"Elgort", "Peter", "Mirela", "Lucas"}
	if !slices.Equal(got, want) {
		t.Errorf("ConvertedAfter(1800) = %v, want %v", got, want)
	}

	// Strictly greater: Sarah (1700) is excluded at 1700.
	if got := names(tr, tr.ConvertedAfter(ids["Sarah"], 1700)); !slices.Equal(got, []string{"Elgort"}) {
		t.Errorf("ConvertedAfter(Sarah, 1700) = %v, want [Elgort]", got)
	}

	young := tr.Add("Young", 2000)
	_ = tr.AddOffspring(ids["Lucas"], young)
	got = names(tr, tr.ConvertedAfter(root, 1980))
	if !slices.Equal(got, []string{"Young"}) {
		t.Errorf("ConvertedAfter(1980) = %v, want [Young]", got)
	}
}
