package lineage

// NewCoven builds a small sample tree rooted at "Original":
//
//	Original (1500)
//	├── Ansel (1600)
//	│   ├── Sarah (1700)
//	│   │   └── Elgort (1810)
//	│   └── Andrew (1750)
//	│       └── Peter (1890)
//	└── Bart (1650)
//	    └── Mirela (1820)
//	        └── Lucas (1950)
//
// No vampire in the coven was converted after 1980. The returned map indexes
// the IDs by name.
func NewCoven() (*Tree, map[string]ID) {
	t := New()
	ids := make(map[string]ID)
	add := func(creator, name string, year int) {
		id := t.Add(name, year)
		ids[name] = id
		if creator != "" {
			// Every creator is added before its offspring, so this cannot fail.
			_ = t.AddOffspring(ids[creator], id)
		}
	}

	add("", "Original", 1500)
	add("Original", "Ansel", 1600)
	add("Original", "Bart", 1650)
	add("Ansel", "Sarah", 1700)
	add("Ansel", "Andrew", 1750)
	add("Sarah", "Elgort", 1810)
	add("Andrew", "Peter", 1890)
	add("Bart", "Mirela", 1820)
	add("Mirela", "Lucas", 1950)

	return t, ids
}
