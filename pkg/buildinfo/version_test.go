package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	got := String()
	for _, want := range []string{"version: v1.2.3", "commit: abc123", "built: 2026-01-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version dev") {
		t.Errorf("Template() = %q", got)
	}
}
