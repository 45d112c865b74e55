package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/bloodline/pkg/errors"
)

// execute runs the root command with args and returns what it wrote to
// stdout. The environment fallback is cleared unless a test sets it itself.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if _, ok := os.LookupEnv(envTree); !ok {
		t.Setenv(envTree, "")
	}

	var logs, out, errOut bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func mustNotContain(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, s := range unwanted {
		if strings.Contains(out, s) {
			t.Errorf("output should not contain %q:\n%s", s, out)
		}
	}
}

func TestAncestorCommand(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"Sarah", "Andrew", "Ansel"},
		{"Ansel", "Sarah", "Ansel"},
		{"Original", "Lucas", "Original"},
		{"Elgort", "Lucas", "Original"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			out, err := execute(t, "ancestor", tt.a, tt.b)
			if err != nil {
				t.Fatalf("ancestor error: %v", err)
			}
			mustContain(t, out, tt.want)
		})
	}
}

func TestAncestorCommandNotFound(t *testing.T) {
	_, err := execute(t, "cca", "Sarah", "Nobody")
	if !errors.Is(err, errors.ErrCodeVampireNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeVampireNotFound)
	}
}

func TestAncestorCommandDifferentLineage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.json")
	data := `{"vampires": [
		{"name": "Original", "year": 1500},
		{"name": "Ansel", "year": 1600, "creator": 0},
		{"name": "Dracula", "year": 1400},
		{"name": "Bride", "year": 1450, "creator": 2}
	]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "--tree", path, "ancestor", "Ansel", "Bride")
	if !errors.Is(err, errors.ErrCodePrecondition) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodePrecondition)
	}
}

func TestSeniorCommand(t *testing.T) {
	out, err := execute(t, "senior", "Sarah", "Ansel")
	if err != nil {
		t.Fatalf("senior error: %v", err)
	}
	mustContain(t, out, "Ansel", "is more senior than Sarah")

	out, err = execute(t, "senior", "Ansel", "Bart")
	if err != nil {
		t.Fatalf("senior error: %v", err)
	}
	mustContain(t, out, "equally senior", "generation 1")
}

func TestFindCommand(t *testing.T) {
	out, err := execute(t, "find", "Sarah")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	mustContain(t, out, "Sarah", "converted 1700", "generation 2")

	if _, err := execute(t, "find", "Nobody"); !errors.Is(err, errors.ErrCodeVampireNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeVampireNotFound)
	}
	if _, err := execute(t, "find", "bad\nname"); !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidName)
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", "Sarah")
	if err != nil {
		t.Fatalf("info error: %v", err)
	}
	mustContain(t, out, "Sarah", "1700", "Ansel", "descendants")

	out, err = execute(t, "info", "Original")
	if err != nil {
		t.Fatalf("info error: %v", err)
	}
	mustContain(t, out, "none (original)", "8")
}

func TestDescendantsCommand(t *testing.T) {
	out, err := execute(t, "descendants", "Ansel")
	if err != nil {
		t.Fatalf("descendants error: %v", err)
	}
	mustContain(t, out, "Ansel has", "4", "descendants")
}

func TestAfterCommand(t *testing.T) {
	out, err := execute(t, "after", "1980")
	if err != nil {
		t.Fatalf("after error: %v", err)
	}
	mustContain(t, out, "No vampires converted after 1980")

	out, err = execute(t, "after", "1800")
	if err != nil {
		t.Fatalf("after error: %v", err)
	}
	mustContain(t, out, "Elgort", "Peter", "Mirela", "Lucas")
	// Sarah and Andrew only appear as creators, never with their own years.
	mustNotContain(t, out, "1700", "1750")

	out, err = execute(t, "after", "1800", "--from", "Bart")
	if err != nil {
		t.Fatalf("after --from error: %v", err)
	}
	mustContain(t, out, "Mirela", "Lucas")
	mustNotContain(t, out, "Elgort", "Peter")
}

func TestAfterCommandInvalidYear(t *testing.T) {
	_, err := execute(t, "after", "soon")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "show")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	mustContain(t, out, "Original", "Ansel", "Sarah", "Elgort", "Andrew", "Peter", "Bart", "Mirela", "Lucas")

	out, err = execute(t, "show", "--from", "Bart")
	if err != nil {
		t.Fatalf("show --from error: %v", err)
	}
	mustContain(t, out, "Bart", "Mirela", "Lucas")
	mustNotContain(t, out, "Sarah", "Original")
}

func TestShowOrder(t *testing.T) {
	out, err := execute(t, "show")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	order := []string{"Original", "Ansel", "Sarah", "Elgort", "Andrew", "Peter", "Bart", "Mirela", "Lucas"}
	last := -1
	for _, name := range order {
		i := strings.Index(out, name)
		if i < last {
			t.Errorf("%s printed out of family order", name)
		}
		last = i
	}
}

func TestSampleAndTreeFlag(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"coven.json", "coven.toml", "coven.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			out, err := execute(t, "sample", "-o", path)
			if err != nil {
				t.Fatalf("sample error: %v", err)
			}
			mustContain(t, out, "Wrote 9 vampires", path)

			out, err = execute(t, "--tree", path, "ancestor", "Sarah", "Andrew")
			if err != nil {
				t.Fatalf("ancestor error: %v", err)
			}
			mustContain(t, out, "Ansel")
		})
	}
}

func TestTreeFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	data := "vampires:\n  - name: Vlad\n    year: 1450\n  - name: Mina\n    year: 1897\n    creator: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envTree, path)

	out, err := execute(t, "find", "Mina")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	mustContain(t, out, "Mina", "generation 1")

	if _, err := execute(t, "find", "Sarah"); !errors.Is(err, errors.ErrCodeVampireNotFound) {
		t.Error("the sample coven should not be used when " + envTree + " is set")
	}
}

func TestTreeFlagMissingFile(t *testing.T) {
	_, err := execute(t, "--tree", filepath.Join(t.TempDir(), "missing.json"), "show")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestRenderCommandDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coven.dot")
	out, err := execute(t, "render", "-o", path, "--detailed", "--highlight", "Sarah,Andrew", "--ancestor")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	mustContain(t, out, "Rendered 9 vampires", path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	dot := string(data)
	mustContain(t, dot, "digraph G", "generation: 2")
	if got := strings.Count(dot, "#c0392b"); got != 3 {
		t.Errorf("highlighted nodes = %d, want 3", got)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"Format", []string{"render", "-o", filepath.Join(dir, "x.png")}, errors.ErrCodeUnsupported},
		{"AncestorNeedsTwo", []string{"render", "-o", filepath.Join(dir, "x.dot"), "--highlight", "Sarah", "--ancestor"}, errors.ErrCodeInvalidInput},
		{"UnknownHighlight", []string{"render", "-o", filepath.Join(dir, "x.dot"), "--highlight", "Nobody"}, errors.ErrCodeVampireNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	mustContain(t, out, "bloodline")

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion should reject an unknown shell")
	}
}

func TestCompletionHelp(t *testing.T) {
	out, err := execute(t, "completion", "--help")
	if err != nil {
		t.Fatalf("completion --help error: %v", err)
	}
	mustContain(t, out, envTree, "--tree")
}
