package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if m.Match("main.tf") {
		t.Fatalf("empty matcher must match nothing")
	}
}

func TestMatchPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".iacguardignore")
	body := `# generated fixtures
examples/
*.json
modules/legacy/main.tf
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		rel  string
		want bool
	}{
		{"examples/demo.tf", true},
		{"stacks/examples/demo.tf", true},
		{"state.json", true},
		{"nested/state.json", true},
		{"modules/legacy/main.tf", true},
		{"modules/legacy/other.tf", false},
		{"main.tf", false},
		{"examples.tf", false},
	}
	for _, c := range cases {
		if got := m.Match(c.rel); got != c.want {
			t.Errorf("Match(%q) = %v, want %v", c.rel, got, c.want)
		}
	}
}
