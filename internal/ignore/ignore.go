// Package ignore implements the repo-local .iacguardignore matcher.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Matcher answers whether a relative path is excluded by ignore patterns.
// Supported forms: "dir/" prefixes, "*.ext" globs matched against the base
// name, and literal relative paths.
type Matcher struct {
	dirs  []string
	globs []string
	exact map[string]bool
}

// Load reads patterns from path. A missing file yields an empty matcher.
func Load(path string) (Matcher, error) {
	m := Matcher{exact: map[string]bool{}}
	f, err := os.Open(path)
	if err != nil {
		return m, nil
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasSuffix(line, "/"):
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
		case strings.ContainsAny(line, "*?["):
			m.globs = append(m.globs, line)
		default:
			m.exact[line] = true
		}
	}
	return m, sc.Err()
}

// Match reports whether rel is ignored. rel uses forward slashes.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	if m.exact[rel] {
		return true
	}
	for _, d := range m.dirs {
		if rel == d || strings.HasPrefix(rel, d+"/") || strings.Contains(rel, "/"+d+"/") {
			return true
		}
	}
	base := filepath.Base(rel)
	for _, g := range m.globs {
		if ok, _ := filepath.Match(g, base); ok {
			return true
		}
		if ok, _ := filepath.Match(g, rel); ok {
			return true
		}
	}
	return false
}
