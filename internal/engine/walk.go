package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/iacguard/iacguard/internal/ignore"
)

var sourceSuffixes = []string{".tf", ".tfvars"}

func hasSourceSuffix(p string) bool {
	lower := strings.ToLower(p)
	for _, s := range sourceSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

var defaultDirExcludes = map[string]bool{
	".git":         true,
	".terraform":   true,
	"node_modules": true,
	"vendor":       true,
}

// DiscoverFiles resolves the configured roots into a sorted, de-duplicated
// list of source files. Direct file roots are taken when their suffix
// matches; directory roots are walked recursively. Discovery order is sorted,
// never filesystem-enumeration-dependent, so repeated scans see the same
// sequence. Roots that do not exist are skipped.
func DiscoverFiles(cfg Config) []string {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, root := range cfg.Roots {
		st, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !st.IsDir() {
			if cfg.MaxBytes > 0 && st.Size() > cfg.MaxBytes {
				continue
			}
			if hasSourceSuffix(root) && allowedByGlobs(filepath.Base(root), cfg) {
				add(root)
			}
			continue
		}
		ign, _ := ignore.Load(filepath.Join(root, ".iacguardignore"))
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if defaultDirExcludes[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if !hasSourceSuffix(p) {
				return nil
			}
			rel, _ := filepath.Rel(root, p)
			if !allowedByGlobs(rel, cfg) {
				return nil
			}
			if ign.Match(rel) {
				return nil
			}
			if cfg.MaxBytes > 0 {
				if info, _ := d.Info(); info != nil && info.Size() > cfg.MaxBytes {
					return nil
				}
			}
			add(p)
			return nil
		})
	}
	sort.Strings(out)
	return out
}

// allowedByGlobs returns true if the given path passes the include/exclude
// glob configuration. Include globs, when present, act as a positive filter;
// exclude globs are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := splitGlobs(cfg.IncludeGlobs)
	excludes := splitGlobs(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func splitGlobs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := len(b)
	if n > sniff {
		n = sniff
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
