// Package reviewcfg loads the organization review configuration: waivers and
// fail-on thresholds.
package reviewcfg

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Waiver scopes.
const (
	ScopeID   = "id"
	ScopeRule = "rule"
)

// Waiver suppresses findings matching an exact finding id or rule id. Reason
// is free text carried into the report for audit; it never affects matching.
type Waiver struct {
	Scope  string
	Value  string
	Reason string
}

// Thresholds lists the severities whose presence among active findings
// should fail an automated pipeline.
type Thresholds struct {
	FailOn []string
}

// Config is the loaded review configuration. The zero value means no waivers
// and no thresholds.
type Config struct {
	Waivers    []Waiver
	Thresholds Thresholds
	SourceFile string
}

// fileNames are the recognized config file names, checked in order.
var fileNames = []string{".iacguard.yml", ".iacguard.yaml", "iacguard.yml", "iacguard.yaml"}

type fileDoc struct {
	Ignore     []waiverEntry `yaml:"ignore"`
	Thresholds *struct {
		FailOn []string `yaml:"fail_on"`
	} `yaml:"thresholds"`
}

// waiverEntry accepts either a mapping with id/rule/reason keys or a bare
// string. A bare string containing "::" is an id, otherwise a rule name.
type waiverEntry struct {
	w Waiver
}

func (e *waiverEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		scope := ScopeRule
		if strings.Contains(s, "::") {
			scope = ScopeID
		}
		e.w = Waiver{Scope: scope, Value: s}
		return nil
	default:
		var m struct {
			ID     string `yaml:"id"`
			Rule   string `yaml:"rule"`
			Reason string `yaml:"reason"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.ID != "" {
			e.w = Waiver{Scope: ScopeID, Value: m.ID, Reason: m.Reason}
		} else {
			e.w = Waiver{Scope: ScopeRule, Value: m.Rule, Reason: m.Reason}
		}
		return nil
	}
}

// Load parses a review config file. A file that cannot be read or parsed
// yields an empty config with SourceFile still recorded, alongside the error.
func Load(path string) (Config, error) {
	cfg := Config{SourceFile: path}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var doc fileDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return cfg, err
	}
	for _, e := range doc.Ignore {
		if e.w.Value != "" {
			cfg.Waivers = append(cfg.Waivers, e.w)
		}
	}
	if doc.Thresholds != nil {
		cfg.Thresholds.FailOn = doc.Thresholds.FailOn
	}
	return cfg, nil
}

// Discover walks from fromDir toward stopDir (normally the process working
// directory) and loads the first config file found. An unparsable file is
// treated as found but effectively empty. The second return reports whether
// any file was found.
func Discover(fromDir, stopDir string) (Config, bool) {
	dir, err := filepath.Abs(fromDir)
	if err != nil {
		return Config{}, false
	}
	stop, err := filepath.Abs(stopDir)
	if err != nil {
		stop = dir
	}
	for {
		for _, name := range fileNames {
			p := filepath.Join(dir, name)
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				cfg, _ := Load(p)
				return cfg, true
			}
		}
		if dir == stop {
			return Config{}, false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Config{}, false
		}
		dir = parent
	}
}
