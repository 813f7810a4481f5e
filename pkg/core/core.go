package core

import (
	"github.com/iacguard/iacguard/internal/detectors"
	"github.com/iacguard/iacguard/internal/engine"
	"github.com/iacguard/iacguard/internal/types"
)

// Type aliases keep external consumers on a stable path; the internals can
// be decoupled later without breaking callers.
type (
	Config     = engine.Config
	Finding    = types.Finding
	ScanReport = types.ScanReport
	Severity   = types.Severity
)

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) (ScanReport, error) {
	return engine.Scan(cfg)
}

// RuleIDs returns the rule ids of the built-in detector set.
func RuleIDs() []string { return detectors.IDs() }
