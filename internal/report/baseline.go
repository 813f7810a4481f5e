package report

import (
	"encoding/json"
	"fmt"
	"os"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/iacguard/iacguard/internal/types"
)

// Baseline records previously accepted findings so later scans can report
// only what is new.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		return b, err
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[baselineKey(f)] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

// FilterNew drops findings already present in the baseline, preserving order.
func FilterNew(findings []types.Finding, base Baseline) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[baselineKey(f)] {
			out = append(out, f)
		}
	}
	return out
}

// baselineKey hashes the stable identity plus the matched snippet, so a
// finding re-fires after its surrounding code changes.
func baselineKey(f types.Finding) string {
	sum := xxhash.Sum64String(f.ID + "|" + f.File + "|" + f.Snippet)
	return fmt.Sprintf("%016x", sum)
}
