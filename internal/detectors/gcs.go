package detectors

import "github.com/iacguard/iacguard/internal/types"

const RuleGCSUniformAccess = "gcs_uniform_access"

// GCSUniformAccess flags buckets without uniform bucket-level access, which
// leaves per-object ACLs in play.
func GCSUniformAccess(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "google_storage_bucket" {
			continue
		}
		v, rel, ok := attrBool(b.Body, "uniform_bucket_level_access")
		if ok && v {
			continue
		}
		if ok {
			line := lineAt(b.Body, rel)
			out = append(out, candidate(RuleGCSUniformAccess, unit, b, rel, line,
				replaceValue(line, "true"), nil))
			continue
		}
		out = append(out, candidate(RuleGCSUniformAccess, unit, b, 0, "", "", nil))
	}
	return out
}
