package detectors

import "github.com/iacguard/iacguard/internal/types"

const RuleEBSUnencrypted = "ebs_unencrypted"

// EBSUnencrypted flags volumes without encryption at rest.
func EBSUnencrypted(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "aws_ebs_volume" {
			continue
		}
		v, rel, ok := attrBool(b.Body, "encrypted")
		if ok && v {
			continue
		}
		if ok {
			line := lineAt(b.Body, rel)
			out = append(out, candidate(RuleEBSUnencrypted, unit, b, rel, line,
				replaceValue(line, "true"), nil))
			continue
		}
		out = append(out, candidate(RuleEBSUnencrypted, unit, b, 0, "", "", nil))
	}
	return out
}
