package detectors

import "github.com/iacguard/iacguard/internal/types"

const RuleIMDSv1Enabled = "imdsv1_enabled"

// IMDSv1Enabled flags instances and launch templates that do not require
// session tokens for the metadata service.
func IMDSv1Enabled(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "aws_instance" && b.Type != "aws_launch_template" {
			continue
		}
		opts := nestedBlocks(b.Body, "metadata_options")
		if len(opts) == 0 {
			out = append(out, candidate(RuleIMDSv1Enabled, unit, b, 0, "", "", nil))
			continue
		}
		for _, o := range opts {
			tokens, rel, ok := attrString(o.Body, "http_tokens")
			if ok && tokens == "required" {
				continue
			}
			if !ok {
				out = append(out, candidate(RuleIMDSv1Enabled, unit, b, o.Line, "", "", nil))
				continue
			}
			line := lineAt(o.Body, rel)
			out = append(out, candidate(RuleIMDSv1Enabled, unit, b, o.Line+rel, line,
				replaceValue(line, `"required"`), nil))
		}
	}
	return out
}
