package detectors

import "github.com/iacguard/iacguard/internal/types"

const RulePrivilegedContainer = "privileged_container"

// PrivilegedContainer flags containers declared with privileged mode, which
// grants the workload full access to the host.
func PrivilegedContainer(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		v, rel, ok := attrBool(b.Body, "privileged")
		if !ok || !v {
			continue
		}
		line := lineAt(b.Body, rel)
		out = append(out, candidate(RulePrivilegedContainer, unit, b, rel, line,
			replaceValue(line, "false"), nil))
	}
	return out
}
