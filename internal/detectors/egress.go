package detectors

import (
	"fmt"

	"github.com/iacguard/iacguard/internal/types"
)

const RuleOpenEgress = "sg_open_egress"

// OpenEgress flags security groups that allow all outbound traffic. This is
// common and often intentional, so the rule stays low severity.
func OpenEgress(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "aws_security_group" {
			continue
		}
		for _, eg := range nestedBlocks(b.Body, "egress") {
			rel, ok := openCIDR(eg.Body)
			if !ok {
				continue
			}
			line := lineAt(eg.Body, rel)
			c := candidate(RuleOpenEgress, unit, b, eg.Line+rel, line, "", nil)
			// a group can declare several open egress blocks
			c.UniqueID = fmt.Sprintf("%s::%s:%d", RuleOpenEgress, b.Name, c.Line)
			out = append(out, c)
		}
	}
	return out
}
