package detectors

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iacguard/iacguard/internal/types"
)

const RuleIAMWildcard = "iam_wildcard"

var reIAMWildcard = regexp.MustCompile(`"(Action|Resource)"\s*:\s*(\[\s*)?"\*"`)

var iamPolicyTypes = map[string]bool{
	"aws_iam_policy":       true,
	"aws_iam_role_policy":  true,
	"aws_iam_user_policy":  true,
	"aws_iam_group_policy": true,
}

// IAMWildcard flags policy documents granting "*" actions or resources.
func IAMWildcard(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if !iamPolicyTypes[b.Type] {
			continue
		}
		for rel, line := range strings.Split(b.Body, "\n") {
			m := reIAMWildcard.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			c := candidate(RuleIAMWildcard, unit, b, rel, "", "",
				map[string]string{"element": m[1]})
			// one policy document can grant several wildcards
			c.UniqueID = fmt.Sprintf("%s::%s:%d", RuleIAMWildcard, b.Name, c.Line)
			out = append(out, c)
		}
	}
	return out
}
