package detectors

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iacguard/iacguard/internal/types"
)

const RuleHardcodedSecret = "hardcoded_secret"

var (
	reSecretAttr = regexp.MustCompile(`^\s*(\w*(?:password|secret|token|api_key|access_key|private_key)\w*)\s*=\s*"([^"$]+)"\s*$`)
)

// HardcodedSecret flags credential-looking attributes assigned a quoted
// literal inside a resource block. Values that interpolate variables or data
// sources are left alone.
func HardcodedSecret(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		for rel, line := range strings.Split(b.Body, "\n") {
			m := reSecretAttr.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			attr, val := m[1], m[2]
			if len(val) < 4 {
				continue
			}
			c := candidate(RuleHardcodedSecret, unit, b, rel, line,
				replaceValue(line, "var."+attr),
				map[string]string{"attribute": attr})
			// a block can hold several credential attributes
			c.UniqueID = fmt.Sprintf("%s::%s:%s", RuleHardcodedSecret, b.Name, attr)
			out = append(out, c)
		}
	}
	return out
}
