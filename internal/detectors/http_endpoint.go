package detectors

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/iacguard/iacguard/internal/types"
)

const RulePlainHTTP = "plain_http"

var rePlainHTTP = regexp.MustCompile(`http://[^\s"']+`)

// PlainHTTP flags cleartext http:// endpoints anywhere in the unit. Loopback
// addresses are exempt. Matches are keyed by line since they are not tied to
// a single resource declaration.
func PlainHTTP(unit, src string) []types.Candidate {
	var out []types.Candidate
	sc := bufio.NewScanner(strings.NewReader(src))
	line := 0
	for sc.Scan() {
		line++
		t := sc.Text()
		m := rePlainHTTP.FindString(t)
		if m == "" {
			continue
		}
		if strings.Contains(m, "localhost") || strings.Contains(m, "127.0.0.1") {
			continue
		}
		out = append(out, types.Candidate{
			Rule:     RulePlainHTTP,
			Unit:     unit,
			Line:     line,
			Context:  map[string]string{"url": m},
			UniqueID: fmt.Sprintf("%s::%s:%d", RulePlainHTTP, unit, line),
		})
	}
	return out
}
