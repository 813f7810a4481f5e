package detectors

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/iacguard/iacguard/internal/types"
)

const RuleLatestImageTag = "latest_image_tag"

var reImageAttr = regexp.MustCompile(`^\s*image\s*=\s*"([^"$]+)"`)

// LatestImageTag flags container images pinned to :latest or to no tag at
// all. No fix is suggested because the right tag is not knowable from here.
func LatestImageTag(unit, src string) []types.Candidate {
	var out []types.Candidate
	sc := bufio.NewScanner(strings.NewReader(src))
	line := 0
	for sc.Scan() {
		line++
		m := reImageAttr.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		img := m[1]
		if !floatingTag(img) {
			continue
		}
		out = append(out, types.Candidate{
			Rule:     RuleLatestImageTag,
			Unit:     unit,
			Line:     line,
			Context:  map[string]string{"image": img},
			UniqueID: fmt.Sprintf("%s::%s:%d", RuleLatestImageTag, unit, line),
		})
	}
	return out
}

func floatingTag(img string) bool {
	// digest-pinned references are fine
	if strings.Contains(img, "@sha256:") {
		return false
	}
	ref := img
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ref = ref[i+1:]
	}
	i := strings.LastIndex(ref, ":")
	if i < 0 {
		return true
	}
	return ref[i+1:] == "latest"
}
