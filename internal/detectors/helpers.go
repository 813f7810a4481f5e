package detectors

import (
	"regexp"
	"strings"
	"sync"

	"github.com/iacguard/iacguard/internal/types"
)

// maxWindowLines bounds how far past a resource header a detector will look.
// Blocks that never close (truncated or malformed files) still yield a window.
const maxWindowLines = 120

var reResourceHeader = regexp.MustCompile(`^\s*resource\s+"([^"]+)"\s+"([^"]+)"\s*\{`)

// block is one resource declaration with a bounded body window. Line is the
// 1-based line of the header; Body runs from the header line to the matching
// closing brace or the window cap, whichever comes first.
type block struct {
	Type string
	Name string
	Line int
	Body string
}

// resourceBlocks extracts resource declarations by scanning for header lines
// and counting braces. It does not parse the configuration grammar; values
// inside strings or comments can fool it, which is the accepted trade-off for
// keeping every detector independent of a shared parser.
func resourceBlocks(src string) []block {
	lines := strings.Split(src, "\n")
	var out []block
	for i := 0; i < len(lines); i++ {
		m := reResourceHeader.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		depth := 0
		end := i
		for j := i; j < len(lines) && j-i < maxWindowLines; j++ {
			depth += strings.Count(lines[j], "{") - strings.Count(lines[j], "}")
			end = j
			if depth <= 0 {
				break
			}
		}
		out = append(out, block{
			Type: m[1],
			Name: m[2],
			Line: i + 1,
			Body: strings.Join(lines[i:end+1], "\n"),
		})
	}
	return out
}

// nested is an inner block (ingress, versioning, metadata_options, ...)
// within a resource body. Line is relative to the body window start.
type nested struct {
	Line int
	Body string
}

func nestedBlocks(body, name string) []nested {
	re := attrRegexp(`^\s*` + regexp.QuoteMeta(name) + `\s*\{`)
	lines := strings.Split(body, "\n")
	var out []nested
	for i := 0; i < len(lines); i++ {
		if !re.MatchString(lines[i]) {
			continue
		}
		depth := 0
		end := i
		for j := i; j < len(lines); j++ {
			depth += strings.Count(lines[j], "{") - strings.Count(lines[j], "}")
			end = j
			if depth <= 0 {
				break
			}
		}
		out = append(out, nested{Line: i, Body: strings.Join(lines[i:end+1], "\n")})
	}
	return out
}

func hasNestedBlock(body, name string) bool {
	return len(nestedBlocks(body, name)) > 0
}

var (
	attrReMu sync.Mutex
	attrRes  = map[string]*regexp.Regexp{}
)

// attrRegexp compiles and caches the regexes built from attribute names.
func attrRegexp(expr string) *regexp.Regexp {
	attrReMu.Lock()
	defer attrReMu.Unlock()
	re, ok := attrRes[expr]
	if !ok {
		re = regexp.MustCompile(expr)
		attrRes[expr] = re
	}
	return re
}

// attrExpr finds an attribute assignment inside a body window and returns its
// raw right-hand side plus the line offset within the window.
func attrExpr(body, name string) (raw string, rel int, ok bool) {
	re := attrRegexp(`^\s*` + regexp.QuoteMeta(name) + `\s*=\s*(.+?)\s*$`)
	for i, line := range strings.Split(body, "\n") {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), i, true
		}
	}
	return "", 0, false
}

// attrString is attrExpr with surrounding quotes stripped when present.
func attrString(body, name string) (val string, rel int, ok bool) {
	raw, rel, ok := attrExpr(body, name)
	if !ok {
		return "", 0, false
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	return raw, rel, true
}

// attrBool interprets a bare true/false assignment. Expressions that are not
// literals report ok=false so detectors stay quiet instead of guessing.
func attrBool(body, name string) (val bool, rel int, ok bool) {
	raw, rel, ok := attrExpr(body, name)
	if !ok {
		return false, 0, false
	}
	switch raw {
	case "true":
		return true, rel, true
	case "false":
		return false, rel, true
	}
	return false, 0, false
}

// lineAt returns the verbatim line at a window-relative offset, used as the
// diffable snippet for a finding.
func lineAt(body string, rel int) string {
	lines := strings.Split(body, "\n")
	if rel < 0 || rel >= len(lines) {
		return ""
	}
	return lines[rel]
}

// replaceValue rewrites the right-hand side of an attribute line, preserving
// everything left of the equals sign. Used to build suggested-fix snippets.
func replaceValue(line, newValue string) string {
	i := strings.Index(line, "=")
	if i < 0 {
		return line
	}
	return line[:i+1] + " " + newValue
}

// candidate assembles the common fields for a per-resource detection.
func candidate(rule, unit string, b block, rel int, snippet, fix string, extra map[string]string) types.Candidate {
	ctx := map[string]string{
		"resource": b.Name,
		"type":     b.Type,
	}
	for k, v := range extra {
		ctx[k] = v
	}
	return types.Candidate{
		Rule:         rule,
		Unit:         unit,
		Line:         b.Line + rel,
		Context:      ctx,
		Snippet:      snippet,
		SuggestedFix: fix,
	}
}
