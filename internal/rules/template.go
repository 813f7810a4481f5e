package rules

import "strings"

// expand substitutes {name} tokens using ctx. Tokens with no matching key are
// left verbatim so a sparse context never blanks or breaks the rendered text.
func expand(tmpl string, ctx map[string]string) string {
	if tmpl == "" || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	var b strings.Builder
	b.Grow(len(tmpl))
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end += open
		b.WriteString(tmpl[:open])
		key := tmpl[open+1 : end]
		if v, ok := ctx[key]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(tmpl[open : end+1])
		}
		tmpl = tmpl[end+1:]
	}
}
