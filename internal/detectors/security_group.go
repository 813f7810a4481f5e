package detectors

import (
	"fmt"
	"strings"

	"github.com/iacguard/iacguard/internal/types"
)

const RuleOpenIngress = "sg_open_ingress"

// adminPorts are remote-administration ports that raise an open ingress rule
// from high to critical.
var adminPorts = map[string]bool{"22": true, "3389": true}

func openCIDR(body string) (rel int, ok bool) {
	raw, rel, ok := attrExpr(body, "cidr_blocks")
	if ok && strings.Contains(raw, "0.0.0.0/0") {
		return rel, true
	}
	raw, rel, ok = attrExpr(body, "ipv6_cidr_blocks")
	if ok && strings.Contains(raw, "::/0") {
		return rel, true
	}
	return 0, false
}

// OpenIngress flags security group ingress rules reachable from the whole
// internet. Exposed administrative ports escalate severity via an override.
func OpenIngress(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		switch b.Type {
		case "aws_security_group":
			for _, ing := range nestedBlocks(b.Body, "ingress") {
				rel, ok := openCIDR(ing.Body)
				if !ok {
					continue
				}
				port, _, _ := attrExpr(ing.Body, "from_port")
				line := lineAt(ing.Body, rel)
				c := candidate(RuleOpenIngress, unit, b, ing.Line+rel, line,
					replaceValue(line, `["10.0.0.0/16"]`), map[string]string{"port": port})
				// a group can declare several open ingress blocks
				c.UniqueID = fmt.Sprintf("%s::%s:%d", RuleOpenIngress, b.Name, c.Line)
				if adminPorts[port] {
					c.Overrides = &types.Overrides{
						Severity: types.SevCritical,
						Title:    "Security group '{resource}' exposes administrative port {port} to the internet",
					}
				}
				out = append(out, c)
			}
		case "aws_security_group_rule":
			typ, _, _ := attrString(b.Body, "type")
			if typ != "ingress" {
				continue
			}
			rel, ok := openCIDR(b.Body)
			if !ok {
				continue
			}
			port, _, _ := attrExpr(b.Body, "from_port")
			line := lineAt(b.Body, rel)
			c := candidate(RuleOpenIngress, unit, b, rel, line,
				replaceValue(line, `["10.0.0.0/16"]`), map[string]string{"port": port})
			if adminPorts[port] {
				c.Overrides = &types.Overrides{
					Severity: types.SevCritical,
					Title:    "Security group '{resource}' exposes administrative port {port} to the internet",
				}
			}
			out = append(out, c)
		}
	}
	return out
}
