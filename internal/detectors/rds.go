package detectors

import "github.com/iacguard/iacguard/internal/types"

const (
	RuleRDSPublicAccess = "rds_public_access"
	RuleRDSUnencrypted  = "rds_unencrypted"
)

var rdsInstanceTypes = map[string]bool{
	"aws_db_instance":          true,
	"aws_rds_cluster_instance": true,
}

// RDSPublicAccess flags database instances reachable from outside the VPC.
func RDSPublicAccess(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if !rdsInstanceTypes[b.Type] {
			continue
		}
		v, rel, ok := attrBool(b.Body, "publicly_accessible")
		if !ok || !v {
			continue
		}
		line := lineAt(b.Body, rel)
		out = append(out, candidate(RuleRDSPublicAccess, unit, b, rel, line,
			replaceValue(line, "false"), nil))
	}
	return out
}

// RDSUnencrypted flags database instances without storage encryption, whether
// explicitly disabled or simply unset.
func RDSUnencrypted(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "aws_db_instance" {
			continue
		}
		v, rel, ok := attrBool(b.Body, "storage_encrypted")
		if ok && v {
			continue
		}
		if ok {
			line := lineAt(b.Body, rel)
			out = append(out, candidate(RuleRDSUnencrypted, unit, b, rel, line,
				replaceValue(line, "true"), nil))
			continue
		}
		out = append(out, candidate(RuleRDSUnencrypted, unit, b, 0, "", "", nil))
	}
	return out
}
