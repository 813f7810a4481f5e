package detectors

import "github.com/iacguard/iacguard/internal/types"

const (
	RuleS3PublicACL          = "s3_public_acl"
	RuleS3EncryptionMissing  = "s3_encryption_missing"
	RuleS3VersioningDisabled = "s3_versioning_disabled"
)

var publicACLs = map[string]bool{
	"public-read":       true,
	"public-read-write": true,
	"website":           true,
}

// S3PublicACL flags buckets declared with a canned public ACL. Write access
// escalates to critical via an override.
func S3PublicACL(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "aws_s3_bucket" && b.Type != "aws_s3_bucket_acl" {
			continue
		}
		acl, rel, ok := attrString(b.Body, "acl")
		if !ok || !publicACLs[acl] {
			continue
		}
		line := lineAt(b.Body, rel)
		c := candidate(RuleS3PublicACL, unit, b, rel, line,
			replaceValue(line, `"private"`), map[string]string{"acl": acl})
		if acl == "public-read-write" {
			c.Overrides = &types.Overrides{
				Severity: types.SevCritical,
				Title:    "S3 bucket '{resource}' is publicly writable",
			}
		}
		out = append(out, c)
	}
	return out
}

// S3EncryptionMissing flags buckets with no server-side encryption block.
// There is no single line to rewrite, so no fix snippet is suggested.
func S3EncryptionMissing(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "aws_s3_bucket" {
			continue
		}
		if hasNestedBlock(b.Body, "server_side_encryption_configuration") {
			continue
		}
		if _, _, ok := attrExpr(b.Body, "sse_algorithm"); ok {
			continue
		}
		out = append(out, candidate(RuleS3EncryptionMissing, unit, b, 0, "", "", nil))
	}
	return out
}

// S3VersioningDisabled flags buckets where versioning is absent or turned off.
func S3VersioningDisabled(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, b := range resourceBlocks(src) {
		if b.Type != "aws_s3_bucket" {
			continue
		}
		vs := nestedBlocks(b.Body, "versioning")
		if len(vs) == 0 {
			out = append(out, candidate(RuleS3VersioningDisabled, unit, b, 0, "", "", nil))
			continue
		}
		for _, v := range vs {
			enabled, rel, ok := attrBool(v.Body, "enabled")
			if ok && !enabled {
				line := lineAt(v.Body, rel)
				out = append(out, candidate(RuleS3VersioningDisabled, unit, b, v.Line+rel, line,
					replaceValue(line, "true"), nil))
			}
		}
	}
	return out
}
