package detectors

import "github.com/iacguard/iacguard/internal/types"

// ScanFunc inspects one source unit and returns raw candidates. Detectors are
// pure: same input, same output, no shared state.
type ScanFunc func(unit string, src string) []types.Candidate

// Detector binds a rule id to its scan function. One detector owns exactly
// one rule family.
type Detector struct {
	Rule string
	Scan ScanFunc
}

// SyntaxRule is the dedicated rule id used when an external full-validate
// collaborator reports unparsable source. It is not backed by a detector here.
const SyntaxRule = "syntax_error"

var all = []Detector{
	{Rule: RuleOpenIngress, Scan: OpenIngress},
	{Rule: RuleOpenEgress, Scan: OpenEgress},
	{Rule: RuleS3PublicACL, Scan: S3PublicACL},
	{Rule: RuleS3EncryptionMissing, Scan: S3EncryptionMissing},
	{Rule: RuleS3VersioningDisabled, Scan: S3VersioningDisabled},
	{Rule: RuleHardcodedSecret, Scan: HardcodedSecret},
	{Rule: RuleIAMWildcard, Scan: IAMWildcard},
	{Rule: RuleRDSPublicAccess, Scan: RDSPublicAccess},
	{Rule: RuleRDSUnencrypted, Scan: RDSUnencrypted},
	{Rule: RuleEBSUnencrypted, Scan: EBSUnencrypted},
	{Rule: RuleIMDSv1Enabled, Scan: IMDSv1Enabled},
	{Rule: RulePlainHTTP, Scan: PlainHTTP},
	{Rule: RuleLatestImageTag, Scan: LatestImageTag},
	{Rule: RulePrivilegedContainer, Scan: PrivilegedContainer},
	{Rule: RuleAzureStorageHTTP, Scan: AzureStorageHTTP},
	{Rule: RuleGCSUniformAccess, Scan: GCSUniformAccess},
}

// All returns the registered detectors in their fixed registration order.
// The order is stable so scan output stays reproducible end to end.
func All() []Detector {
	out := make([]Detector, len(all))
	copy(out, all)
	return out
}

// IDs returns the rule ids of all registered detectors plus the syntax rule.
func IDs() []string {
	ids := make([]string, 0, len(all)+1)
	for _, d := range all {
		ids = append(ids, d.Rule)
	}
	ids = append(ids, SyntaxRule)
	return ids
}

// RunAll executes every detector against one unit and concatenates the
// candidates in registration order. Callers that need fault isolation should
// invoke detectors individually instead.
func RunAll(unit, src string) []types.Candidate {
	var out []types.Candidate
	for _, d := range all {
		out = append(out, d.Scan(unit, src)...)
	}
	return out
}
