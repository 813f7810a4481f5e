package rules

import (
	"github.com/iacguard/iacguard/internal/detectors"
	"github.com/iacguard/iacguard/internal/types"
)

// catalog is the default rule metadata table. Ids must match the detector
// rule constants; the syntax rule is filled by the external validate step.
var catalog = []Metadata{
	{
		ID:             detectors.RuleOpenIngress,
		Title:          "Security group '{resource}' allows ingress from the internet",
		Severity:       types.SevHigh,
		Description:    "An ingress rule on '{resource}' accepts traffic from 0.0.0.0/0 on port {port}. Anyone on the internet can reach the attached workloads.",
		Recommendation: "Restrict cidr_blocks to known networks, or front the service with a load balancer and keep the group internal.",
		DocsURL:        "https://docs.iacguard.dev/rules/sg_open_ingress",
	},
	{
		ID:             detectors.RuleOpenEgress,
		Title:          "Security group '{resource}' allows unrestricted egress",
		Severity:       types.SevLow,
		Description:    "An egress rule on '{resource}' permits outbound traffic to any destination, which eases data exfiltration if a workload is compromised.",
		Recommendation: "Limit egress to the destinations the workload actually needs.",
		DocsURL:        "https://docs.iacguard.dev/rules/sg_open_egress",
	},
	{
		ID:             detectors.RuleS3PublicACL,
		Title:          "S3 bucket '{resource}' uses public ACL '{acl}'",
		Severity:       types.SevHigh,
		Description:    "Bucket '{resource}' is declared with the canned ACL '{acl}', making its objects readable by anonymous users.",
		Recommendation: "Set acl = \"private\" and enable the account-level public access block.",
		DocsURL:        "https://docs.iacguard.dev/rules/s3_public_acl",
	},
	{
		ID:             detectors.RuleS3EncryptionMissing,
		Title:          "S3 bucket '{resource}' has no server-side encryption",
		Severity:       types.SevHigh,
		Description:    "Bucket '{resource}' declares no server_side_encryption_configuration, so objects are stored unencrypted unless callers opt in per request.",
		Recommendation: "Add a server_side_encryption_configuration block with aws:kms or AES256.",
		DocsURL:        "https://docs.iacguard.dev/rules/s3_encryption_missing",
	},
	{
		ID:             detectors.RuleS3VersioningDisabled,
		Title:          "S3 bucket '{resource}' has versioning disabled",
		Severity:       types.SevMedium,
		Description:    "Without versioning, overwritten or deleted objects in '{resource}' cannot be recovered.",
		Recommendation: "Enable versioning on buckets that hold state or user data.",
		DocsURL:        "https://docs.iacguard.dev/rules/s3_versioning_disabled",
	},
	{
		ID:             detectors.RuleHardcodedSecret,
		Title:          "Hardcoded credential in '{resource}'",
		Severity:       types.SevCritical,
		Description:    "Attribute '{attribute}' on '{resource}' is assigned a literal value. Credentials committed to configuration spread through VCS history and state files.",
		Recommendation: "Move the value into a variable sourced from a secret manager and reference it as var.{attribute}.",
		DocsURL:        "https://docs.iacguard.dev/rules/hardcoded_secret",
	},
	{
		ID:             detectors.RuleIAMWildcard,
		Title:          "IAM policy '{resource}' grants wildcard {element}",
		Severity:       types.SevHigh,
		Description:    "Policy '{resource}' uses \"*\" for {element}, granting far more than any single workload needs.",
		Recommendation: "Enumerate the specific actions and resources the principal requires.",
		DocsURL:        "https://docs.iacguard.dev/rules/iam_wildcard",
	},
	{
		ID:             detectors.RuleRDSPublicAccess,
		Title:          "Database '{resource}' is publicly accessible",
		Severity:       types.SevHigh,
		Description:    "Instance '{resource}' sets publicly_accessible = true, exposing the database endpoint outside the VPC.",
		Recommendation: "Set publicly_accessible = false and connect through a bastion or VPN.",
		DocsURL:        "https://docs.iacguard.dev/rules/rds_public_access",
	},
	{
		ID:             detectors.RuleRDSUnencrypted,
		Title:          "Database '{resource}' storage is not encrypted",
		Severity:       types.SevHigh,
		Description:    "Instance '{resource}' does not enable storage_encrypted, leaving data at rest unprotected.",
		Recommendation: "Set storage_encrypted = true; for existing instances, migrate via an encrypted snapshot.",
		DocsURL:        "https://docs.iacguard.dev/rules/rds_unencrypted",
	},
	{
		ID:             detectors.RuleEBSUnencrypted,
		Title:          "EBS volume '{resource}' is not encrypted",
		Severity:       types.SevHigh,
		Description:    "Volume '{resource}' does not enable encryption, leaving block storage readable if the underlying snapshot leaks.",
		Recommendation: "Set encrypted = true, or enable EBS encryption by default for the account.",
		DocsURL:        "https://docs.iacguard.dev/rules/ebs_unencrypted",
	},
	{
		ID:             detectors.RuleIMDSv1Enabled,
		Title:          "Instance '{resource}' permits IMDSv1",
		Severity:       types.SevMedium,
		Description:    "'{resource}' does not require session tokens for the instance metadata service, enabling credential theft via SSRF.",
		Recommendation: "Add a metadata_options block with http_tokens = \"required\".",
		DocsURL:        "https://docs.iacguard.dev/rules/imdsv1_enabled",
	},
	{
		ID:             detectors.RulePlainHTTP,
		Title:          "Cleartext HTTP endpoint",
		Severity:       types.SevLow,
		Description:    "The configuration references {url} over plain HTTP; traffic to it can be read or altered in transit.",
		Recommendation: "Use https:// endpoints wherever the service supports TLS.",
		DocsURL:        "https://docs.iacguard.dev/rules/plain_http",
	},
	{
		ID:             detectors.RuleLatestImageTag,
		Title:          "Container image '{image}' uses a floating tag",
		Severity:       types.SevLow,
		Description:    "Floating tags make deploys non-reproducible and can silently pull a different image than was reviewed.",
		Recommendation: "Pin the image to an immutable tag or digest.",
		DocsURL:        "https://docs.iacguard.dev/rules/latest_image_tag",
	},
	{
		ID:             detectors.RulePrivilegedContainer,
		Title:          "Container '{resource}' runs privileged",
		Severity:       types.SevHigh,
		Description:    "'{resource}' is declared with privileged = true, giving the container full access to the host.",
		Recommendation: "Drop privileged mode and grant only the specific capabilities required.",
		DocsURL:        "https://docs.iacguard.dev/rules/privileged_container",
	},
	{
		ID:             detectors.RuleAzureStorageHTTP,
		Title:          "Storage account '{resource}' allows plain HTTP",
		Severity:       types.SevHigh,
		Description:    "'{resource}' disables HTTPS-only transport, so clients may read and write blobs over cleartext connections.",
		Recommendation: "Remove the explicit opt-out; the secure transport requirement is the provider default.",
		DocsURL:        "https://docs.iacguard.dev/rules/azure_storage_http",
	},
	{
		ID:             detectors.RuleGCSUniformAccess,
		Title:          "GCS bucket '{resource}' lacks uniform access",
		Severity:       types.SevMedium,
		Description:    "Without uniform bucket-level access, per-object ACLs on '{resource}' can drift from the bucket policy.",
		Recommendation: "Set uniform_bucket_level_access = true.",
		DocsURL:        "https://docs.iacguard.dev/rules/gcs_uniform_access",
	},
	{
		ID:             detectors.SyntaxRule,
		Title:          "Configuration failed to parse",
		Severity:       types.SevHigh,
		Description:    "The file could not be parsed by the full validator: {detail}",
		Recommendation: "Fix the syntax error; other checks ran on a best-effort basis against the unparsed text.",
		DocsURL:        "https://docs.iacguard.dev/rules/syntax_error",
	},
}
