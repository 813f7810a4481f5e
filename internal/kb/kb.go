// Package kb resolves extended, best-effort explanations for rule ids.
package kb

// Knowledge looks up a longer-form explanation for a rule id. Implementations
// may call external services; a failure must never affect the finding itself,
// callers fall back to an empty explanation.
type Knowledge interface {
	Explain(rule string) (string, error)
}

// Static serves explanations from an in-memory table.
type Static map[string]string

func (s Static) Explain(rule string) (string, error) {
	return s[rule], nil
}

// Default returns the built-in explanation set shipped with the scanner.
func Default() Knowledge {
	return Static{
		"sg_open_ingress":  "Internet-wide ingress is the most common initial access vector in cloud breach reports. Even short-lived exposure gets indexed by scanners within minutes.",
		"hardcoded_secret": "Secrets in configuration survive in VCS history and in rendered state files long after the line is removed. Rotation is the only safe remediation once committed.",
		"iam_wildcard":     "Wildcard grants defeat least privilege and make blast-radius analysis impossible; most compliance frameworks flag them explicitly.",
		"imdsv1_enabled":   "IMDSv1 allows any SSRF-capable process on the instance to read role credentials. Requiring session tokens (IMDSv2) closes that path.",
	}
}
