package detectors

import "testing"

func TestIMDSv1Enabled(t *testing.T) {
	optional := `resource "aws_instance" "web" {
  metadata_options {
    http_tokens = "optional"
  }
}
`
	missing := `resource "aws_instance" "db" {
  ami = "ami-123456"
}
`
	required := `resource "aws_instance" "ok" {
  metadata_options {
    http_tokens = "required"
  }
}
`
	if fs := IMDSv1Enabled("ec2.tf", optional); len(fs) != 1 || fs[0].SuggestedFix == "" {
		t.Fatalf("optional tokens should yield fixable candidate")
	}
	if fs := IMDSv1Enabled("ec2.tf", missing); len(fs) != 1 {
		t.Fatalf("missing metadata_options should fire")
	}
	if fs := IMDSv1Enabled("ec2.tf", required); len(fs) != 0 {
		t.Fatalf("required tokens should not fire")
	}
}
