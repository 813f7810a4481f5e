package detectors

import "testing"

func TestEBSUnencrypted(t *testing.T) {
	src := `resource "aws_ebs_volume" "data" {
  size      = 100
  encrypted = false
}
`
	fs := EBSUnencrypted("ebs.tf", src)
	if len(fs) != 1 || fs[0].Line != 3 {
		t.Fatalf("expected candidate at line 3, got %+v", fs)
	}
	if fs := EBSUnencrypted("ebs.tf", `resource "aws_ebs_volume" "ok" {
  encrypted = true
}
`); len(fs) != 0 {
		t.Fatalf("encrypted volume should not fire")
	}
}
