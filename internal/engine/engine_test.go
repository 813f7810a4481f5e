package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iacguard/iacguard/internal/detectors"
	"github.com/iacguard/iacguard/internal/types"
)

const webFixture = `resource "aws_security_group" "web" {
  name = "web"

  ingress {
    from_port   = 22
    to_port     = 22
    protocol    = "tcp"
    cidr_blocks = ["0.0.0.0/0"]
  }
}
`

const bucketFixture = `resource "aws_s3_bucket" "logs" {
  bucket = "corp-logs"
  acl    = "public-read"
}
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return root
}

func marshal(t *testing.T, rep types.ScanReport) string {
	t.Helper()
	b, err := json.Marshal(rep)
	require.NoError(t, err)
	return string(b)
}

func TestScanFindsIssues(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.tf":    webFixture,
		"storage.tf": bucketFixture,
	})
	rep, err := Scan(Config{Roots: []string{root}, WorkDir: root})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Summary.FilesScanned)
	rules := map[string]bool{}
	for _, f := range rep.Findings {
		rules[f.Rule] = true
	}
	assert.True(t, rules[detectors.RuleOpenIngress])
	assert.True(t, rules[detectors.RuleS3PublicACL])
	assert.Nil(t, rep.Summary.Thresholds)
}

func TestScanDeterministic(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.tf":        webFixture,
		"storage.tf":     bucketFixture,
		"stacks/db.tf":   "resource \"aws_db_instance\" \"main\" {\n  publicly_accessible = true\n}\n",
		"stacks/edge.tf": "locals {\n  endpoint = \"http://api.example.com/v1\"\n}\n",
	})
	cfg := Config{Roots: []string{root}, WorkDir: root}

	a, err := Scan(cfg)
	require.NoError(t, err)
	b, err := Scan(cfg)
	require.NoError(t, err)
	assert.Equal(t, marshal(t, a), marshal(t, b))
}

func TestScanParallelismDoesNotChangeOutput(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.tf": webFixture,
		"b.tf": bucketFixture,
		"c.tf": "resource \"aws_db_instance\" \"main\" {\n  publicly_accessible = true\n}\n",
		"d.tf": "resource \"aws_ebs_volume\" \"data\" {\n  size = 40\n}\n",
	})
	serial, err := Scan(Config{Roots: []string{root}, WorkDir: root, Threads: 1})
	require.NoError(t, err)
	parallel, err := Scan(Config{Roots: []string{root}, WorkDir: root, Threads: 8})
	require.NoError(t, err)
	assert.Equal(t, marshal(t, serial), marshal(t, parallel))
}

func TestScanIsolatesDetectorPanic(t *testing.T) {
	root := writeTree(t, map[string]string{"main.tf": webFixture})

	dets := append([]detectors.Detector{
		{Rule: "boom", Scan: func(unit, src string) []types.Candidate { panic("unlucky") }},
	}, detectors.All()...)

	res, err := ScanWithStats(Config{Roots: []string{root}, WorkDir: root, Detectors: dets})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Report.Summary.FilesScanned)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "boom", res.Diagnostics[0].Rule)
	// siblings still ran
	found := false
	for _, f := range res.Report.Findings {
		if f.Rule == detectors.RuleOpenIngress {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScanNonexistentRoot(t *testing.T) {
	rep, err := Scan(Config{Roots: []string{filepath.Join(t.TempDir(), "missing")}})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Summary.FilesScanned)
	assert.Equal(t, 0, rep.Summary.IssuesFound)
	assert.NotNil(t, rep.Findings)
	assert.Empty(t, rep.Findings)
}

func TestScanAppliesDiscoveredConfig(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.tf": webFixture,
		".iacguard.yml": `
ignore:
  - rule: sg_open_ingress
thresholds:
  fail_on: [CRITICAL]
`,
	})
	rep, err := Scan(Config{Roots: []string{root}, WorkDir: root})
	require.NoError(t, err)

	assert.NotEmpty(t, rep.WaivedFindings)
	for _, f := range rep.Findings {
		assert.NotEqual(t, detectors.RuleOpenIngress, f.Rule)
	}
	require.NotNil(t, rep.Summary.Thresholds)
	assert.False(t, rep.Summary.Thresholds.Triggered)
	assert.Equal(t, filepath.Join(root, ".iacguard.yml"), rep.Config)
}

func TestScanThresholdTriggered(t *testing.T) {
	root := writeTree(t, map[string]string{"main.tf": webFixture})
	rep, err := Scan(Config{Roots: []string{root}, WorkDir: root, FailOn: []string{"CRITICAL"}})
	require.NoError(t, err)

	require.NotNil(t, rep.Summary.Thresholds)
	assert.True(t, rep.Summary.Thresholds.Triggered)
	assert.NotEmpty(t, rep.Summary.Thresholds.ViolatedIDs)
}

func TestScanFailOnOverridesConfig(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.tf":       webFixture,
		".iacguard.yml": "thresholds:\n  fail_on: [INFO]\n",
	})
	rep, err := Scan(Config{Roots: []string{root}, WorkDir: root, FailOn: []string{"CRITICAL"}})
	require.NoError(t, err)
	require.NotNil(t, rep.Summary.Thresholds)
	assert.Equal(t, []string{"CRITICAL"}, rep.Summary.Thresholds.FailOn)
	assert.True(t, rep.Summary.Thresholds.Triggered)
}

func TestScanIDsUniquePerReport(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.tf": `resource "aws_security_group" "web" {
  ingress {
    from_port   = 80
    cidr_blocks = ["0.0.0.0/0"]
  }

  ingress {
    from_port   = 443
    cidr_blocks = ["0.0.0.0/0"]
  }
}

resource "aws_db_instance" "main" {
  password       = "hunter2hunter2"
  replica_secret = "correct-horse-battery"
}
`,
	})
	rep, err := Scan(Config{Roots: []string{root}, WorkDir: root})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, f := range rep.Findings {
		seen[f.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %q appears %d times in one report", id, n)
	}
}

func TestScanBaselineFilteredBeforePolicy(t *testing.T) {
	root := writeTree(t, map[string]string{"main.tf": webFixture})
	cfg := Config{Roots: []string{root}, WorkDir: root, FailOn: []string{"CRITICAL"}}

	first, err := Scan(cfg)
	require.NoError(t, err)
	require.NotNil(t, first.Summary.Thresholds)
	require.True(t, first.Summary.Thresholds.Triggered)

	accepted := map[string]bool{}
	for _, f := range first.Findings {
		accepted[f.ID] = true
	}
	cfg.BaselineFilter = func(fs []types.Finding) []types.Finding {
		var out []types.Finding
		for _, f := range fs {
			if !accepted[f.ID] {
				out = append(out, f)
			}
		}
		return out
	}

	second, err := Scan(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Summary.IssuesFound)
	assert.Empty(t, second.Summary.SeverityCounts)
	require.NotNil(t, second.Summary.Thresholds)
	assert.False(t, second.Summary.Thresholds.Triggered)
	assert.Empty(t, second.Summary.Thresholds.ViolatedIDs)
}

func TestScanExplicitConfigPath(t *testing.T) {
	root := writeTree(t, map[string]string{"main.tf": webFixture})
	other := t.TempDir()
	cfgPath := filepath.Join(other, "review.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ignore:\n  - sg_open_ingress\n"), 0o644))

	rep, err := Scan(Config{Roots: []string{root}, WorkDir: root, ConfigPath: cfgPath})
	require.NoError(t, err)
	assert.NotEmpty(t, rep.WaivedFindings)
	assert.Equal(t, cfgPath, rep.Config)
}
