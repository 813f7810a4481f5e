package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iacguard/iacguard/internal/types"
)

func sampleReport() types.ScanReport {
	return types.ScanReport{
		Summary: types.Summary{
			FilesScanned: 3,
			IssuesFound:  2,
			SeverityCounts: map[types.Severity]int{
				types.SevCritical: 1,
				types.SevMedium:   1,
			},
		},
		Findings: []types.Finding{
			{ID: "sg_open_ingress::web", Rule: "sg_open_ingress", Title: "Security group 'web' is open",
				Severity: types.SevCritical, File: "main.tf", Line: 8, Snippet: `cidr_blocks = ["0.0.0.0/0"]`},
			{ID: "plain_http_endpoint::api.tf:3", Rule: "plain_http_endpoint", Title: "Unencrypted http:// endpoint",
				Severity: types.SevMedium, File: "api.tf", Line: 3},
		},
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var got types.ScanReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Summary.IssuesFound)
	assert.Len(t, got.Findings, 2)
	assert.Equal(t, "sg_open_ingress::web", got.Findings[0].ID)
}

func TestPrintTextSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()

	assert.Contains(t, out, "main.tf:8")
	assert.Contains(t, out, "Files scanned: 3")
	assert.Contains(t, out, "CRITICAL: 1")
	assert.Contains(t, out, "MEDIUM: 1")
	// severity counts are printed highest first
	assert.Less(t, strings.Index(out, "CRITICAL: 1"), strings.Index(out, "MEDIUM: 1"))
}

func TestPrintTextClean(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, types.ScanReport{Summary: types.Summary{FilesScanned: 1}}, PrintOptions{NoColor: true})
	assert.Contains(t, buf.String(), "No issues found")
}

func TestPrintTableSmoke(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleReport())
	out := buf.String()
	assert.Contains(t, out, "sg_open_ingress")
	assert.Contains(t, out, "CRITICAL")
}

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, sampleReport(), "0.1.0"))

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "iacguard", doc.Runs[0].Tool.Driver.Name)
	require.Len(t, doc.Runs[0].Results, 2)
	assert.Equal(t, "error", doc.Runs[0].Results[0].Level)
	assert.Equal(t, "warning", doc.Runs[0].Results[1].Level)
	assert.Equal(t, 8, doc.Runs[0].Results[0].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestWriteSARIFZeroLineClamped(t *testing.T) {
	rep := types.ScanReport{Findings: []types.Finding{{Rule: "r", Severity: types.SevLow}}}
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, rep, "0.1.0"))
	assert.Contains(t, buf.String(), `"startLine": 1`)
}

func TestBaselineRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	findings := sampleReport().Findings
	require.NoError(t, SaveBaseline(path, findings))

	base, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.Len(t, base.Items, 2)
	assert.Empty(t, FilterNew(findings, base))
}

func TestFilterNewDetectsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	findings := sampleReport().Findings
	require.NoError(t, SaveBaseline(path, findings[:1]))
	base, err := LoadBaseline(path)
	require.NoError(t, err)

	fresh := FilterNew(findings, base)
	require.Len(t, fresh, 1)
	assert.Equal(t, "plain_http_endpoint::api.tf:3", fresh[0].ID)

	// same identity but different snippet should re-fire
	changed := findings[0]
	changed.Snippet = `cidr_blocks = ["10.0.0.0/8", "0.0.0.0/0"]`
	assert.Len(t, FilterNew([]types.Finding{changed}, base), 1)
}

func TestLoadBaselineMissing(t *testing.T) {
	_, err := LoadBaseline(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
