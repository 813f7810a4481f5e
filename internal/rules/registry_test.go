package rules

import (
	"testing"

	"github.com/iacguard/iacguard/internal/detectors"
	"github.com/iacguard/iacguard/internal/types"
)

func TestLookupKnown(t *testing.T) {
	reg := NewRegistry()
	m := reg.Lookup(detectors.RuleHardcodedSecret)
	if m.Severity != types.SevCritical || m.Title == "" {
		t.Fatalf("unexpected metadata: %+v", m)
	}
}

func TestLookupUnknownNeverFails(t *testing.T) {
	reg := NewRegistry()
	m := reg.Lookup("made_up_rule")
	if m.Title != "made_up_rule" {
		t.Fatalf("synthetic title should equal the id, got %q", m.Title)
	}
	if m.Severity != types.SevInfo {
		t.Fatalf("synthetic severity should be the lowest level, got %s", m.Severity)
	}
}

func TestRenderOverrides(t *testing.T) {
	reg := NewRegistry()
	meta := reg.Lookup(detectors.RuleOpenIngress)
	ctx := map[string]string{"resource": "web", "port": "22"}
	ov := &types.Overrides{
		Severity: types.SevCritical,
		Title:    "Security group '{resource}' exposes administrative port {port} to the internet",
	}
	r := Render(meta, ctx, ov)
	if r.Severity != types.SevCritical {
		t.Fatalf("override severity ignored")
	}
	if r.Title != "Security group 'web' exposes administrative port 22 to the internet" {
		t.Fatalf("override title not rendered: %q", r.Title)
	}
	// fields without overrides keep the catalog defaults
	if r.Recommendation == "" || r.DocsURL != meta.DocsURL {
		t.Fatalf("non-overridden fields should fall back to catalog")
	}
}

func TestCatalogCoversDetectors(t *testing.T) {
	reg := NewRegistry()
	ids := map[string]bool{}
	for _, id := range reg.IDs() {
		ids[id] = true
	}
	for _, id := range detectors.IDs() {
		if !ids[id] {
			t.Fatalf("detector rule %s has no catalog entry", id)
		}
	}
}
