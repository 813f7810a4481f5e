package rules

import (
	"sort"

	"github.com/iacguard/iacguard/internal/types"
)

// Metadata is the immutable template record for one rule id. Title,
// Description and Recommendation may carry {name} placeholders resolved from
// a candidate's context at render time.
type Metadata struct {
	ID             string
	Title          string
	Severity       types.Severity
	Description    string
	Recommendation string
	DocsURL        string
}

// Registry maps rule ids to metadata. It is built once and never mutated, so
// it is safe to share across goroutines and to substitute in tests.
type Registry struct {
	byID map[string]Metadata
}

// NewRegistry builds the default catalog.
func NewRegistry() *Registry {
	return NewRegistryWith(catalog)
}

// NewRegistryWith builds a registry from an explicit metadata list.
func NewRegistryWith(entries []Metadata) *Registry {
	m := make(map[string]Metadata, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return &Registry{byID: m}
}

// Lookup resolves metadata for a rule id. It never fails: an unregistered id
// yields a synthetic record whose title is the id itself at the lowest
// severity, so unknown rule families are tolerated end to end.
func (r *Registry) Lookup(id string) Metadata {
	if m, ok := r.byID[id]; ok {
		return m
	}
	return Metadata{ID: id, Title: id, Severity: types.SevInfo}
}

// IDs returns the registered rule ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Rendered is the human-facing text for one detection, after template
// expansion and override application.
type Rendered struct {
	Rule           string
	Title          string
	Severity       types.Severity
	Description    string
	Recommendation string
	DocsURL        string
}

// Render expands the metadata templates against a candidate's context.
// Per-candidate overrides win over catalog defaults field by field, letting
// one rule express resource-specific wording without a new rule id.
func Render(meta Metadata, ctx map[string]string, ov *types.Overrides) Rendered {
	title := meta.Title
	sev := meta.Severity
	desc := meta.Description
	rec := meta.Recommendation
	docs := meta.DocsURL
	if ov != nil {
		if ov.Title != "" {
			title = ov.Title
		}
		if ov.Severity != "" {
			sev = ov.Severity
		}
		if ov.Description != "" {
			desc = ov.Description
		}
		if ov.Recommendation != "" {
			rec = ov.Recommendation
		}
		if ov.DocsURL != "" {
			docs = ov.DocsURL
		}
	}
	return Rendered{
		Rule:           meta.ID,
		Title:          expand(title, ctx),
		Severity:       sev,
		Description:    expand(desc, ctx),
		Recommendation: expand(rec, ctx),
		DocsURL:        docs,
	}
}
