package report

import (
	"encoding/json"
	"io"

	"github.com/iacguard/iacguard/internal/types"
)

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep types.ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
