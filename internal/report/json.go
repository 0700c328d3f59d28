// # internal/report/json.go
package report

import (
	"encoding/json"
	"io"

	"codehealth/internal/analyzer"
)

// JSONRenderer writes the full report as indented JSON. Field names come
// from the report struct tags and are stable.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, report *analyzer.ProjectReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
