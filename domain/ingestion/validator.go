package ingestion

import (
	"fmt"
	"strings"

	"roasdash/domain/campaign"
)

// SchemaResult is the outcome of validating a table against its kind contract
type SchemaResult struct {
	OK      bool     `json:"ok"`
	Message string   `json:"message"`
	Missing []string `json:"missing_columns,omitempty"`
}

// ValidateSchema checks that every required column for the kind is present.
// Structural presence only: no type or range checks, no side effects.
func ValidateSchema(t Table, kind campaign.DatasetKind) SchemaResult {
	var missing []string
	for _, col := range kind.RequiredColumns() {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return SchemaResult{
			OK:      false,
			Message: fmt.Sprintf("missing required columns: [%s]", strings.Join(missing, ", ")),
			Missing: missing,
		}
	}
	return SchemaResult{OK: true, Message: "schema validation passed"}
}
