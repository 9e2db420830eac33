package ingestion

import "roasdash/domain/campaign"

// CoercionReport records why rows were dropped during cleaning.
// The drop-don't-raise contract stays, but the loss is observable.
type CoercionReport struct {
	Kind           campaign.DatasetKind `json:"kind"`
	RowsIn         int                  `json:"rows_in"`
	RowsKept       int                  `json:"rows_kept"`
	DroppedMissing int                  `json:"dropped_missing_required"`
	DroppedNumeric int                  `json:"dropped_failed_numeric"`
	DroppedDate    int                  `json:"dropped_failed_date"`
}

// Dropped returns the total number of rows removed
func (r CoercionReport) Dropped() int {
	return r.DroppedMissing + r.DroppedNumeric + r.DroppedDate
}

// Clean returns a table with the same columns where every surviving row has
// non-missing required fields of the correct semantic type. Row order among
// survivors is preserved. Cleaning an already-clean table is a no-op.
func Clean(t Table, kind campaign.DatasetKind) (Table, CoercionReport) {
	report := CoercionReport{Kind: kind, RowsIn: t.Len()}

	required := kind.RequiredColumns()
	numeric := kind.NumericColumns()
	dates := kind.DateColumns()

	out := Table{Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([]Record, 0, t.Len())

rows:
	for _, row := range t.Rows {
		// Step 1: drop rows with missing required values
		for _, col := range required {
			if row.Get(col).IsMissing {
				report.DroppedMissing++
				continue rows
			}
		}

		// Step 2: lossy coercion; failures become missing
		clean := row.Clone()
		for _, col := range numeric {
			clean[col] = CoerceNumeric(row.Get(col))
		}
		for _, col := range dates {
			clean[col] = CoerceDate(row.Get(col))
		}

		// Step 3: drop rows left missing after coercion
		for _, col := range numeric {
			if clean[col].IsMissing {
				report.DroppedNumeric++
				continue rows
			}
		}
		for _, col := range dates {
			if clean[col].IsMissing {
				report.DroppedDate++
				continue rows
			}
		}

		out.Rows = append(out.Rows, clean)
	}

	report.RowsKept = len(out.Rows)
	return out, report
}
