package ingestion

// Record is one row keyed by column name
type Record map[string]Value

// Get returns the cell for a column, or a missing value if absent
func (r Record) Get(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return NewMissingValue()
}

// Clone copies the record
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered tabular record set as read from an upload
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Record `json:"rows"`
}

// HasColumn reports whether the table declares a column
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the row count
func (t Table) Len() int { return len(t.Rows) }

// IsEmpty reports whether the table has no rows
func (t Table) IsEmpty() bool { return len(t.Rows) == 0 }
