package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"roasdash/domain/ingestion"

	"github.com/xuri/excelize/v2"
)

// Reader parses an uploaded CSV or Excel stream into an ingestion table
type Reader struct {
	fileType string // "xlsx" or "csv"
}

// NewReader picks the parse mode from the uploaded filename's extension.
// Anything that is not .xlsx is treated as CSV.
func NewReader(filename string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{fileType: fileType}
}

// Read parses the stream into a table. The first row is the header; cells
// are trimmed and empty cells become missing values. Type coercion is the
// Cleaner's job, so every non-empty cell arrives as a string value.
func (r *Reader) Read(src io.Reader) (ingestion.Table, error) {
	var rows [][]string
	var err error

	switch r.fileType {
	case "xlsx":
		rows, err = readExcelRows(src)
	default:
		rows, err = readCSVRows(src)
	}
	if err != nil {
		return ingestion.Table{}, err
	}

	if len(rows) < 2 {
		return ingestion.Table{}, fmt.Errorf("file must have a header row and at least one data row")
	}

	return buildTable(rows), nil
}

func readCSVRows(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // ragged rows are dropped later by cleaning
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return rows, nil
}

func readExcelRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel data: %w", err)
	}
	defer f.Close()

	// Always read the first sheet
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func buildTable(rows [][]string) ingestion.Table {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := ingestion.Table{Columns: headers}
	table.Rows = make([]ingestion.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(ingestion.Record, len(headers))
		for j, header := range headers {
			if j < len(row) {
				record[header] = ingestion.NewStringValue(strings.TrimSpace(row[j]))
			} else {
				record[header] = ingestion.NewMissingValue()
			}
		}
		table.Rows = append(table.Rows, record)
	}
	return table
}
