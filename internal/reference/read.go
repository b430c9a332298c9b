package reference

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadTable reads the operator's two-level-header export. The operator
// publishes the static network model both as xlsx and as csv; the
// format is picked by file extension.
func ReadTable(path string) (*RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readXLSX(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported reference table format: %s", path)
	}
}

func readXLSX(path string) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("reference table %s: no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return tableFromRows(path, rows)
}

func readCSV(path string) (*RawTable, error) {
	blob, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	reader := csv.NewReader(blob)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return tableFromRows(path, rows)
}

func tableFromRows(path string, rows [][]string) (*RawTable, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("reference table %s: missing two-level header", path)
	}
	if len(rows) == 2 {
		return nil, fmt.Errorf("reference table %s: no data rows", path)
	}

	groups := rows[0]
	fields := rows[1]
	width := len(groups)
	if len(fields) > width {
		width = len(fields)
	}

	keys := make([]HeaderKey, width)
	for i := 0; i < width; i++ {
		keys[i] = HeaderKey{Group: headerCell(groups, i), Field: headerCell(fields, i)}
	}

	return &RawTable{Keys: keys, Rows: rows[2:]}, nil
}

func headerCell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
