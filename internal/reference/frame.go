package reference

import (
	"fmt"
	"strings"
)

// HeaderKey identifies a column in the operator's two-level header:
// a group label on the first header row and a field label on the
// second. Blank header cells are empty strings.
type HeaderKey struct {
	Group string
	Field string
}

func (k HeaderKey) String() string {
	switch {
	case k.Group == "":
		return k.Field
	case k.Field == "":
		return k.Group
	default:
		return k.Group + "/" + k.Field
	}
}

// RawTable is the source table as read: the two header rows turned into
// per-column keys, plus the data rows below them.
type RawTable struct {
	Keys []HeaderKey
	Rows [][]string
}

// Frame is a small ordered column store over string cells.
type Frame struct {
	Names []string
	Cols  [][]string
}

// Select picks the given columns in order and returns them as a Frame
// under the supplied canonical names. A key that is absent from the
// table is an error; there is no partial selection.
func (t *RawTable) Select(keys []HeaderKey, names []string) (*Frame, error) {
	frame := &Frame{}
	for i, key := range keys {
		idx := -1
		for j, have := range t.Keys {
			if have == key {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("reference table: missing column (%s)", key)
		}
		col := make([]string, len(t.Rows))
		for r, row := range t.Rows {
			if idx < len(row) {
				col[r] = strings.TrimSpace(row[idx])
			}
		}
		frame.Names = append(frame.Names, names[i])
		frame.Cols = append(frame.Cols, col)
	}
	return frame, nil
}

func (f *Frame) RowCount() int {
	if len(f.Cols) == 0 {
		return 0
	}
	return len(f.Cols[0])
}

// Column returns the values of the named column. With duplicate names
// the last occurrence wins, matching DropDuplicateColumns.
func (f *Frame) Column(name string) ([]string, bool) {
	for i := len(f.Names) - 1; i >= 0; i-- {
		if f.Names[i] == name {
			return f.Cols[i], true
		}
	}
	return nil, false
}

// DropDuplicateColumns removes columns whose name occurs again later in
// the frame, keeping the last occurrence. A frame without duplicates is
// left untouched.
func (f *Frame) DropDuplicateColumns() {
	names := f.Names[:0]
	cols := f.Cols[:0]
	for i := range f.Names {
		last := true
		for j := i + 1; j < len(f.Names); j++ {
			if f.Names[j] == f.Names[i] {
				last = false
				break
			}
		}
		if last {
			names = append(names, f.Names[i])
			cols = append(cols, f.Cols[i])
		}
	}
	f.Names = names
	f.Cols = cols
}
