package importer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var ErrNoRows = errors.New("workbook has no data rows")

// ReadRows reads the first sheet of an xlsx workbook. Row 1 names the
// columns; every later non-blank row becomes a map keyed by those names.
// Cells beyond the end of a row are absent from its map.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := xl.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "read rows")
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var out []map[string]string
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		m := make(map[string]string, len(header))
		for i, key := range header {
			if key == "" || i >= len(row) {
				continue
			}
			m[key] = row[i]
		}
		out = append(out, m)
	}

	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
