package imports

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Template is the static description of an entity's import fields, returned
// by the discovery endpoint and rendered into downloadable spreadsheets.
// Required field names carry a trailing asterisk and date fields a
// parenthetical format hint, matching what the validators accept back.
type Template struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
	Example  Record   `json:"example"`
}

// Columns returns the spreadsheet header row: required fields first, then
// optional ones.
func (t Template) Columns() []string {
	cols := make([]string, 0, len(t.Required)+len(t.Optional))
	cols = append(cols, t.Required...)
	return append(cols, t.Optional...)
}

// Xlsx renders the template as a one-sheet workbook with a header row and one
// example row.
func (t Template) Xlsx() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, col := range t.Columns() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "render template header")
		}
		if err := f.SetCellStr(sheet, cell, col); err != nil {
			return nil, errors.Wrap(err, "render template header")
		}

		cell, err = excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, errors.Wrap(err, "render template example")
		}
		if err := f.SetCellStr(sheet, cell, t.Example.Str(col)); err != nil {
			return nil, errors.Wrap(err, "render template example")
		}
	}

	return f, nil
}

// RecordsFromXlsx reads the first sheet of an uploaded workbook into records.
// The first row is the header; trailing asterisks and format hints on header
// names are stripped so a filled-in template round-trips. Dotted headers
// (e.g. "geolocation.latitude") populate a nested object. Fully empty rows
// are skipped.
func RecordsFromXlsx(f *excelize.File) ([]Record, error) {
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded sheet")
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = cleanHeader(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := make(Record, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[i])
			if v != "" {
				empty = false
			}
			if parent, child, ok := strings.Cut(h, "."); ok {
				sub := r.Sub(parent)
				if sub == nil {
					sub = Record{}
					r[parent] = sub
				}
				sub[child] = v
				continue
			}
			r[h] = v
		}
		if !empty {
			records = append(records, r)
		}
	}

	return records, nil
}

func cleanHeader(h string) string {
	h = strings.TrimSpace(h)
	if i := strings.Index(h, " ("); i >= 0 {
		h = h[:i]
	}
	return strings.TrimSuffix(strings.TrimSpace(h), "*")
}
