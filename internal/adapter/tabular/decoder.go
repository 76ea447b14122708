// Package tabular decodes uploaded booking files (CSV and Excel) into the
// string-keyed rows consumed by bulk import.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"logibook/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

type Decoder struct{}

var _ interfaces.IRowDecoder = (*Decoder)(nil)

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode picks the codec from the file extension. The first row is the
// header; every data row is keyed by header name, short rows padded with
// empty strings.
func (d *Decoder) Decode(filename string, r io.Reader) (interfaces.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return decodeCSV(r)
	case ".xlsx", ".xls":
		return decodeExcel(r)
	default:
		return interfaces.Table{}, interfaces.ErrUnsupportedFileType
	}
}

func decodeCSV(r io.Reader) (interfaces.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return interfaces.Table{}, fmt.Errorf("reading csv: %w", err)
	}
	return tableFromRecords(records), nil
}

func decodeExcel(r io.Reader) (interfaces.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return interfaces.Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return interfaces.Table{}, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return interfaces.Table{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return tableFromRecords(records), nil
}

func tableFromRecords(records [][]string) interfaces.Table {
	if len(records) == 0 {
		return interfaces.Table{}
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = strings.TrimSpace(c)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return interfaces.Table{Columns: columns, Rows: rows}
}
