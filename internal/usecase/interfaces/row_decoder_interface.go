package interfaces

import (
	"errors"
	"io"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// Table is an uploaded tabular dataset: the header row plus one string map
// per data row, keyed by column name.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// IRowDecoder abstracts the file formats accepted by bulk import (CSV and
// spreadsheets). Implementations pick the codec from the file name and
// return ErrUnsupportedFileType for anything else.
type IRowDecoder interface {
	Decode(filename string, r io.Reader) (Table, error)
}
