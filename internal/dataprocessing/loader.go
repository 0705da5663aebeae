package dataprocessing

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/IhorStoiko/Projekt/internal/errors"
)

// Column names of the sales table
const (
	ColOrderID         = "order_id"
	ColOrderDate       = "order_date"
	ColOrderAmount     = "order_amount"
	ColCustomerID      = "customer_id"
	ColProductCategory = "product_category"
	ColStatus          = "status"
	ColQuantity        = "quantity"
	ColUnitPrice       = "unit_price"
)

// RequiredColumns must be present in every input file
var RequiredColumns = []string{ColOrderDate, ColOrderAmount, ColCustomerID, ColProductCategory, ColStatus}

// Table is a raw CSV table with a normalized header. Cells are untouched strings.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewTable builds a table from a header and rows, normalizing header names
// to trimmed lower case
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{
		Header: make([]string, len(header)),
		Rows:   rows,
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		t.Header[i] = name
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
	return t
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the position of a named column
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// HasColumn reports whether the table carries the named column
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the trimmed cell of row in the named column, or "" when the
// column is absent
func (t *Table) Value(row []string, name string) string {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// RequireColumns fails with a validation error naming every missing column
func (t *Table) RequireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.NewValidationError(fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", "))).
			WithContext("columns", missing)
	}
	return nil
}

// LoadCSV reads a sales CSV file into a Table
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("sales data file").WithContext("path", path)
		}
		return nil, errors.NewStorageError("failed to open sales data", err).WithContext("path", path)
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr.WithContext("path", path)
		}
		return nil, err
	}
	return table, nil
}

// ReadTable parses CSV content with a header row and checks the required columns
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if stderrors.As(err, &perr) {
			return nil, errors.NewParsingError("malformed CSV", err).WithContext("row", perr.Line)
		}
		return nil, errors.NewParsingError("malformed CSV", err)
	}
	if len(records) == 0 {
		return nil, errors.NewValidationError("sales data is empty, a header row is required")
	}

	table := NewTable(records[0], records[1:])
	if err := table.RequireColumns(RequiredColumns...); err != nil {
		return nil, err
	}
	return table, nil
}
