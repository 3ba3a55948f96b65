// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvtable

import (
	"encoding/csv"
	"errors"
	"io"
)

// Row is one parsed record, keyed by header column name.
type Row map[string]string

// ParseError records a row that could not be parsed. The surrounding
// rows are still returned; the caller decides whether to proceed.
type ParseError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Table is the result of parsing a delimited text file with a header row.
type Table struct {
	Header []string     `json:"header"`
	Rows   []Row        `json:"rows"`
	Errors []ParseError `json:"errors,omitempty"`
}

// Parse reads CSV text with a header row and returns one Row per data
// line, keyed by the header columns. Rows shorter than the header pad
// missing trailing fields with ""; cells beyond the header are dropped.
// Malformed lines are recorded in Table.Errors and skipped rather than
// aborting the parse.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	tbl := &Table{}

	header, err := reader.Read()
	if err == io.EOF {
		return tbl, nil
	}
	if err != nil {
		return nil, err
	}
	tbl.Header = header

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			tbl.Errors = append(tbl.Errors, ParseError{Line: line, Message: err.Error()})
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// HasColumn reports whether name is one of the table's header columns.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Header {
		if col == name {
			return true
		}
	}
	return false
}
