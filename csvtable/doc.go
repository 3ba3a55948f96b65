// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package csvtable parses delimited text for the boat import wizard and
projects rows through a column mapping.

# Parsing

Parse reads a CSV stream whose first row is the header:

	tbl, err := csvtable.Parse(file)

Ragged rows are tolerated: short rows pad missing trailing fields with
"", long rows drop the extra cells. Malformed lines are collected in
tbl.Errors instead of failing the whole parse, so the caller can show a
warning and continue with the rows that did parse.

# Mapping and filtering

A Mapping assigns header columns to the boat fields (YachtName and
ClassID required, SailNo optional). A Filter keeps rows whose column
equals a value exactly; an incomplete filter passes everything:

	rows := csvtable.FilteredRows(tbl.Rows, filter)
	boats := csvtable.DeriveBoats(rows, selected, mapping)

DeriveBoats returns nothing until the mapping is complete — callers
gate the import action on Mapping.Complete().
*/
package csvtable
