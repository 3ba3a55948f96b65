// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvtable

// Mapping assigns source columns to the three boat fields. An empty
// string means the role is unset. YachtName and ClassID must both be
// mapped before any boat can be derived; SailNo is optional.
type Mapping struct {
	YachtName string `json:"yacht_name"`
	SailNo    string `json:"sail_no"`
	ClassID   string `json:"class_id"`
}

// Complete reports whether both required roles are mapped.
func (m Mapping) Complete() bool {
	return m.YachtName != "" && m.ClassID != ""
}

// Filter selects rows whose Column value equals Value exactly. When
// either side is empty the filter is incomplete and passes everything.
type Filter struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Complete reports whether both sides of the filter are set.
func (f Filter) Complete() bool {
	return f.Column != "" && f.Value != ""
}

// Boat is a derived import record. SailNo is nil when the role is
// unmapped or the source value is empty.
type Boat struct {
	YachtName string  `json:"YachtName"`
	SailNo    *string `json:"SailNo,omitempty"`
	ClassID   string  `json:"ClassId"`
}

// FilteredRows returns the rows passing the filter, in input order.
// An incomplete filter passes all rows unchanged; a filter matching
// nothing returns an empty slice, not an error.
func FilteredRows(rows []Row, f Filter) []Row {
	if !f.Complete() {
		return rows
	}
	out := []Row{}
	for _, row := range rows {
		if row[f.Column] == f.Value {
			out = append(out, row)
		}
	}
	return out
}

// DistinctValues returns the unique values of column across rows, in
// order of first occurrence.
func DistinctValues(rows []Row, column string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, row := range rows {
		v := row[column]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// DeriveBoats projects the selected rows through the mapping. The
// mapping must be complete; if it is not, the result is empty
// regardless of the selection. Indices outside the filtered view are
// skipped.
func DeriveBoats(filtered []Row, selected []int, m Mapping) []Boat {
	boats := []Boat{}
	if !m.Complete() {
		return boats
	}
	for _, i := range selected {
		if i < 0 || i >= len(filtered) {
			continue
		}
		row := filtered[i]
		boat := Boat{
			YachtName: row[m.YachtName],
			ClassID:   row[m.ClassID],
		}
		if m.SailNo != "" {
			if v := row[m.SailNo]; v != "" {
				boat.SailNo = &v
			}
		}
		boats = append(boats, boat)
	}
	return boats
}
