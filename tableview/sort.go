// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tableview

import (
	"sort"

	"github.com/danielhkuo/regatta-console/models"
	"github.com/danielhkuo/regatta-console/timeparse"
)

// Fleet table columns.
const (
	FleetSortYID   = "yid"
	FleetSortName  = "name"
	FleetSortSail  = "sail"
	FleetSortClass = "class"
	FleetSortCDL   = "cdl"
	FleetSortGPH   = "gph"
)

// Race table columns.
const (
	RaceSortID      = "id"
	RaceSortName    = "name"
	RaceSortStart   = "start"
	RaceSortClass   = "class"
	RaceSortScoring = "scoring"
)

// SortSpec is the table sort state: one active column and a direction.
type SortSpec struct {
	Column     string `json:"column"`
	Descending bool   `json:"descending"`
}

// Click applies a header click: the same column flips direction, a new
// column becomes active ascending.
func (s *SortSpec) Click(column string) {
	if column == s.Column {
		s.Descending = !s.Descending
		return
	}
	s.Column = column
	s.Descending = false
}

func compareStrings(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// compareFloatPtr orders present values numerically and places absent
// values after every present one. "No rating" is an explicit
// sorts-last policy, not a zero.
func compareFloatPtr(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

// SortFleet returns a sorted copy of the fleet. Unknown columns fall
// back to YID order.
func SortFleet(fleet []models.Boat, spec SortSpec) []models.Boat {
	out := make([]models.Boat, len(fleet))
	copy(out, fleet)

	var c func(a, b models.Boat) int
	switch spec.Column {
	case FleetSortName:
		c = func(a, b models.Boat) int { return compareStrings(a.YachtName, b.YachtName) }
	case FleetSortSail:
		c = func(a, b models.Boat) int { return compareStrings(derefString(a.SailNo), derefString(b.SailNo)) }
	case FleetSortClass:
		c = func(a, b models.Boat) int { return compareStrings(a.ClassID, b.ClassID) }
	case FleetSortCDL:
		c = func(a, b models.Boat) int { return compareFloatPtr(a.CDL, b.CDL) }
	case FleetSortGPH:
		c = func(a, b models.Boat) int { return compareFloatPtr(a.GPH, b.GPH) }
	default:
		c = func(a, b models.Boat) int { return a.YID - b.YID }
	}

	sort.SliceStable(out, func(i, j int) bool {
		r := c(out[i], out[j])
		if spec.Descending {
			return r > 0
		}
		return r < 0
	})
	return out
}

// SortRaces returns a sorted copy of the races. Start times go through
// timeparse; unparseable starts sort after parseable ones, falling
// back to the raw string among themselves.
func SortRaces(races []models.RaceData, spec SortSpec) []models.RaceData {
	out := make([]models.RaceData, len(races))
	copy(out, races)

	var c func(a, b models.RaceData) int
	switch spec.Column {
	case RaceSortName:
		c = func(a, b models.RaceData) int { return compareStrings(a.RaceName, b.RaceName) }
	case RaceSortStart:
		c = compareStartTimes
	case RaceSortClass:
		c = func(a, b models.RaceData) int { return compareStrings(a.ClassID, b.ClassID) }
	case RaceSortScoring:
		c = func(a, b models.RaceData) int { return compareStrings(a.ScoringType, b.ScoringType) }
	default:
		c = func(a, b models.RaceData) int { return a.RaceID - b.RaceID }
	}

	sort.SliceStable(out, func(i, j int) bool {
		r := c(out[i], out[j])
		if spec.Descending {
			return r > 0
		}
		return r < 0
	})
	return out
}

func compareStartTimes(a, b models.RaceData) int {
	ta, errA := timeparse.StartTime(a.StartTime)
	tb, errB := timeparse.StartTime(b.StartTime)
	switch {
	case errA == nil && errB == nil:
		if ta.Before(tb) {
			return -1
		}
		if ta.After(tb) {
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return compareStrings(a.StartTime, b.StartTime)
}
