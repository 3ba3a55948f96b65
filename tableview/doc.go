// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tableview implements the sortable table state shared by the
fleet and race views.

A SortSpec holds the single active column and direction. Click applies
the header-click transition:

	spec.Click("name") // new column: ascending
	spec.Click("name") // same column: direction flips

SortFleet and SortRaces return stably sorted copies — records with
equal keys keep their input order in both directions, because
descending negates the comparison and never reorders ties.

Absent values have explicit policies: nil strings compare as "", and
nil ratings (CDL, GPH) sort after every present value regardless of
direction, so unrated boats always group at the end of a rating sort.
*/
package tableview
