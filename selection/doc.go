// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package selection implements the checkbox-selection state shared by the
import wizard and the fleet/race tables.

A Set holds int members — positional indices for parsed CSV rows (which
have no identity until submitted), stable backend IDs for fleet boats
and races. Toggle, SelectAll and Clear mutate it; AllSelected and
Indeterminate derive the header checkbox state:

	sel := selection.New()
	sel.Toggle(3)
	sel.AllSelected(universe)   // exact set equality, false when empty
	sel.Indeterminate(universe) // non-empty strict subset

Callers must Clear the set whenever the view it indexes changes shape
(filter change, refetch) — stale positions must never survive.
*/
package selection
