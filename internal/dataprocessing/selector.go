package dataprocessing

import "flightcli/internal/errors"

// MiddleDate returns the date at the floor-division midpoint of the
// sorted count table. For an even number of dates this is the first
// element of the upper half, not a true median. An empty table yields
// an EMPTY_RESULT error; the caller must have counted at least one row.
func MiddleDate(table CountTable) (string, error) {
	if len(table) == 0 {
		return "", errors.EmptyResult("cannot select a middle date: no rows were counted")
	}
	return table[len(table)/2].Date, nil
}
