// Package sorter orders the rows of a log by their first field.
package sorter

import (
	"sort"

	pkgerrors "github.com/pkg/errors"

	logerrors "github.com/theketchio/logsort/internal/errors"
)

// Row is one parsed record. Rows of a Dataset may have different lengths.
type Row []string

// Key returns field 0 of the row, the sort key.
func (r Row) Key() (string, bool) {
	if len(r) == 0 {
		return "", false
	}
	return r[0], true
}

// Dataset holds every row of an input in input order.
type Dataset []Row

// Sort orders ds by field 0 using ordinal string comparison. Rows with equal keys keep their
// relative order. A row without fields fails the whole sort and leaves ds untouched.
func Sort(ds Dataset) error {
	for i, row := range ds {
		if _, ok := row.Key(); !ok {
			return logerrors.NewMalformedRow("", 0, pkgerrors.Wrapf(logerrors.ErrEmptyRow, "row %d", i+1))
		}
	}
	if len(ds) < 2 {
		return nil
	}
	sort.Stable(&recordSorter{ds})
	return nil
}

// IsSorted reports whether ds is ordered by field 0.
func IsSorted(ds Dataset) bool {
	return sort.IsSorted(&recordSorter{ds})
}

// Sorts rows by their first column.
type recordSorter struct {
	rows Dataset
}

func (s *recordSorter) Swap(i, j int) {
	s.rows[j], s.rows[i] = s.rows[i], s.rows[j]
}

func (s *recordSorter) Len() int {
	return len(s.rows)
}

func (s *recordSorter) Less(i, j int) bool {
	return s.rows[i][0] < s.rows[j][0]
}
