package stats

import (
	"slices"
	"strings"
)

// Shape identifies which raw source a transform consumed.
type Shape int

const (
	// ShapeArray is the flat key/value sequence.
	ShapeArray Shape = iota
	// ShapeObject is the labeled map with optional percentiles.
	ShapeObject
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Ordering is the final ordering policy applied to a transform result.
type Ordering int

const (
	// OrderInsertion keeps the order produced while inserting records.
	OrderInsertion Ordering = iota
	// OrderByField sorts records by canonical id.
	OrderByField
)

func (o Ordering) String() string {
	if o == OrderByField {
		return "by-field"
	}
	return "insertion"
}

// OrderingFor picks the ordering policy. Only the object shape under a
// wildcard filter is sorted.
func OrderingFor(shape Shape, f Filter) Ordering {
	if shape == ShapeObject && f.IsWildcard() {
		return OrderByField
	}
	return OrderInsertion
}

// Apply reorders records in place.
func (o Ordering) Apply(records []Record) {
	if o != OrderByField {
		return
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(a.Field, b.Field)
	})
}

// recordList is an index addressed list of records keyed by field, with a
// presence set tracking which fields have been inserted.
type recordList struct {
	records []Record
	added   map[string]struct{}
}

func newRecordList() *recordList {
	return &recordList{
		records: []Record{},
		added:   make(map[string]struct{}),
	}
}

func (l *recordList) index(field string) int {
	return slices.IndexFunc(l.records, func(r Record) bool {
		return r.Field == field
	})
}

func (l *recordList) isAdded(field string) bool {
	_, ok := l.added[field]
	return ok
}

// insert places r at pos, appending when pos is past the end.
func (l *recordList) insert(pos int, r Record) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.records) {
		pos = len(l.records)
	}
	l.records = slices.Insert(l.records, pos, r)
	l.added[r.Field] = struct{}{}
}

// take removes the record at i and clears its presence mark.
func (l *recordList) take(i int) Record {
	r := l.records[i]
	l.records = slices.Delete(l.records, i, i+1)
	delete(l.added, r.Field)
	return r
}
