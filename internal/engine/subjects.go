package engine

import "fmt"

// SubjectList is the ordered set of rows on the form. Insertion order is
// display order. It is not safe for concurrent use.
type SubjectList struct {
	rows []Subject
}

// NewSubjectList returns a list holding a single empty row.
func NewSubjectList() *SubjectList {
	return &SubjectList{rows: []Subject{{}}}
}

// SubjectListOf returns a list holding a copy of rows.
func SubjectListOf(rows ...Subject) *SubjectList {
	l := &SubjectList{rows: make([]Subject, len(rows))}
	copy(l.rows, rows)
	return l
}

func (l *SubjectList) Len() int { return len(l.rows) }

// Row returns the row at i. It panics with an IndexError when i is out of range.
func (l *SubjectList) Row(i int) Subject {
	checkIndex("row", i, len(l.rows))
	return l.rows[i]
}

// Rows returns a copy of the rows in display order.
func (l *SubjectList) Rows() []Subject {
	out := make([]Subject, len(l.rows))
	copy(out, l.rows)
	return out
}

// Update replaces one field of the row at i. Any value is accepted; invalid
// content only matters when calculating.
func (l *SubjectList) Update(i int, field Field, value string) {
	checkIndex("update", i, len(l.rows))
	if !field.IsValid() {
		panic(fmt.Sprintf("update: unknown field %q", field))
	}
	if field == FieldGrade {
		l.rows[i].Grade = value
	} else {
		l.rows[i].Credit = value
	}
}

// Append adds an empty row at the end.
func (l *SubjectList) Append() {
	l.rows = append(l.rows, Subject{})
}

// Remove deletes the row at i and shifts the rows after it up by one.
// Removing the last remaining row leaves the list empty.
func (l *SubjectList) Remove(i int) {
	checkIndex("remove", i, len(l.rows))
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
}

// Reset puts the list back to its initial single empty row.
func (l *SubjectList) Reset() {
	l.rows = []Subject{{}}
}
