package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubjectListHasOneEmptyRow(t *testing.T) {
	l := NewSubjectList()
	require.Equal(t, 1, l.Len())
	assert.Equal(t, Subject{}, l.Row(0))
}

func TestAppendAddsEmptyRow(t *testing.T) {
	l := SubjectListOf(Subject{Grade: "A", Credit: "3"})
	for i := 0; i < 5; i++ {
		before := l.Len()
		l.Append()
		require.Equal(t, before+1, l.Len())
		assert.Equal(t, Subject{}, l.Row(l.Len()-1))
	}
	assert.Equal(t, Subject{Grade: "A", Credit: "3"}, l.Row(0))
}

func TestUpdateReplacesField(t *testing.T) {
	l := NewSubjectList()
	l.Update(0, FieldGrade, "A+")
	l.Update(0, FieldCredit, "4")
	assert.Equal(t, Subject{Grade: "A+", Credit: "4"}, l.Row(0))

	l.Update(0, FieldGrade, "")
	assert.Equal(t, Subject{Grade: "", Credit: "4"}, l.Row(0))

	// Anything is accepted at edit time.
	l.Update(0, FieldCredit, "lots")
	assert.Equal(t, "lots", l.Row(0).Credit)
}

func TestRemovePreservesOrder(t *testing.T) {
	l := SubjectListOf(
		Subject{Grade: "O", Credit: "1"},
		Subject{Grade: "A", Credit: "2"},
		Subject{Grade: "B", Credit: "3"},
		Subject{Grade: "C", Credit: "4"},
	)
	l.Remove(1)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, []Subject{
		{Grade: "O", Credit: "1"},
		{Grade: "B", Credit: "3"},
		{Grade: "C", Credit: "4"},
	}, l.Rows())

	l.Remove(2)
	l.Remove(0)
	assert.Equal(t, []Subject{{Grade: "B", Credit: "3"}}, l.Rows())
}

func TestRemoveLastRowLeavesEmptyList(t *testing.T) {
	l := NewSubjectList()
	l.Remove(0)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Rows())
	assert.False(t, Calculate(l.Rows()).Valid())

	l.Append()
	assert.Equal(t, 1, l.Len())
}

func TestOutOfRangePanics(t *testing.T) {
	l := NewSubjectList()
	assert.PanicsWithValue(t, IndexError{Op: "update", Index: 1, Len: 1}, func() {
		l.Update(1, FieldGrade, "A")
	})
	assert.PanicsWithValue(t, IndexError{Op: "remove", Index: -1, Len: 1}, func() {
		l.Remove(-1)
	})
	assert.Panics(t, func() { l.Row(3) })
	assert.Panics(t, func() { l.Update(0, Field("name"), "x") })

	l.Remove(0)
	assert.Panics(t, func() { l.Remove(0) })
}

func TestIndexErrorMessage(t *testing.T) {
	err := IndexError{Op: "remove", Index: 4, Len: 2}
	assert.Equal(t, "remove: row index 4 out of range [0,2)", err.Error())
}

func TestRowsReturnsCopy(t *testing.T) {
	l := SubjectListOf(Subject{Grade: "A", Credit: "3"})
	r := l.Rows()
	r[0].Grade = "F"
	assert.Equal(t, "A", l.Row(0).Grade)
}

func TestReset(t *testing.T) {
	l := SubjectListOf(Subject{Grade: "A", Credit: "3"}, Subject{Grade: "B", Credit: "2"})
	l.Reset()
	assert.Equal(t, []Subject{{}}, l.Rows())
}
