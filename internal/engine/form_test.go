package engine

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormWorkflow(t *testing.T) {
	f := NewForm()
	require.Equal(t, 1, f.Len())
	assert.False(t, f.Result().Valid())

	f.Update(0, FieldGrade, "O")
	f.Update(0, FieldCredit, "4")
	f.Append()
	f.Update(1, FieldGrade, "A")
	f.Update(1, FieldCredit, "3")
	f.Append()
	f.Update(2, FieldGrade, "B+")
	f.Update(2, FieldCredit, "2")

	r := f.Calculate()
	assert.Equal(t, "8.67", r.String())
	assert.Equal(t, r, f.Result())

	// Editing leaves the shown result until the next calculate.
	f.Remove(0)
	assert.Equal(t, "8.67", f.Result().String())
	assert.Equal(t, "7.60", f.Calculate().String())
}

func TestFormCalculateIdempotent(t *testing.T) {
	f := NewForm(WithSubjects(Subject{Grade: "F", Credit: "3"}, Subject{Credit: "2"}))
	first := f.Calculate()
	second := f.Calculate()
	assert.Equal(t, first, second)
	assert.Equal(t, "4.00", second.String())
}

func TestFormEmptyListHasNoResult(t *testing.T) {
	f := NewForm(WithSubjects(Subject{Grade: "A", Credit: "3"}))
	assert.True(t, f.Calculate().Valid())
	f.Remove(0)
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, NoResult, f.Calculate())
	assert.Equal(t, PlaceholderText, f.Result().Display())
}

func TestFormThemeIndependentOfResult(t *testing.T) {
	f := NewForm(WithSubjects(Subject{Grade: "A", Credit: "3"}))
	before := f.Calculate()

	assert.False(t, f.Dark())
	assert.True(t, f.ToggleTheme())
	assert.True(t, f.Dark())
	assert.Equal(t, before, f.Calculate())
	assert.False(t, f.ToggleTheme())

	assert.True(t, NewForm(WithDark(true)).Dark())
}

func TestFormReset(t *testing.T) {
	f := NewForm(WithDark(true), WithSubjects(Subject{Grade: "A", Credit: "3"}, Subject{}))
	f.Calculate()
	f.Reset()
	assert.Equal(t, []Subject{{}}, f.Subjects())
	assert.False(t, f.Result().Valid())
	assert.True(t, f.Dark())
}

func TestFormLogsCalculation(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	f := NewForm(WithLogger(log), WithSubjects(Subject{Grade: "O", Credit: "4"}))
	f.Append()
	f.Calculate()

	out := buf.String()
	assert.Contains(t, out, `"component":"form"`)
	assert.Contains(t, out, `"message":"row appended"`)
	assert.Contains(t, out, `"sgpa":"10.00"`)
}
