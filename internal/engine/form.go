package engine

import "github.com/rs/zerolog"

// Form owns everything the calculator view shows: the subject rows, the
// last calculated result and the dark-theme flag. Every method runs to
// completion synchronously; a Form must only be used from one goroutine.
type Form struct {
	subjects *SubjectList
	result   Result
	dark     bool
	log      zerolog.Logger
}

type FormOption func(*Form)

// WithLogger routes operation logs to log. The default is zerolog.Nop().
func WithLogger(log zerolog.Logger) FormOption {
	return func(f *Form) { f.log = log.With().Str("component", "form").Logger() }
}

// WithDark starts the form in the dark theme.
func WithDark(dark bool) FormOption {
	return func(f *Form) { f.dark = dark }
}

// WithSubjects starts the form with rows instead of a single empty row.
func WithSubjects(rows ...Subject) FormOption {
	return func(f *Form) { f.subjects = SubjectListOf(rows...) }
}

func NewForm(opts ...FormOption) *Form {
	f := &Form{
		subjects: NewSubjectList(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Len() int            { return f.subjects.Len() }
func (f *Form) Row(i int) Subject   { return f.subjects.Row(i) }
func (f *Form) Subjects() []Subject { return f.subjects.Rows() }

// Update sets one field of row i. See SubjectList.Update.
func (f *Form) Update(i int, field Field, value string) {
	f.subjects.Update(i, field, value)
	f.log.Debug().Int("row", i).Str("field", string(field)).Str("value", value).Msg("row updated")
}

func (f *Form) Append() {
	f.subjects.Append()
	f.log.Debug().Int("rows", f.subjects.Len()).Msg("row appended")
}

func (f *Form) Remove(i int) {
	f.subjects.Remove(i)
	f.log.Debug().Int("row", i).Int("rows", f.subjects.Len()).Msg("row removed")
}

// Reset clears the rows back to one empty row and drops the displayed result.
// The theme is left alone.
func (f *Form) Reset() {
	f.subjects.Reset()
	f.result = NoResult
	f.log.Debug().Msg("form reset")
}

// Calculate recomputes the result from the current rows, stores it for
// display and returns it.
func (f *Form) Calculate() Result {
	t := TallyOf(f.subjects.rows)
	f.result = t.Result()
	f.log.Info().
		Int("rows", len(t.Rows)).
		Int64("credits", t.TotalCredits).
		Int64("points", t.TotalPoints).
		Str("sgpa", f.result.String()).
		Msg("calculated")
	return f.result
}

// Result is the value from the last Calculate. Edits do not change it until
// the next Calculate.
func (f *Form) Result() Result { return f.result }

func (f *Form) Dark() bool { return f.dark }

// ToggleTheme flips the display theme and returns the new dark flag.
func (f *Form) ToggleTheme() bool {
	f.dark = !f.dark
	f.log.Debug().Bool("dark", f.dark).Msg("theme toggled")
	return f.dark
}
