package engine

// Grade is a letter-grade token as entered on a subject row.
type Grade string

const (
	GradeO     Grade = "O"
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeP     Grade = "P"
	GradeF     Grade = "F"
)

// gradeOrder is the selector order shown to the user.
var gradeOrder = []Grade{GradeO, GradeAPlus, GradeA, GradeBPlus, GradeB, GradeC, GradeP, GradeF}

// F awarding 4 points is kept as-is; changing it alters every result that contains an F.
var gradePoints = map[Grade]int{
	GradeO:     10,
	GradeAPlus: 9,
	GradeA:     8,
	GradeBPlus: 7,
	GradeB:     6,
	GradeC:     5,
	GradeP:     0,
	GradeF:     4,
}

func (g Grade) IsValid() bool {
	_, ok := gradePoints[g]
	return ok
}

// Point returns the grade point for g. ok is false for any token outside the
// table, including the empty token; a false ok is never the same as a zero point.
func (g Grade) Point() (point int, ok bool) {
	point, ok = gradePoints[g]
	return point, ok
}

// Grades returns the recognized grade tokens in selector order.
func Grades() []Grade {
	out := make([]Grade, len(gradeOrder))
	copy(out, gradeOrder)
	return out
}

const (
	MinCredit = 1
	MaxCredit = 7
)

// Field names a column of a subject row.
type Field string

const (
	FieldGrade  Field = "grade"
	FieldCredit Field = "credit"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldGrade, FieldCredit:
		return true
	default:
		return false
	}
}

// Subject is one course row. Either field may be empty; incomplete rows stay
// in the list and are skipped when calculating.
type Subject struct {
	Grade  string
	Credit string
}

// Complete reports whether the row counts towards the average.
func (s Subject) Complete() bool {
	_, _, ok := s.weight()
	return ok
}

// weight returns the parsed credit and grade point. ok is false unless both are valid.
func (s Subject) weight() (credit, point int, ok bool) {
	point, gradeOK := Grade(s.Grade).Point()
	credit, creditOK := ParseCredit(s.Credit)
	if !gradeOK || !creditOK {
		return 0, 0, false
	}
	return credit, point, true
}
