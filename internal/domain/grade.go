package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Grade is a letter grade from the fixed grading scale.
type Grade string

const (
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeDPlus Grade = "D+"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// ErrUnknownGrade is returned for letters outside the grading scale.
var ErrUnknownGrade = errors.New("unknown grade")

var gradePoints = map[Grade]float64{
	GradeA:     5.0,
	GradeBPlus: 4.5,
	GradeB:     4.0,
	GradeCPlus: 3.5,
	GradeC:     3.0,
	GradeDPlus: 2.5,
	GradeD:     2.0,
	GradeF:     0,
}

var gradeOrder = []Grade{GradeA, GradeBPlus, GradeB, GradeCPlus, GradeC, GradeDPlus, GradeD, GradeF}

// Points returns the grade-point value for g. ok is false when g is not on
// the scale.
func (g Grade) Points() (points float64, ok bool) {
	points, ok = gradePoints[g]
	return points, ok
}

// Valid reports whether g is on the grading scale.
func (g Grade) Valid() bool {
	_, ok := gradePoints[g]
	return ok
}

// Grades returns the scale from highest to lowest.
func Grades() []Grade {
	out := make([]Grade, len(gradeOrder))
	copy(out, gradeOrder)
	return out
}

// ParseGrade trims and upper-cases s and checks it against the scale.
func ParseGrade(s string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGrade, s)
	}
	return g, nil
}
