package testutil

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
)

var testCodeCounter atomic.Int64

// CourseOption customizes a test course input.
type CourseOption func(*domain.CourseInput)

func WithSemester(s string) CourseOption {
	return func(in *domain.CourseInput) {
		in.Semester = s
	}
}

func WithGrade(g string) CourseOption {
	return func(in *domain.CourseInput) {
		in.Grade = g
	}
}

func WithCredits(c string) CourseOption {
	return func(in *domain.CourseInput) {
		in.Credits = c
	}
}

func WithCode(code string) CourseOption {
	return func(in *domain.CourseInput) {
		in.Code = code
	}
}

// NewTestCourseInput returns a valid course form with a unique code.
func NewTestCourseInput(title string, opts ...CourseOption) domain.CourseInput {
	n := testCodeCounter.Add(1)
	in := domain.CourseInput{
		Semester: "Year 1 Semester 1",
		Code:     "CS" + strconv.FormatInt(100+n, 10),
		Title:    title,
		Grade:    "A",
		Credits:  "3",
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// NewTestCourse returns a stored-shape record, for feeding aggregators and
// formatters directly.
func NewTestCourse(id int64, semester string, grade domain.Grade, credits float64) domain.CourseRecord {
	return domain.CourseRecord{
		ID:        id,
		Semester:  semester,
		Code:      "CS" + strconv.FormatInt(id, 10),
		Title:     "Course " + strconv.FormatInt(id, 10),
		Grade:     grade,
		Credits:   credits,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FixedClock returns a clock that advances by step on every call.
func FixedClock(start time.Time, step time.Duration) func() time.Time {
	var calls atomic.Int64
	return func() time.Time {
		n := calls.Add(1) - 1
		return start.Add(time.Duration(n) * step)
	}
}
