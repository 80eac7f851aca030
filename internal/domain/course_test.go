package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CourseInput {
	return CourseInput{Semester: "Year 1 Semester 1", Code: "CS101", Title: "Intro to CS", Grade: "B+", Credits: "3"}
}

func TestCourseInput_Parse_Valid(t *testing.T) {
	rec, err := validInput().Parse()
	require.NoError(t, err)
	assert.Equal(t, "Year 1 Semester 1", rec.Semester)
	assert.Equal(t, "CS101", rec.Code)
	assert.Equal(t, "Intro to CS", rec.Title)
	assert.Equal(t, GradeBPlus, rec.Grade)
	assert.Equal(t, 3.0, rec.Credits)
	assert.Zero(t, rec.ID, "id is assigned by the registry")
}

func TestCourseInput_Parse_NormalizesGradeCase(t *testing.T) {
	in := validInput()
	in.Grade = " b+ "
	rec, err := in.Parse()
	require.NoError(t, err)
	assert.Equal(t, GradeBPlus, rec.Grade)
}

func TestCourseInput_Parse_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CourseInput)
		field  string
		target error
	}{
		{"missing semester", func(in *CourseInput) { in.Semester = " " }, "semester", nil},
		{"missing code", func(in *CourseInput) { in.Code = "" }, "code", nil},
		{"missing title", func(in *CourseInput) { in.Title = "" }, "title", nil},
		{"missing grade", func(in *CourseInput) { in.Grade = "" }, "grade", nil},
		{"missing credits", func(in *CourseInput) { in.Credits = "" }, "credits", nil},
		{"unknown grade", func(in *CourseInput) { in.Grade = "E" }, "grade", ErrUnknownGrade},
		{"non-numeric credits", func(in *CourseInput) { in.Credits = "three" }, "credits", ErrInvalidCredits},
		{"zero credits", func(in *CourseInput) { in.Credits = "0" }, "credits", ErrInvalidCredits},
		{"negative credits", func(in *CourseInput) { in.Credits = "-2" }, "credits", ErrInvalidCredits},
		{"NaN credits", func(in *CourseInput) { in.Credits = "NaN" }, "credits", ErrInvalidCredits},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := in.Parse()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestInputFromRecord_RoundTrip(t *testing.T) {
	rec, err := validInput().Parse()
	require.NoError(t, err)

	in := InputFromRecord(rec)
	assert.Equal(t, validInput(), in)
}

func TestInputFromRecord_EmptySemesterUsesLabel(t *testing.T) {
	rec := CourseRecord{ID: 1, Code: "X1", Title: "Legacy", Grade: GradeB, Credits: 2}

	in := InputFromRecord(rec)
	assert.Equal(t, UnassignedSemester, in.Semester)
	_, err := in.Parse()
	assert.NoError(t, err)
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "3", FormatCredits(3))
	assert.Equal(t, "1.5", FormatCredits(1.5))
}

func TestCourseRecord_SemesterLabel(t *testing.T) {
	assert.Equal(t, "Sem1", CourseRecord{Semester: "Sem1"}.SemesterLabel())
	assert.Equal(t, UnassignedSemester, CourseRecord{}.SemesterLabel())
	assert.Equal(t, UnassignedSemester, CourseRecord{Semester: "  "}.SemesterLabel())
}

func TestCourseRecord_UnmarshalJSON_StringCredits(t *testing.T) {
	data := `{"id":1700000000000,"semester":"Sem1","code":"CS101","title":"Intro","grade":"A","credits":"3","createdAt":"2024-02-01T10:00:00.000Z"}`

	var rec CourseRecord
	require.NoError(t, json.Unmarshal([]byte(data), &rec))
	assert.Equal(t, int64(1700000000000), rec.ID)
	assert.Equal(t, 3.0, rec.Credits)
	assert.Equal(t, GradeA, rec.Grade)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), rec.CreatedAt.UTC())
	assert.NoError(t, rec.Validate())
}

func TestCourseRecord_UnmarshalJSON_UnparsableCreditsFlagged(t *testing.T) {
	data := `{"id":2,"semester":"Sem1","code":"CS102","title":"Data","grade":"B","credits":"abc"}`

	var rec CourseRecord
	require.NoError(t, json.Unmarshal([]byte(data), &rec))
	assert.Equal(t, 0.0, rec.Credits)
	assert.ErrorIs(t, rec.Validate(), ErrInvalidCredits)
	assert.True(t, rec.CreatedAt.IsZero(), "missing createdAt decodes to zero time")
}

func TestCourseRecord_MarshalRoundTrip(t *testing.T) {
	rec := CourseRecord{
		ID: 42, Semester: "Sem1", Code: "MTH", Title: "Calculus", Grade: GradeC, Credits: 4,
		CreatedAt: time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC),
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var got CourseRecord
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, rec, got)
}
