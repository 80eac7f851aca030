package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnassignedSemester labels courses recorded without a semester.
const UnassignedSemester = "Unassigned"

// ErrInvalidCredits is returned when a credit value is not a positive number.
var ErrInvalidCredits = errors.New("invalid credits")

// CourseRecord is one academic course entry.
type CourseRecord struct {
	ID        int64     `json:"id"`
	Semester  string    `json:"semester"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Grade     Grade     `json:"grade"`
	Credits   float64   `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}

// CourseInput is the raw form submission for a course. All fields arrive as
// text and are checked by Parse.
type CourseInput struct {
	Semester string
	Code     string
	Title    string
	Grade    string
	Credits  string
}

// SemesterLabel returns the grouping label, substituting UnassignedSemester
// for an empty semester.
func (c CourseRecord) SemesterLabel() string {
	if strings.TrimSpace(c.Semester) == "" {
		return UnassignedSemester
	}
	return c.Semester
}

// Validate reports whether the record can take part in GPA sums.
func (c CourseRecord) Validate() error {
	if !c.Grade.Valid() {
		return fmt.Errorf("course %d: %w: %q", c.ID, ErrUnknownGrade, c.Grade)
	}
	if !validCredits(c.Credits) {
		return fmt.Errorf("course %d: %w: %v", c.ID, ErrInvalidCredits, c.Credits)
	}
	return nil
}

// UnmarshalJSON accepts credits as either a JSON number or a numeric string.
// Unparsable credits decode to 0 so the record is excluded from GPA sums
// instead of failing the whole list. createdAt is optional.
func (c *CourseRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int64           `json:"id"`
		Semester  string          `json:"semester"`
		Code      string          `json:"code"`
		Title     string          `json:"title"`
		Grade     Grade           `json:"grade"`
		Credits   json.RawMessage `json:"credits"`
		CreatedAt string          `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = CourseRecord{
		ID:       raw.ID,
		Semester: raw.Semester,
		Code:     raw.Code,
		Title:    raw.Title,
		Grade:    raw.Grade,
		Credits:  decodeCredits(raw.Credits),
	}
	if raw.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw.CreatedAt); err == nil {
			c.CreatedAt = t
		}
	}
	return nil
}

func decodeCredits(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
	return 0
}

func validCredits(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseCredits parses a credit value and requires a positive finite number.
func ParseCredits(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCredits, s)
	}
	if !validCredits(v) {
		return 0, fmt.Errorf("%w: %q must be a positive number", ErrInvalidCredits, s)
	}
	return v, nil
}

// Parse validates the input and returns a record carrying its fields. ID and
// CreatedAt are left for the caller to assign.
func (in CourseInput) Parse() (CourseRecord, error) {
	semester := strings.TrimSpace(in.Semester)
	code := strings.TrimSpace(in.Code)
	title := strings.TrimSpace(in.Title)

	switch {
	case semester == "":
		return CourseRecord{}, invalidField("semester", "semester is required", nil)
	case code == "":
		return CourseRecord{}, invalidField("code", "course code is required", nil)
	case title == "":
		return CourseRecord{}, invalidField("title", "course title is required", nil)
	case strings.TrimSpace(in.Grade) == "":
		return CourseRecord{}, invalidField("grade", "grade is required", nil)
	case strings.TrimSpace(in.Credits) == "":
		return CourseRecord{}, invalidField("credits", "credits are required", nil)
	}

	grade, err := ParseGrade(in.Grade)
	if err != nil {
		return CourseRecord{}, invalidField("grade", fmt.Sprintf("%q is not one of %s", in.Grade, gradeList()), err)
	}
	credits, err := ParseCredits(in.Credits)
	if err != nil {
		return CourseRecord{}, invalidField("credits", fmt.Sprintf("%q is not a positive number", in.Credits), err)
	}

	return CourseRecord{
		Semester: semester,
		Code:     code,
		Title:    title,
		Grade:    grade,
		Credits:  credits,
	}, nil
}

// InputFromRecord pre-fills a form from an existing record. A record stored
// without a semester is pre-filled with its "Unassigned" group label.
func InputFromRecord(c CourseRecord) CourseInput {
	return CourseInput{
		Semester: c.SemesterLabel(),
		Code:     c.Code,
		Title:    c.Title,
		Grade:    string(c.Grade),
		Credits:  FormatCredits(c.Credits),
	}
}

// FormatCredits renders credits without trailing zeros ("3", "1.5").
func FormatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func gradeList() string {
	parts := make([]string, len(gradeOrder))
	for i, g := range gradeOrder {
		parts[i] = string(g)
	}
	return strings.Join(parts, ", ")
}
