package service

import (
	"context"

	"github.com/alexanderramin/folio/internal/domain"
)

// EditorMode says what a form submission will do.
type EditorMode int

const (
	ModeCreate EditorMode = iota
	ModeUpdate
)

func (m EditorMode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// CourseEditor couples the row selection with the course registry. It is not
// safe for concurrent use; the owning view serializes calls.
type CourseEditor struct {
	courses CourseService
	sel     domain.Selection
}

// NewCourseEditor creates an editor in the Idle state.
func NewCourseEditor(courses CourseService) *CourseEditor {
	return &CourseEditor{courses: courses}
}

// Selection returns a copy of the current selection.
func (e *CourseEditor) Selection() domain.Selection { return e.sel }

// Mode reports whether Submit creates or updates.
func (e *CourseEditor) Mode() EditorMode {
	if e.sel.Editing() {
		return ModeUpdate
	}
	return ModeCreate
}

// Select toggles the selection of a row.
func (e *CourseEditor) Select(id int64) error {
	return e.sel.Select(id)
}

// Deselect clears a row selection.
func (e *CourseEditor) Deselect() {
	e.sel.Deselect()
}

// Edit enters edit mode for the selected row and returns the form pre-filled
// with its values. The state is unchanged if the record cannot be read.
func (e *CourseEditor) Edit(ctx context.Context) (domain.CourseInput, error) {
	probe := e.sel
	id, err := probe.BeginEdit()
	if err != nil {
		return domain.CourseInput{}, err
	}
	rec, err := e.courses.Get(ctx, id)
	if err != nil {
		return domain.CourseInput{}, err
	}
	e.sel = probe
	return domain.InputFromRecord(rec), nil
}

// Delete removes the selected row and returns to Idle.
func (e *CourseEditor) Delete(ctx context.Context) (int64, error) {
	probe := e.sel
	id, err := probe.Delete()
	if err != nil {
		return 0, err
	}
	if err := e.courses.Delete(ctx, id); err != nil {
		return 0, err
	}
	e.sel = probe
	return id, nil
}

// Submit creates a course, or updates the edited one in update mode. On
// failure the editor keeps its state so the form can be corrected.
func (e *CourseEditor) Submit(ctx context.Context, in domain.CourseInput) (domain.CourseRecord, error) {
	if !e.sel.Editing() {
		rec, err := e.courses.Add(ctx, in)
		if err != nil {
			return domain.CourseRecord{}, err
		}
		e.sel.Deselect()
		return rec, nil
	}

	id, _ := e.sel.ID()
	rec, err := e.courses.Update(ctx, id, in)
	if err != nil {
		return domain.CourseRecord{}, err
	}
	_, _ = e.sel.Submit()
	return rec, nil
}

// Cancel leaves edit mode without saving.
func (e *CourseEditor) Cancel() error {
	return e.sel.Cancel()
}
