package domain

import (
	"errors"
	"fmt"
)

// SelectionState is the state of the course list's row selection.
type SelectionState int

const (
	// SelectionIdle: no row selected, the form creates new courses.
	SelectionIdle SelectionState = iota
	// SelectionRowSelected: one row shows its edit/delete actions.
	SelectionRowSelected
	// SelectionEditing: the form holds a record and updates it on submit.
	SelectionEditing
)

func (s SelectionState) String() string {
	switch s {
	case SelectionIdle:
		return "idle"
	case SelectionRowSelected:
		return "row_selected"
	case SelectionEditing:
		return "editing"
	default:
		return fmt.Sprintf("SelectionState(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when an action does not apply to the
// current selection state. The state is left unchanged.
var ErrInvalidTransition = errors.New("invalid selection transition")

// Selection tracks which course row is active and whether the form is in
// create or edit mode. The zero value is Idle.
type Selection struct {
	state SelectionState
	id    int64
}

// State returns the current state.
func (s Selection) State() SelectionState { return s.state }

// ID returns the selected or edited record id. ok is false when Idle.
func (s Selection) ID() (id int64, ok bool) {
	if s.state == SelectionIdle {
		return 0, false
	}
	return s.id, true
}

// IsSelected reports whether id is the selected row.
func (s Selection) IsSelected(id int64) bool {
	return s.state == SelectionRowSelected && s.id == id
}

// Editing reports whether the form is in update mode.
func (s Selection) Editing() bool { return s.state == SelectionEditing }

// Select toggles the selection of a row. Selecting the selected row clears
// the selection; selecting another row moves it.
func (s *Selection) Select(id int64) error {
	switch s.state {
	case SelectionIdle:
		s.state, s.id = SelectionRowSelected, id
	case SelectionRowSelected:
		if s.id == id {
			*s = Selection{}
			return nil
		}
		s.id = id
	default:
		return fmt.Errorf("%w: select while %s", ErrInvalidTransition, s.state)
	}
	return nil
}

// BeginEdit moves the selected row into edit mode and returns its id.
func (s *Selection) BeginEdit() (int64, error) {
	if s.state != SelectionRowSelected {
		return 0, fmt.Errorf("%w: edit while %s", ErrInvalidTransition, s.state)
	}
	s.state = SelectionEditing
	return s.id, nil
}

// Delete clears the selection and returns the id of the row to remove.
func (s *Selection) Delete() (int64, error) {
	if s.state != SelectionRowSelected {
		return 0, fmt.Errorf("%w: delete while %s", ErrInvalidTransition, s.state)
	}
	id := s.id
	*s = Selection{}
	return id, nil
}

// Submit leaves edit mode and returns the id of the edited record.
func (s *Selection) Submit() (int64, error) {
	if s.state != SelectionEditing {
		return 0, fmt.Errorf("%w: submit while %s", ErrInvalidTransition, s.state)
	}
	id := s.id
	*s = Selection{}
	return id, nil
}

// Cancel leaves edit mode without changes.
func (s *Selection) Cancel() error {
	if s.state != SelectionEditing {
		return fmt.Errorf("%w: cancel while %s", ErrInvalidTransition, s.state)
	}
	*s = Selection{}
	return nil
}

// Deselect clears a row selection after an interaction outside the list.
// It does nothing in the other states.
func (s *Selection) Deselect() {
	if s.state == SelectionRowSelected {
		*s = Selection{}
	}
}
