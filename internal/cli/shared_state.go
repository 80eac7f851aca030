package cli

import "github.com/alexanderramin/folio/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Session is nil while signed out.
	Session *domain.Session

	// Terminal dimensions
	Width  int
	Height int
}

// SignedIn reports whether a session is active.
func (s *SharedState) SignedIn() bool {
	return s.Session != nil
}

// sessionChanged reports whether next differs from the held session.
func (s *SharedState) sessionChanged(next *domain.Session) bool {
	switch {
	case s.Session == nil && next == nil:
		return false
	case s.Session == nil || next == nil:
		return true
	default:
		return s.Session.ID != next.ID
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
