package service

import (
	"context"

	"github.com/alexanderramin/folio/internal/domain"
)

// AllSemesters is the semester filter value that matches every course.
const AllSemesters = "all"

// CourseFilter narrows List. An empty Semester or AllSemesters matches all.
type CourseFilter struct {
	Semester string
}

// CourseService owns the persisted course list.
type CourseService interface {
	Add(ctx context.Context, in domain.CourseInput) (domain.CourseRecord, error)
	Update(ctx context.Context, id int64, in domain.CourseInput) (domain.CourseRecord, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.CourseRecord, error)
	List(ctx context.Context, filter CourseFilter) ([]domain.CourseRecord, error)
	ListSemesters(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (domain.GpaStats, error)
}

// AccountService is the mock authentication gate.
type AccountService interface {
	SignIn(ctx context.Context, username, password string) (domain.Session, error)
	SignUp(ctx context.Context, in domain.SignUpInput) (domain.Session, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (domain.Session, error)
}

// PreferenceService stores display preferences.
type PreferenceService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}
