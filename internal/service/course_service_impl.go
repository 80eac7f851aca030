package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
)

type courseService struct {
	store    repository.KVStore
	logger   *slog.Logger
	observer UseCaseObserver
	now      func() time.Time

	mu      sync.Mutex
	loaded  bool
	courses []domain.CourseRecord
}

// NewCourseService creates a CourseService persisting to store. The stored
// list is read on first use; a nil logger discards load warnings.
func NewCourseService(store repository.KVStore, logger *slog.Logger, observers ...UseCaseObserver) CourseService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &courseService{
		store:    store,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// load reads the persisted list once. Malformed data is logged and replaced
// by an empty list. Callers hold s.mu.
func (s *courseService) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	var stored []domain.CourseRecord
	if _, err := repository.GetJSON(ctx, s.store, repository.KeyCourses, &stored); err != nil {
		if !errors.Is(err, repository.ErrMalformed) {
			return fmt.Errorf("loading courses: %w", err)
		}
		s.logger.WarnContext(ctx, "discarding malformed course data", "key", repository.KeyCourses, "error", err)
		stored = nil
	}
	s.courses = stored
	s.loaded = true
	return nil
}

// commit persists next and only then makes it the in-memory list.
func (s *courseService) commit(ctx context.Context, next []domain.CourseRecord) error {
	if next == nil {
		next = []domain.CourseRecord{}
	}
	if err := repository.SetJSON(ctx, s.store, repository.KeyCourses, next); err != nil {
		return fmt.Errorf("saving courses: %w", err)
	}
	s.courses = next
	return nil
}

func (s *courseService) nextID() int64 {
	id := s.now().UnixMilli()
	for _, c := range s.courses {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	return id
}

func (s *courseService) indexOf(id int64) int {
	for i, c := range s.courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *courseService) Add(ctx context.Context, in domain.CourseInput) (rec domain.CourseRecord, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "course.add", startedAt, map[string]any{"code": in.Code}, &err)

	rec, err = in.Parse()
	if err != nil {
		return domain.CourseRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.load(ctx); err != nil {
		return domain.CourseRecord{}, err
	}

	rec.ID = s.nextID()
	rec.CreatedAt = s.now().UTC()

	next := make([]domain.CourseRecord, 0, len(s.courses)+1)
	next = append(next, s.courses...)
	next = append(next, rec)
	if err = s.commit(ctx, next); err != nil {
		return domain.CourseRecord{}, err
	}
	return rec, nil
}

func (s *courseService) Update(ctx context.Context, id int64, in domain.CourseInput) (rec domain.CourseRecord, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "course.update", startedAt, map[string]any{"id": id}, &err)

	rec, err = in.Parse()
	if err != nil {
		return domain.CourseRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.load(ctx); err != nil {
		return domain.CourseRecord{}, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		err = fmt.Errorf("course %d: %w", id, ErrNotFound)
		return domain.CourseRecord{}, err
	}
	rec.ID = id
	rec.CreatedAt = s.courses[idx].CreatedAt

	next := make([]domain.CourseRecord, len(s.courses))
	copy(next, s.courses)
	next[idx] = rec
	if err = s.commit(ctx, next); err != nil {
		return domain.CourseRecord{}, err
	}
	return rec, nil
}

func (s *courseService) Delete(ctx context.Context, id int64) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "course.delete", startedAt, map[string]any{"id": id}, &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.load(ctx); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	next := make([]domain.CourseRecord, 0, len(s.courses)-1)
	next = append(next, s.courses[:idx]...)
	next = append(next, s.courses[idx+1:]...)
	return s.commit(ctx, next)
}

func (s *courseService) Get(ctx context.Context, id int64) (domain.CourseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return domain.CourseRecord{}, err
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.CourseRecord{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return s.courses[idx], nil
}

func (s *courseService) List(ctx context.Context, filter CourseFilter) ([]domain.CourseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.CourseRecord, 0, len(s.courses))
	for _, c := range s.courses {
		if filter.matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f CourseFilter) matches(c domain.CourseRecord) bool {
	if f.Semester == "" || f.Semester == AllSemesters {
		return true
	}
	return c.Semester == f.Semester
}

func (s *courseService) ListSemesters(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var semesters []string
	for _, c := range s.courses {
		if c.Semester == "" || seen[c.Semester] {
			continue
		}
		seen[c.Semester] = true
		semesters = append(semesters, c.Semester)
	}
	sort.Strings(semesters)
	return append([]string{AllSemesters}, semesters...), nil
}

func (s *courseService) Stats(ctx context.Context) (domain.GpaStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return domain.GpaStats{}, err
	}
	return domain.ComputeStats(s.courses), nil
}
