package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type courseListKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Add     key.Binding
	Filter  key.Binding
	Theme   key.Binding
	Profile key.Binding
	Logout  key.Binding
}

var courseListKeys = courseListKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "semester")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
}

// coursesLoadedMsg delivers a fresh snapshot of the registry.
type coursesLoadedMsg struct {
	courses   []domain.CourseRecord
	total     int
	stats     domain.GpaStats
	semesters []string
	err       error
}

// courseListView is the home view while signed in: the GPA summary, the
// semester filter and the course table. Row selection and the add/edit form
// go through a service.CourseEditor.
type courseListView struct {
	state  *SharedState
	editor *service.CourseEditor

	filter    string
	courses   []domain.CourseRecord
	total     int
	stats     domain.GpaStats
	semesters []string
	cursor    int
	offset    int
	err       error

	// pending holds the values bound to the open course form.
	pending *domain.CourseInput
}

func newCourseListView(state *SharedState) *courseListView {
	return &courseListView{
		state:  state,
		editor: service.NewCourseEditor(state.App.Courses),
		filter: service.AllSemesters,
	}
}

func (v *courseListView) Init() tea.Cmd {
	return v.load()
}

func (v *courseListView) load() tea.Cmd {
	courses := v.state.App.Courses
	filter := service.CourseFilter{Semester: v.filter}
	return func() tea.Msg {
		ctx := context.Background()
		var msg coursesLoadedMsg
		all, err := courses.List(ctx, service.CourseFilter{})
		if err != nil {
			msg.err = err
			return msg
		}
		msg.total = len(all)
		if msg.courses, err = courses.List(ctx, filter); err != nil {
			msg.err = err
			return msg
		}
		if msg.stats, err = courses.Stats(ctx); err != nil {
			msg.err = err
			return msg
		}
		msg.semesters, msg.err = courses.ListSemesters(ctx)
		return msg
	}
}

func (v *courseListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		v.apply(msg)
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case deselectMsg:
		v.editor.Deselect()
		return v, nil

	case tea.WindowSizeMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *courseListView) apply(msg coursesLoadedMsg) {
	v.err = msg.err
	if msg.err != nil {
		return
	}
	v.courses = msg.courses
	v.total = msg.total
	v.stats = msg.stats
	v.semesters = msg.semesters

	// A filter whose semester disappeared falls back to all.
	if v.filter != service.AllSemesters && !slices.Contains(v.semesters, v.filter) {
		v.filter = service.AllSemesters
		v.editor.Deselect()
	}
	if id, ok := v.editor.Selection().ID(); ok && !v.editor.Selection().Editing() && v.indexOf(id) < 0 {
		v.editor.Deselect()
	}
	v.clampCursor()
}

func (v *courseListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, courseListKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		v.clampCursor()
		return v, nil

	case key.Matches(msg, courseListKeys.Down):
		if v.cursor < len(v.courses)-1 {
			v.cursor++
		}
		v.clampCursor()
		return v, nil

	case key.Matches(msg, courseListKeys.Select):
		c, ok := v.current()
		if !ok {
			return v, nil
		}
		if err := v.editor.Select(c.ID); err != nil {
			return v, outputCmd(shellError(err))
		}
		return v, nil

	case key.Matches(msg, courseListKeys.Edit):
		return v, v.startEdit()

	case key.Matches(msg, courseListKeys.Delete):
		return v, v.deleteSelected()

	case key.Matches(msg, courseListKeys.Add):
		v.editor.Deselect()
		return v, v.openForm("Add Course", &domain.CourseInput{Semester: v.defaultSemester()})

	case key.Matches(msg, courseListKeys.Filter):
		v.editor.Deselect()
		v.filter = nextSemester(v.semesters, v.filter)
		v.cursor, v.offset = 0, 0
		return v, v.load()

	case key.Matches(msg, courseListKeys.Theme):
		v.editor.Deselect()
		theme, err := v.state.App.Preferences.ToggleTheme(context.Background())
		if err != nil {
			return v, outputCmd(shellError(err))
		}
		formatter.SetTheme(theme)
		return v, nil

	case key.Matches(msg, courseListKeys.Profile):
		v.editor.Deselect()
		return v, pushView(newProfileView(v.state))

	case key.Matches(msg, courseListKeys.Logout):
		v.editor.Deselect()
		return v, submitLogout(v.state.App)
	}
	return v, nil
}

func (v *courseListView) startEdit() tea.Cmd {
	in, err := v.editor.Edit(context.Background())
	if errors.Is(err, domain.ErrInvalidTransition) {
		return outputCmd(formatter.Dim("Select a course with enter first."))
	}
	if err != nil {
		return outputCmd(shellError(err))
	}
	return v.openForm("Edit Course", &in)
}

func (v *courseListView) deleteSelected() tea.Cmd {
	id, err := v.editor.Delete(context.Background())
	if errors.Is(err, domain.ErrInvalidTransition) {
		return outputCmd(formatter.Dim("Select a course with enter first."))
	}
	if err != nil {
		return outputCmd(shellError(err))
	}
	return tea.Batch(v.load(), outputCmd(fmt.Sprintf("Deleted course %d", id)))
}

// openForm pushes the course form. Submitting adds or updates depending on
// the editor mode; cancelling leaves edit mode untouched by the store.
func (v *courseListView) openForm(title string, in *domain.CourseInput) tea.Cmd {
	v.pending = in
	wv := newWizardView(v.state, title, courseForm(in), func() tea.Cmd {
		return v.submitForm()
	}).onCancel(func() {
		_ = v.editor.Cancel()
		v.pending = nil
	})
	return pushView(wv)
}

// submitForm hands the pending form values to the editor.
func (v *courseListView) submitForm() tea.Cmd {
	if v.pending == nil {
		return nil
	}
	in := *v.pending
	v.pending = nil

	mode := v.editor.Mode()
	rec, err := v.editor.Submit(context.Background(), in)
	if err != nil {
		if mode == service.ModeUpdate {
			_ = v.editor.Cancel()
		}
		return outputCmd(shellError(fmt.Errorf("course not saved: %w", err)))
	}

	verb := "Added"
	if mode == service.ModeUpdate {
		verb = "Updated"
	}
	return outputCmd(fmt.Sprintf("%s %s %s", verb, formatter.StyleGreen.Render(rec.Code), rec.Title))
}

func (v *courseListView) current() (domain.CourseRecord, bool) {
	if v.cursor < 0 || v.cursor >= len(v.courses) {
		return domain.CourseRecord{}, false
	}
	return v.courses[v.cursor], true
}

func (v *courseListView) indexOf(id int64) int {
	for i, c := range v.courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// defaultSemester pre-fills the add form from the active filter.
func (v *courseListView) defaultSemester() string {
	if v.filter != service.AllSemesters {
		return v.filter
	}
	return ""
}

// visibleRows is the number of table rows that fit under the summary lines.
func (v *courseListView) visibleRows() int {
	// summary, filter, blank, table header + rule, action hint
	rows := v.state.ContentHeight() - 7
	if rows < 3 {
		return 3
	}
	return rows
}

func (v *courseListView) clampCursor() {
	if v.cursor >= len(v.courses) {
		v.cursor = len(v.courses) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	visible := v.visibleRows()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
}

func (v *courseListView) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatGPASummary(v.stats, v.total) + "\n")
	b.WriteString(formatter.FormatSemesterFilter(v.semesters, v.filter) + "\n\n")

	if v.err != nil {
		b.WriteString(shellError(v.err) + "\n")
		return b.String()
	}

	end := min(v.offset+v.visibleRows(), len(v.courses))
	window := v.courses[v.offset:end]
	sel := v.editor.Selection()
	b.WriteString(formatter.FormatCourseTableWith(window, formatter.CourseTableOptions{
		Cursor:     v.cursor - v.offset,
		Selected:   sel.IsSelected,
		TitleWidth: max(v.state.Width-60, 16),
	}))

	if id, ok := sel.ID(); ok && !sel.Editing() {
		b.WriteString("\n" + formatter.StyleYellow.Render(fmt.Sprintf("Course %d selected", id)) +
			formatter.Dim("  e: edit  d: delete  enter: deselect"))
	}
	if n := len(v.stats.Invalid); n > 0 {
		b.WriteString("\n" + formatter.StyleYellow.Render(
			fmt.Sprintf("%d course(s) excluded from the GPA for invalid grade or credits", n)))
	}
	return b.String()
}

func (v *courseListView) ID() ViewID    { return ViewCourseList }
func (v *courseListView) Title() string { return "Courses" }
func (v *courseListView) ShortHelp() []key.Binding {
	k := courseListKeys
	return []key.Binding{k.Select, k.Edit, k.Delete, k.Add, k.Filter, k.Theme, k.Profile, k.Logout}
}

// nextSemester cycles through the filter values, wrapping to the first.
func nextSemester(semesters []string, current string) string {
	if len(semesters) == 0 {
		return service.AllSemesters
	}
	for i, s := range semesters {
		if s == current {
			return semesters[(i+1)%len(semesters)]
		}
	}
	return semesters[0]
}
