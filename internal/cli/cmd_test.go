package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/alexanderramin/folio/internal/teatest"
	"github.com/alexanderramin/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

var testAuth = service.AccountConfig{
	AdminUsername: "admin",
	AdminPassword: "password123",
	HashCost:      bcrypt.MinCost,
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteKVStore(database)
	tx := repository.NewSQLiteTransactor(testutil.NewTestUoW(database))

	return &App{
		Courses:     service.NewCourseService(store, nil),
		Accounts:    service.NewAccountService(store, tx, testAuth, nil),
		Preferences: service.NewPreferenceService(store),
		Profile:     config.Default().Profile,
	}
}

// signIn opens an admin session.
func signIn(t *testing.T, app *App) {
	t.Helper()
	_, err := app.Accounts.SignIn(context.Background(), "admin", "password123")
	require.NoError(t, err)
}

// seedCourses records Scenario A: GPA 4.60 over two courses.
func seedCourses(t *testing.T, app *App) []domain.CourseRecord {
	t.Helper()
	ctx := context.Background()
	a, err := app.Courses.Add(ctx, testutil.NewTestCourseInput("Programming", testutil.WithCode("CSC1100"), testutil.WithGrade("A"), testutil.WithCredits("3")))
	require.NoError(t, err)
	b, err := app.Courses.Add(ctx, testutil.NewTestCourseInput("Discrete Maths", testutil.WithCode("MTH1101"), testutil.WithGrade("B"), testutil.WithCredits("2")))
	require.NoError(t, err)
	return []domain.CourseRecord{a, b}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return teatest.StripANSI(buf.String()), err
}

// --- Root command ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "course")
	assert.Contains(t, out, "login")
}

// --- Login gate ---

func TestCourseCmd_RequiresSession(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "course", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotSignedIn)
	assert.Contains(t, err.Error(), "folio login")
}

func TestLoginCmd_Admin(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "login", "-u", "admin", "-p", "password123")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as admin")

	out, err = executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "(admin)")
}

func TestLoginCmd_BadPassword(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "login", "-u", "admin", "-p", "nope")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginCmd_MissingFlagsNonInteractive(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "login", "-u", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestSignupCmd_CreatesAccountAndSignsIn(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "signup", "-u", "wangolo", "-e", "w@ucu.ac.ug", "-p", "secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as wangolo")

	sess, err := app.Accounts.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wangolo", sess.Username)
	assert.False(t, sess.IsAdmin)
}

func TestSignupCmd_ConfirmMismatch(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "signup", "-u", "wangolo", "-e", "w@ucu.ac.ug", "-p", "secret1", "--confirm", "secret2")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestLogoutCmd(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	out, err := executeCmd(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")

	out, err = executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

// --- Course commands ---

func TestCourseAddCmd(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	out, err := executeCmd(t, app, "course", "add",
		"--semester", "Year 1 Semester 1", "--code", "CSC1100",
		"--title", "Programming", "--grade", "B+", "--credits", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Added CSC1100 Programming")

	courses, err := app.Courses.List(context.Background(), service.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, domain.GradeBPlus, courses[0].Grade)
	assert.Equal(t, 4.0, courses[0].Credits)
}

func TestCourseAddCmd_RequiredFlags(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	_, err := executeCmd(t, app, "course", "add", "--code", "CSC1100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestCourseAddCmd_CreditsOutOfRange(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	_, err := executeCmd(t, app, "course", "add",
		"--semester", "Y1S1", "--code", "X", "--title", "X", "--grade", "A", "--credits", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 6")
}

func TestCourseAddCmd_UnknownGrade(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	_, err := executeCmd(t, app, "course", "add",
		"--semester", "Y1S1", "--code", "X", "--title", "X", "--grade", "E", "--credits", "3")
	assert.ErrorIs(t, err, domain.ErrUnknownGrade)
}

func TestCourseListCmd_Empty(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	out, err := executeCmd(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses added yet")
	assert.Contains(t, out, "0.00")
}

func TestCourseListCmd_WithData(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seedCourses(t, app)

	out, err := executeCmd(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CSC1100")
	assert.Contains(t, out, "MTH1101")
	assert.Contains(t, out, "4.60")
	assert.Contains(t, out, "Total Courses: 2")
}

func TestCourseListCmd_SemesterFilter(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seedCourses(t, app)
	_, err := app.Courses.Add(context.Background(), testutil.NewTestCourseInput("Databases",
		testutil.WithCode("CSC2100"), testutil.WithSemester("Year 2 Semester 1")))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "course", "list", "--semester", "Year 2 Semester 1")
	require.NoError(t, err)
	assert.Contains(t, out, "CSC2100")
	assert.NotContains(t, out, "CSC1100")
}

func TestCourseEditCmd_OnlyChangedFlags(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seeded := seedCourses(t, app)
	id := seeded[0].ID

	out, err := executeCmd(t, app, "course", "edit", strconv.FormatInt(id, 10), "--grade", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated CSC1100")

	got, err := app.Courses.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeC, got.Grade)
	assert.Equal(t, "Programming", got.Title)
	assert.Equal(t, 3.0, got.Credits)
	assert.Equal(t, seeded[0].CreatedAt, got.CreatedAt)
}

func TestCourseEditCmd_StoredWithoutSemester(t *testing.T) {
	store := repository.NewMemoryKVStore()
	ctx := context.Background()
	legacy := `[{"id":7,"semester":"","code":"LEG1","title":"Legacy","grade":"A","credits":3,"createdAt":"2024-01-01T00:00:00Z"}]`
	require.NoError(t, store.Set(ctx, repository.KeyCourses, []byte(legacy)))
	app := &App{
		Courses:     service.NewCourseService(store, nil),
		Accounts:    service.NewAccountService(store, store, testAuth, nil),
		Preferences: service.NewPreferenceService(store),
		Profile:     config.Default().Profile,
	}
	signIn(t, app)

	out, err := executeCmd(t, app, "course", "edit", "7", "--grade", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated LEG1")

	got, err := app.Courses.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeB, got.Grade)
	assert.Equal(t, domain.UnassignedSemester, got.SemesterLabel())
}

func TestCourseEditCmd_UnknownID(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	_, err := executeCmd(t, app, "course", "edit", "999", "--grade", "C")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCourseRmCmd_Idempotent(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seeded := seedCourses(t, app)
	id := strconv.FormatInt(seeded[1].ID, 10)

	out, err := executeCmd(t, app, "course", "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted course")

	out, err = executeCmd(t, app, "course", "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to delete")

	courses, err := app.Courses.List(context.Background(), service.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestCourseRmCmd_InvalidID(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	_, err := executeCmd(t, app, "course", "rm", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid course id")
}

func TestCourseShowCmd(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seeded := seedCourses(t, app)

	out, err := executeCmd(t, app, "course", "show", strconv.FormatInt(seeded[0].ID, 10))
	require.NoError(t, err)
	assert.Contains(t, out, "CSC1100 PROGRAMMING")
	assert.Contains(t, out, "Grade:")
}

func TestCourseSemestersCmd(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seedCourses(t, app)

	out, err := executeCmd(t, app, "course", "semesters")
	require.NoError(t, err)
	assert.Equal(t, "all\nYear 1 Semester 1\n", out)
}

func TestCourseStatsCmd_JSON(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seedCourses(t, app)

	out, err := executeCmd(t, app, "course", "stats", "--json")
	require.NoError(t, err)

	var stats domain.GpaStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 4.6, stats.Overall)
	require.Len(t, stats.BySemester, 1)
	assert.Equal(t, 2, stats.BySemester[0].CourseCount)
}

func TestCourseStatsCmd_Text(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seedCourses(t, app)

	out, err := executeCmd(t, app, "course", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Year 1 Semester 1")
	assert.Contains(t, out, "4.60")
}

func TestCourseExportCmd_CSVToStdout(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seedCourses(t, app)

	out, err := executeCmd(t, app, "course", "export", "-o", "-")
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewBufferString(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(records), 3)
	assert.Equal(t, "CSC1100", records[1][1])
	last := records[len(records)-1]
	assert.Equal(t, "Overall", last[0])
	assert.Equal(t, "4.60", last[3])
}

func TestCourseExportCmd_XLSXFile(t *testing.T) {
	app := testApp(t)
	signIn(t, app)
	seedCourses(t, app)

	path := filepath.Join(t.TempDir(), "transcript.xlsx")
	out, err := executeCmd(t, app, "course", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 course(s)")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	code, err := f.GetCellValue("Transcript", "B2")
	require.NoError(t, err)
	assert.Equal(t, "CSC1100", code)
}

func TestCourseExportCmd_RejectsXLSXToStdout(t *testing.T) {
	app := testApp(t)
	signIn(t, app)

	_, err := executeCmd(t, app, "course", "export", "-o", "-", "--format", "xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout")
}

func TestExportFormat(t *testing.T) {
	tests := []struct {
		format, output, want string
		wantErr              bool
	}{
		{"", "t.csv", "csv", false},
		{"", "T.XLSX", "xlsx", false},
		{"", "-", "csv", false},
		{"XLSX", "out.bin", "xlsx", false},
		{"pdf", "t.pdf", "", true},
	}
	for _, tt := range tests {
		got, err := exportFormat(tt.format, tt.output)
		if tt.wantErr {
			assert.Error(t, err, "%s %s", tt.format, tt.output)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

// --- Theme and profile ---

func TestThemeCmd(t *testing.T) {
	app := testApp(t)
	t.Cleanup(func() { formatter.SetTheme(domain.ThemeLight) })

	out, err := executeCmd(t, app, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: light")

	out, err = executeCmd(t, app, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to dark")

	out, err = executeCmd(t, app, "theme", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to light")

	_, err = executeCmd(t, app, "theme", "sepia")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProfileCmd(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "profile")
	require.NoError(t, err)
	assert.Contains(t, out, app.Profile.Name)
	assert.Contains(t, out, "ABOUT ME")
	assert.Contains(t, out, "USEFUL LINKS")
}

func TestProfileCmd_NotGated(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "profile")
	assert.NoError(t, err)
}

func TestCourseCmd_SessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.db")
	open := func() *App {
		database, err := db.OpenDB(path)
		require.NoError(t, err)
		t.Cleanup(func() { database.Close() })
		store := repository.NewSQLiteKVStore(database)
		tx := repository.NewSQLiteTransactor(testutil.NewTestUoW(database))
		return &App{
			Courses:     service.NewCourseService(store, nil),
			Accounts:    service.NewAccountService(store, tx, testAuth, nil),
			Preferences: service.NewPreferenceService(store),
		}
	}

	first := open()
	signIn(t, first)
	seedCourses(t, first)

	second := open()
	out, err := executeCmd(t, second, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "4.60")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
