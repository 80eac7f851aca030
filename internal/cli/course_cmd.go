package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/export"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "course",
		Aliases:           []string{"courses"},
		Short:             "Record courses and review your GPA",
		PersistentPreRunE: requireSession(app),
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseEditCmd(app),
		newCourseRemoveCmd(app),
		newCourseShowCmd(app),
		newCourseSemestersCmd(app),
		newCourseStatsCmd(app),
		newCourseExportCmd(app),
	)

	return cmd
}

func parseCourseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid course id %q", s)
	}
	return id, nil
}

func bindCourseFlags(fs *pflag.FlagSet, in *domain.CourseInput) {
	fs.StringVar(&in.Semester, "semester", "", "Semester label, e.g. \"Year 1 Semester 1\"")
	fs.StringVar(&in.Code, "code", "", "Course code")
	fs.StringVar(&in.Title, "title", "", "Course title")
	fs.StringVar(&in.Grade, "grade", "", "Letter grade ("+strings.Join(gradeNames(), ", ")+")")
	fs.StringVar(&in.Credits, "credits", "", "Credit units")
}

func gradeNames() []string {
	grades := domain.Grades()
	names := make([]string, len(grades))
	for i, g := range grades {
		names[i] = string(g)
	}
	return names
}

func newCourseAddCmd(app *App) *cobra.Command {
	var in domain.CourseInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormCredits(in.Credits); err != nil {
				return err
			}
			rec, err := app.Courses.Add(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s\n",
				formatter.StyleGreen.Render(rec.Code), rec.Title, formatter.Dim(fmt.Sprintf("(id %d)", rec.ID)))
			return nil
		},
	}

	bindCourseFlags(cmd.Flags(), &in)
	for _, f := range []string{"semester", "code", "title", "grade", "credits"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var semester string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			courses, err := app.Courses.List(ctx, service.CourseFilter{Semester: semester})
			if err != nil {
				return err
			}
			stats, err := app.Courses.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			all, err := app.Courses.List(ctx, service.CourseFilter{})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatGPASummary(stats, len(all)))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatCourseTable(courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&semester, "semester", service.AllSemesters, "Only show this semester")
	return cmd
}

func newCourseEditCmd(app *App) *cobra.Command {
	var in domain.CourseInput

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a course; unset flags keep their values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCourseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			existing, err := app.Courses.Get(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("credits") {
				if err := validateFormCredits(in.Credits); err != nil {
					return err
				}
			}
			merged := domain.InputFromRecord(existing)
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "semester":
					merged.Semester = in.Semester
				case "code":
					merged.Code = in.Code
				case "title":
					merged.Title = in.Title
				case "grade":
					merged.Grade = in.Grade
				case "credits":
					merged.Credits = in.Credits
				}
			})

			rec, err := app.Courses.Update(ctx, id, merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", formatter.StyleGreen.Render(rec.Code), rec.Title)
			return nil
		},
	}

	bindCourseFlags(cmd.Flags(), &in)
	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a course",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCourseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if _, err := app.Courses.Get(ctx, id); errors.Is(err, service.ErrNotFound) {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("No course with id %d; nothing to delete.", id)))
				return nil
			}
			if err := app.Courses.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted course %d\n", id)
			return nil
		},
	}
}

func newCourseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCourseID(args[0])
			if err != nil {
				return err
			}
			rec, err := app.Courses.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseDetail(rec))
			return nil
		},
	}
}

func newCourseSemestersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "semesters",
		Short: "List semester labels in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters, err := app.Courses.ListSemesters(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range semesters {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newCourseStatsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Overall and per-semester GPA",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Courses.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newCourseExportCmd(app *App) *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a transcript as CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			courses, err := app.Courses.List(ctx, service.CourseFilter{})
			if err != nil {
				return err
			}
			stats, err := app.Courses.Stats(ctx)
			if err != nil {
				return err
			}

			kind, err := exportFormat(format, output)
			if err != nil {
				return err
			}

			if output == "-" {
				return writeTranscript(cmd.OutOrStdout(), kind, courses, stats)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := writeTranscript(f, kind, courses, stats); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d course(s) to %s\n", len(courses), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout")
	cmd.Flags().StringVar(&format, "format", "", "csv or xlsx (default: from the file extension)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func exportFormat(format, output string) (string, error) {
	if format == "" {
		if strings.EqualFold(filepath.Ext(output), ".xlsx") {
			return "xlsx", nil
		}
		return "csv", nil
	}
	switch f := strings.ToLower(format); f {
	case "csv", "xlsx":
		if f == "xlsx" && output == "-" {
			return "", errors.New("xlsx cannot be written to stdout")
		}
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv or xlsx)", format)
	}
}

func writeTranscript(w io.Writer, format string, courses []domain.CourseRecord, stats domain.GpaStats) error {
	if format == "xlsx" {
		return export.WriteXLSX(w, courses, stats)
	}
	return export.WriteCSV(w, courses, stats)
}
