package formatter

import (
	"fmt"
	"strings"
)

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

// renderHelpCategory renders a single category section with header and command rows.
func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-28s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the key and command reference shown by ':help'.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Course list keys",
			commands: [][]string{
				{"↑/↓  j/k", "Move the cursor"},
				{"enter", "Select or deselect the row"},
				{"e / d", "Edit or delete the selected row"},
				{"a", "Add a course"},
				{"f", "Cycle the semester filter"},
				{"t", "Toggle light/dark theme"},
				{"p", "Show the profile"},
				{"L", "Sign out"},
				{"q", "Quit"},
			},
		},
		{
			title: "Commands (press :)",
			commands: [][]string{
				{"course list [--semester S]", "Print the course table"},
				{"course stats", "Overall and per-semester GPA"},
				{"course export -o FILE", "Write a CSV or XLSX transcript"},
				{"course rm <id>", "Delete a course"},
				{"whoami", "Show the signed-in user"},
				{"theme [light|dark|toggle]", "Show or change the theme"},
				{"help", "This reference"},
				{"quit", "Leave the shell"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	return b.String()
}
