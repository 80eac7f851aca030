package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// captureCobraOutput runs a command through the Cobra tree and captures
// output. Prompts are disabled: a huh form cannot run inside the TUI's
// alternate screen, so missing flags fail with the usual error instead.
func captureCobraOutput(ctx context.Context, app *App, args []string) string {
	shellApp := *app
	shellApp.IsInteractive = nil

	var buf bytes.Buffer
	root := NewRootCmd(&shellApp)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	if execErr := root.ExecuteContext(ctx); execErr != nil {
		errMsg := execErr.Error()
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(shellError(execErr))
		if hint := hintForMissingFlag(errMsg); hint != "" {
			fmt.Fprint(&buf, "\n"+hint)
		}
		if strings.Contains(errMsg, "unknown command") && len(args) > 0 {
			if alt := suggestAlternatives(app, args[0]); alt != "" {
				fmt.Fprint(&buf, "\n"+alt)
			}
		}
	}

	return strings.TrimRight(buf.String(), "\n")
}

// hintForMissingFlag points at the form shortcuts when a command that has
// one fails for a missing flag.
func hintForMissingFlag(errMsg string) string {
	if !strings.Contains(errMsg, "required flag") && !strings.Contains(errMsg, "are required") {
		return ""
	}
	return formatter.Dim("Hint: press esc and use 'a' on the course list, or run 'login'/'signup' without flags for a form.")
}

// commandNames lists the top-level command names of root plus the shell
// built-ins, and the subcommand names of each group.
func commandNames(root *cobra.Command) ([]string, map[string][]string) {
	names := []string{"help", "clear", "exit", "quit"}
	subs := make(map[string][]string)
	for _, c := range root.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		names = append(names, c.Name())
		for _, sc := range c.Commands() {
			if !sc.Hidden {
				subs[c.Name()] = append(subs[c.Name()], sc.Name())
			}
		}
	}
	return names, subs
}
