package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
)

// FormatSession describes the signed-in user.
func FormatSession(s domain.Session) string {
	var b strings.Builder
	name := StyleGreen.Render(s.Username)
	if s.IsAdmin {
		name += " " + StylePurple.Render("(admin)")
	}
	fmt.Fprintf(&b, "Signed in as %s\n", name)
	if s.Email != "" {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Email:"), s.Email)
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("Since:"), s.SignedInAt.Local().Format("Jan 2, 2006 15:04"))
	return b.String()
}
