package notification

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// WelcomeBody renders the welcome email for a new employee.
// Every value is HTML-escaped.
func WelcomeBody(firstname, employeeID, company string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h2>Welcome, "+templ.EscapeString(firstname)+"!</h2>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<p>Your employee ID: <strong>"+templ.EscapeString(employeeID)+"</strong></p>"); err != nil {
			return err
		}
		_, err := io.WriteString(w, "<p>We are happy to have you at "+templ.EscapeString(company)+".</p>")
		return err
	})
}
