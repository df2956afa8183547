// Package templates renders the transactional emails sent by the worker.
package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

const Welcome = "welcome"

var welcomeHTML = htmltpl.Must(htmltpl.New(Welcome).Parse(`
<html>
  <body style="font-family: sans-serif;">
    <h2>Welcome to Hireloop{{if .FirstName}}, {{.FirstName}}{{end}}!</h2>
    <p>Your candidate profile is live. Add a headline, your city, and a resume
    so recruiters can find you.</p>
  </body>
</html>`))

var welcomeText = texttpl.Must(texttpl.New(Welcome).Parse(
	`Welcome to Hireloop{{if .FirstName}}, {{.FirstName}}{{end}}!

Your candidate profile is live. Add a headline, your city, and a resume so recruiters can find you.
`))

// Render returns subject, text, and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var tb, hb bytes.Buffer
		if err := welcomeText.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		if err := welcomeHTML.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		return "Welcome to Hireloop", tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
