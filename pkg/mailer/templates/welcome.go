package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
)

var welcomeHTML = htmltpl.Must(htmltpl.New("welcome").Parse(`
<html>
  <body style="font-family: sans-serif;">
    <h2>Welcome, {{.Username}}!</h2>
    <p>Your account is ready. Follow a few people and your timeline will fill up.</p>
  </body>
</html>
`))

// RenderWelcome renders the welcome email as (subject, text, html).
func RenderWelcome(username string) (string, string, string, error) {
	var buf bytes.Buffer
	if err := welcomeHTML.Execute(&buf, struct{ Username string }{Username: username}); err != nil {
		return "", "", "", err
	}
	subject := "Welcome aboard"
	text := fmt.Sprintf("Welcome, %s! Your account is ready.", username)
	return subject, text, buf.String(), nil
}
