package mail

import (
	"bytes"
	"html/template"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body>
<h2>Welcome to Carefinder, {{.FirstName}}!</h2>
<p>Your account {{.Email}} has been created. You can now rate hospitals and share your experience.</p>
</body>
</html>`))

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body>
<h2>Hello {{.FirstName}},</h2>
<p>We received a request to reset the password of your Carefinder account.</p>
<p><a href="{{.Link}}">Reset your password</a></p>
<p>Your reset token is <strong>{{.Token}}</strong>. If you did not ask for a reset, ignore this e-mail.</p>
</body>
</html>`))

type WelcomeData struct {
	FirstName string
	Email     string
}

type ResetData struct {
	FirstName string
	Token     string
	Link      string
}

func RenderWelcome(data WelcomeData) (string, error) {
	return render(welcomeTemplate, data)
}

func RenderReset(data ResetData) (string, error) {
	return render(resetTemplate, data)
}

func render(t *template.Template, data interface{}) (string, error) {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
