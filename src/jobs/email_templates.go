package jobs

import (
	"bytes"
	_ "embed"
	"html/template"
)

type RegisteredEmailData struct {
	FullName  string
	StudentID string
	Program   string
	YearLevel string
	LoginLink string
}

//go:embed email_student_registered.html
var registeredEmailHTML string

var registeredEmailTmpl = template.Must(template.New("registered").Parse(registeredEmailHTML))

func RenderRegisteredEmail(data RegisteredEmailData) (string, error) {
	var buf bytes.Buffer
	if err := registeredEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
