package mailer

import "fmt"

// WelcomeJob is the JSON payload put on the RabbitMQ queue after a
// successful signup. The worker renders and sends it via Mailgun.
type WelcomeJob struct {
	To   string `json:"to"`
	Name string `json:"name,omitempty"`
}

// Render produces the subject and plain-text body for a welcome email.
func (j WelcomeJob) Render(appName string) (subject, text string) {
	name := j.Name
	if name == "" {
		name = "there"
	}
	subject = fmt.Sprintf("Welcome to %s", appName)
	text = fmt.Sprintf("Hi %s,\n\nYour %s account is ready. Happy shopping!\n", name, appName)
	return subject, text
}
