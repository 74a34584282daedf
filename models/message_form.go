package models

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/avelez/portfolio-backend/errs"
)

// Deliberately permissive: anything shaped like local@domain.tld passes,
// deliverability is the mail provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseMessageForm validates a contact form submission. All four fields are
// required after trimming.
func ParseMessageForm(form url.Values) (*Message, error) {
	name := strings.TrimSpace(form.Get("name"))
	email := strings.TrimSpace(form.Get("email"))
	subject := strings.TrimSpace(form.Get("subject"))
	content := strings.TrimSpace(form.Get("message"))

	if name == "" || email == "" || subject == "" || content == "" {
		return nil, errs.NewBadRequestError("All fields (Name, Email, Subject, Message) are required.")
	}

	if !emailPattern.MatchString(email) {
		return nil, errs.NewBadRequestError("Please enter a valid email address.")
	}

	return &Message{
		SenderName:     name,
		SenderEmail:    email,
		Subject:        subject,
		MessageContent: content,
	}, nil
}
