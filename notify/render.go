// Package notify renders ticket confirmations and hands them to delivery
// channels: SendGrid email for submitters and Telegram for the admin chat.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"quickaid/models"
)

const (
	confirmationSubject = "QuickAid Ticket Submitted"
	submittedAtLayout   = "January 2, 2006 at 3:04 PM MST"
)

// Message is a rendered notification.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// MalformedInputError reports a ticket that cannot be rendered because a
// field is missing.
type MalformedInputError struct {
	Field string
}

func (e *MalformedInputError) Error() string {
	return "cannot render notification: missing ticket field " + e.Field
}

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Your ticket has been received</h2>
  <p>Hi, thanks for contacting QuickAid support. We have recorded your request and will get back to you at {{.Email}}.</p>
  <table cellpadding="4" style="border-collapse: collapse;">
    <tr><td><strong>Ticket ID</strong></td><td>{{.ID}}</td></tr>
    <tr><td><strong>Title</strong></td><td>{{.Title}}</td></tr>
    <tr><td><strong>Category</strong></td><td>{{.Category}}</td></tr>
    <tr><td><strong>Status</strong></td><td>{{.Status}}</td></tr>
    <tr><td><strong>Submitted</strong></td><td>{{.SubmittedAt}}</td></tr>
  </table>
  <h3>Description</h3>
  <p style="white-space: pre-wrap;">{{.Description}}</p>
</body>
</html>
`))

type confirmationView struct {
	ID          string
	Title       string
	Email       string
	Category    string
	Status      string
	Description string
	SubmittedAt string
}

// Render builds the submitter confirmation for t. It has no side effects
// and refuses tickets with missing fields rather than sending blanks.
func Render(t models.Ticket) (Message, error) {
	if err := checkRenderable(t); err != nil {
		return Message{}, err
	}

	view := confirmationView{
		ID:          t.ID,
		Title:       t.Title,
		Email:       t.Email,
		Category:    t.Category,
		Status:      string(t.Status),
		Description: t.Description,
		SubmittedAt: t.CreatedAt.UTC().Format(submittedAtLayout),
	}

	var html bytes.Buffer
	if err := confirmationHTML.Execute(&html, view); err != nil {
		return Message{}, fmt.Errorf("render confirmation: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi, your ticket '%s' has been received.\n\n", view.Title)
	fmt.Fprintf(&text, "Ticket ID: %s\n", view.ID)
	fmt.Fprintf(&text, "Category: %s\n", view.Category)
	fmt.Fprintf(&text, "Status: %s\n", view.Status)
	fmt.Fprintf(&text, "Submitted: %s\n", view.SubmittedAt)
	fmt.Fprintf(&text, "Email: %s\n\n", view.Email)
	fmt.Fprintf(&text, "Description:\n%s\n", view.Description)

	return Message{
		Subject: confirmationSubject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func checkRenderable(t models.Ticket) error {
	fields := []struct {
		name  string
		value string
	}{
		{"id", t.ID},
		{"title", t.Title},
		{"email", t.Email},
		{"category", t.Category},
		{"description", t.Description},
		{"status", string(t.Status)},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &MalformedInputError{Field: f.name}
		}
	}
	if t.CreatedAt.IsZero() {
		return &MalformedInputError{Field: "created_at"}
	}
	return nil
}
