// Package notify sends e-mail about submission and review events. Delivery
// happens after the database transaction has committed and never affects it.
package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"atlas-backend/internal/database/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Event identifies a notification template
type Event string

const (
	EventSubmissionReceived Event = "submission_received"
	EventApproved           Event = "approved"
	EventRejected           Event = "rejected"
	EventChangesRequested   Event = "changes_requested"
)

// EventForStatus maps a workflow status reached by a review decision to the
// event sent to the submitter. Statuses without a template return false.
func EventForStatus(status models.WorkflowStatus) (Event, bool) {
	switch status {
	case models.WorkflowStatusApproved:
		return EventApproved, true
	case models.WorkflowStatusRejected:
		return EventRejected, true
	case models.WorkflowStatusChangesRequested:
		return EventChangesRequested, true
	}
	return "", false
}

// Message is one notification to a submitter
type Message struct {
	Event         Event
	ToName        string
	ToEmail       string
	ProjectName   string
	ReferenceCode string
	Reason        string
}

// Notifier delivers messages
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Noop discards every message
type Noop struct{}

// Notify does nothing
func (Noop) Notify(context.Context, Message) error { return nil }

// Each file defines its own "subject" and "body" blocks, so every event gets
// a separate template set.
var templates = map[Event]*template.Template{
	EventSubmissionReceived: parseTemplate(EventSubmissionReceived),
	EventApproved:           parseTemplate(EventApproved),
	EventRejected:           parseTemplate(EventRejected),
	EventChangesRequested:   parseTemplate(EventChangesRequested),
}

func parseTemplate(event Event) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/"+string(event)+".tmpl"))
}

// Render executes the subject and body blocks of the message's template
func Render(msg Message) (subject, body string, err error) {
	tmpl, ok := templates[msg.Event]
	if !ok {
		return "", "", fmt.Errorf("no template for event %q", msg.Event)
	}
	var s, b bytes.Buffer
	if err := tmpl.ExecuteTemplate(&s, "subject", msg); err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}
	if err := tmpl.ExecuteTemplate(&b, "body", msg); err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}
	return s.String(), b.String(), nil
}
