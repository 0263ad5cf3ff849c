package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avstrong/grandeur/internal/logger"
	"github.com/avstrong/grandeur/internal/validate"
)

const (
	minNameLen    = 2
	minSubjectLen = 5
	minBodyLen    = 10
)

// Message is a contact-form submission. Like booking inquiries it is
// validated, acknowledged, and dropped; there is no outbox.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

type Manager struct {
	l     *logger.Logger
	delay time.Duration
}

func New(l *logger.Logger, delay time.Duration) *Manager {
	return &Manager{
		l:     l,
		delay: delay,
	}
}

func (msg *Message) Validate() error {
	inputErr := validate.NewInputError()

	if len(msg.Name) < minNameLen {
		inputErr.AddError("name", "Name is required (min 2 characters)")
	}

	if msg.Email == "" || !strings.Contains(msg.Email, "@") {
		inputErr.AddError("email", "Valid email is required")
	}

	if len(msg.Subject) < minSubjectLen {
		inputErr.AddError("subject", "Subject must be at least 5 characters")
	}

	if len(msg.Body) < minBodyLen {
		inputErr.AddError("message", "Message must be at least 10 characters")
	}

	if inputErr.FieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// Submit validates the message and acknowledges it after the simulated
// processing delay.
func (m *Manager) Submit(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := m.wait(ctx); err != nil {
		return fmt.Errorf("process contact message: %w", err)
	}

	m.l.LogInfo("Contact message received from %v: %q", msg.Email, msg.Subject)

	return nil
}

func (m *Manager) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
