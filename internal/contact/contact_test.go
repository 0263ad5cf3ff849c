package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avstrong/grandeur/internal/logger"
	"github.com/avstrong/grandeur/internal/validate"
)

func validMessage() *Message {
	return &Message{
		Name:    "Jo",
		Email:   "a@b.com",
		Subject: "Late check-out",
		Body:    "Is a 2pm check-out possible next weekend?",
	}
}

func TestMessageValidate_Valid(t *testing.T) {
	assert.NoError(t, validMessage().Validate())
}

func TestMessageValidate_AllFieldsMissing(t *testing.T) {
	inputErr := validate.IsInputError((&Message{}).Validate())

	assert.NotNil(t, inputErr)
	assert.Equal(t, map[string]string{
		"name":    "Name is required (min 2 characters)",
		"email":   "Valid email is required",
		"subject": "Subject must be at least 5 characters",
		"message": "Message must be at least 10 characters",
	}, inputErr.Fields())
}

func TestMessageValidate_ShortSubject(t *testing.T) {
	msg := validMessage()
	msg.Subject = "Hi"

	inputErr := validate.IsInputError(msg.Validate())

	assert.NotNil(t, inputErr)
	assert.Equal(t, map[string]string{"subject": "Subject must be at least 5 characters"}, inputErr.Fields())
}

func TestMessageValidate_ShortBody(t *testing.T) {
	msg := validMessage()
	msg.Body = "Hi there"

	inputErr := validate.IsInputError(msg.Validate())

	assert.NotNil(t, inputErr)
	assert.Equal(t, map[string]string{"message": "Message must be at least 10 characters"}, inputErr.Fields())
}

func TestSubmit(t *testing.T) {
	manager := New(logger.NewNop(), 0)

	assert.NoError(t, manager.Submit(context.Background(), validMessage()))
}

func TestSubmit_ValidationFailure(t *testing.T) {
	manager := New(logger.NewNop(), 0)

	msg := validMessage()
	msg.Email = "nope"

	err := manager.Submit(context.Background(), msg)

	inputErr := validate.IsInputError(err)
	assert.NotNil(t, inputErr)
	assert.Contains(t, inputErr.Fields(), "email")
}

func TestSubmit_CancelledDuringDelay(t *testing.T) {
	manager := New(logger.NewNop(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, manager.Submit(ctx, validMessage()), context.Canceled)
}
