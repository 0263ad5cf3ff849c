package validate

import (
	"errors"
	"fmt"
)

// InputError maps a field name to the human-readable message shown next to
// it. At most one message is kept per field.
type InputError struct {
	fields map[string]string
}

func NewInputError() *InputError {
	return &InputError{
		fields: make(map[string]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) FieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) AddError(field, msg string) {
	if _, ok := ie.fields[field]; ok {
		return
	}

	ie.fields[field] = msg
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string]string {
	return ie.fields
}
