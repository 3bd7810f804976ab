package paintings

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("painting not found")
	ErrTitleRequired = errors.New("title is required in every language")
)

// FormError reports a malformed field in the admin painting form.
type FormError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
