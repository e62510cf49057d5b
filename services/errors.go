package services

import (
	"sort"
	"strings"

	"github.com/juju/errors"
)

// FieldErrors maps form field names to a message for the user. It matches
// errors.NotValid.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (f FieldErrors) Is(target error) bool {
	return target == errors.NotValid
}

func (f FieldErrors) orNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}
