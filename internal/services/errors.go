package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrWarehouseNotFound reports a reference to a warehouse id that does not
// exist.
var ErrWarehouseNotFound = errors.New("warehouse not found")

// ValidationErrors maps field names to human-readable reasons. It is
// returned as a whole so callers can render every failing field at once.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors unwraps err into a ValidationErrors map, if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
