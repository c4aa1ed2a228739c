package payload

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jellydator/validation"
)

// ErrorList flattens a validation error into per-field messages suitable
// for re-rendering alongside the form. Field order is stable.
func ErrorList(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, verrs[field].Error()))
	}
	return messages
}
