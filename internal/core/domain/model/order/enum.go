package order

import (
	"fmt"
	"strings"

	"kakanin/internal/pkg/errs"
)

// enumEntry binds an enumeration value to its storage code and display name.
type enumEntry[T comparable] struct {
	value T
	code  string
	name  string
}

// parseEnum maps raw form or API text onto an enumeration value. The text must match
// an entry's code or display name, ignoring case and surrounding spaces. Nothing
// else is accepted: unknown text never reaches the domain model.
func parseEnum[T comparable](param, raw string, table []enumEntry[T]) (T, error) {
	var zero T

	text := strings.TrimSpace(raw)
	if text == "" {
		return zero, errs.NewValueIsRequiredError(param)
	}

	for _, e := range table {
		if strings.EqualFold(text, e.code) || strings.EqualFold(text, e.name) {
			return e.value, nil
		}
	}

	return zero, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a known %s", raw, param))
}

func lookupEntry[T comparable](v T, table []enumEntry[T]) (enumEntry[T], bool) {
	for _, e := range table {
		if e.value == v {
			return e, true
		}
	}
	return enumEntry[T]{}, false
}

// enumValues lists the table's values in table order. Aliases that repeat a value are skipped.
func enumValues[T comparable](table []enumEntry[T]) []T {
	out := make([]T, 0, len(table))
	for i, e := range table {
		if first, _ := lookupEntry(e.value, table[:i+1]); first.code != e.code {
			continue
		}
		out = append(out, e.value)
	}
	return out
}
