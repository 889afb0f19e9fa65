package handlers

import "strings"

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func str(p *string) string {
	return strings.TrimSpace(deref(p))
}

func setString(cols map[string]any, column string, v *string) {
	if v != nil {
		cols[column] = strings.TrimSpace(*v)
	}
}

func set[T any](cols map[string]any, column string, v *T) {
	if v != nil {
		cols[column] = *v
	}
}
