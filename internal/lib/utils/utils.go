// Package utils contains small helper functions used across the project.
package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var kilobyte = decimal.NewFromInt(1024)

// FormatKB renders a byte count the way upload responses show it, e.g. "12.35 KB".
func FormatKB(size int64) string {
	return decimal.NewFromInt(size).Div(kilobyte).StringFixed(2) + " KB"
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value behind p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// NilIfBlank trims s and returns nil when nothing is left.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
