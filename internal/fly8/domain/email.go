package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeEmail returns the lower-cased form used as the unique user key.
// Unicode aware, so "ÄNNE@EXAMPLE.COM" and "änne@example.com" collide.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}
