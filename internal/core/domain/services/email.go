package services

import "strings"

// normalizeEmail lowercases and trims an email for comparison, mirroring how
// profiles store theirs.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
