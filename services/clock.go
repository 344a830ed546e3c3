package services

import "time"

// nowISO returns the current UTC time in RFC 3339, the timestamp format used
// across all persisted records.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
