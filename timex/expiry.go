// Package timex provides time helpers shared across services: expiry
// computation for tokens and API keys, and common formatting/parsing.
package timex

import "time"

// DefaultExpiryDays is the expiry window applied when no offset is given.
const DefaultExpiryDays = 30

// ExpiryTime returns the current UTC instant plus the given offset.
// A non-zero days value wins over hours; when both are zero the default
// window of 30 days applies. Negative offsets yield instants in the past.
func ExpiryTime(days, hours int) time.Time {
	now := time.Now().UTC()
	if days != 0 {
		return now.AddDate(0, 0, days)
	}
	if hours != 0 {
		return now.Add(time.Duration(hours) * time.Hour)
	}
	return now.AddDate(0, 0, DefaultExpiryDays)
}

// IsExpired reports whether the current UTC instant is strictly later than t.
func IsExpired(t time.Time) bool {
	return time.Now().UTC().After(t)
}
