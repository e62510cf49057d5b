package services

import "time"

// RecencyWindow is how long a product counts as new after it was added.
const RecencyWindow = 30 * 24 * time.Hour

// IsNew reports whether createdAt falls strictly inside the trailing window
// ending at now. A product exactly RecencyWindow old is not new.
func IsNew(now, createdAt time.Time) bool {
	return createdAt.After(now.Add(-RecencyWindow))
}
