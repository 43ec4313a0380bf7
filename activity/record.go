// Package activity stores per-day counts of completed work sessions
package activity

import "time"

// Record is the number of work sessions a user completed on one calendar
// day. There is at most one record per user and date.
type Record struct {
	CreatedAt     time.Time `json:"createdAt"`
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Date          string    `json:"date"`
	SessionsCount int       `json:"sessionsCount"`
}
