package model

import "time"

// Event is the competition metadata every page load consults for time
// gating. Treated as read-only once fetched.
type Event struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartTime   UTCTime `json:"start_time"`
	EndTime     UTCTime `json:"end_time"`
	// Divisions maps division id to display label.
	Divisions map[string]string `json:"divisions"`
}

func (e *Event) Started(now time.Time) bool {
	return !now.Before(e.StartTime.Time)
}

func (e *Event) Ended(now time.Time) bool {
	return now.After(e.EndTime.Time)
}
