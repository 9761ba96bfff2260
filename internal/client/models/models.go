// Package models defines the data records exchanged with the Notes-AI
// backend and the records kept locally by the client.
package models

import "time"

// UserProfile identifies the authenticated user. It is fetched, never
// persisted by the client.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NoteRef is one saved note as listed in history views. The note body lives
// server-side; only the storage path and save time travel to the client.
type NoteRef struct {
	PathToNote string `json:"pathToNote"`
	SavedAt    string `json:"savedAt"`
}

// UserDetails is the response of GET /account/user-details.
type UserDetails struct {
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Notes    []NoteRef `json:"userNotesDto"`
}

// SubscriptionRecord is one entry of GET /account/purchase-history.
// Period bounds are Unix epoch seconds.
type SubscriptionRecord struct {
	Status             string `json:"status"`
	CurrentPeriodStart int64  `json:"current_period_start"`
	CurrentPeriodEnd   int64  `json:"current_period_end"`
}

// SubscriptionPeriodDays derives the subscription length in days. It is a
// pure projection of the record; nothing is stored.
func (r SubscriptionRecord) SubscriptionPeriodDays() float64 {
	return float64(r.CurrentPeriodEnd-r.CurrentPeriodStart) / 86400
}

// Draft is a locally cached note awaiting upload.
type Draft struct {
	ID        string
	Title     string
	Text      string
	CreatedAt time.Time
	Uploaded  bool
}
