package model

import "time"

// PlayerID uniquely identifies an authenticated principal
type PlayerID string

// Player is the authenticated principal the auth collaborator supplies
// per request. Guests are anonymous; registered players have a username
// usable as the default leaderboard identity.
type Player struct {
	ID          PlayerID  `json:"id"`
	Username    string    `json:"username,omitempty"` // empty for guests
	DisplayName string    `json:"display_name"`
	IsGuest     bool      `json:"is_guest"`
	CreatedAt   time.Time `json:"created_at"`
}
