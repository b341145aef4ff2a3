package models

// Profile is the signed-in user's own view, returned by /api/profile.
type Profile struct {
	User        *User        `json:"user"`
	Teams       []Team       `json:"teams"`
	Tournaments []Tournament `json:"tournaments"`
}

// PublicProfile is what anyone can see about a user.
type PublicProfile struct {
	User        UserSummary  `json:"user"`
	TeamsCount  int          `json:"teams_count"`
	Tournaments []Tournament `json:"organized_tournaments"`
}
