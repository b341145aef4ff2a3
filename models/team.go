package models

import "time"

type TeamMemberRole string

const (
	RoleCaptain TeamMemberRole = "captain"
	RolePlayer  TeamMemberRole = "player"
)

type Team struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	TournamentID int       `json:"tournament_id"`
	CaptainID    int       `json:"captain_id"`
	CreatedAt    time.Time `json:"created_at"`

	Members []TeamMember `json:"members,omitempty"`
}

type TeamMember struct {
	ID       int            `json:"id"`
	TeamID   int            `json:"team_id"`
	UserID   int            `json:"user_id"`
	Role     TeamMemberRole `json:"role"`
	JoinedAt time.Time      `json:"joined_at"`

	User *UserSummary `json:"user,omitempty"`
}
