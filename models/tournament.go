package models

import "time"

// TournamentStatus mirrors the CHECK constraint on tournaments.status.
type TournamentStatus string

const (
	StatusUpcoming     TournamentStatus = "upcoming"
	StatusRegistration TournamentStatus = "registration"
	StatusOngoing      TournamentStatus = "ongoing"
	StatusCompleted    TournamentStatus = "completed"
	StatusCanceled     TournamentStatus = "canceled"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusRegistration, StatusOngoing, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Tournament struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Game        *string          `json:"game,omitempty"`
	OrganizerID int              `json:"organizer_id"`
	Status      TournamentStatus `json:"status"`
	MaxTeams    int              `json:"max_teams"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	CreatedAt   time.Time        `json:"created_at"`
}

// TournamentRef is what a match exposes about its tournament.
type TournamentRef struct {
	ID          int `json:"id"`
	OrganizerID int `json:"organizer_id"`
}
