package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCanceled  MatchStatus = "canceled"
)

type Match struct {
	ID           int         `json:"id"`
	TournamentID int         `json:"tournament_id"`
	Team1ID      int         `json:"team1_id"`
	Team2ID      int         `json:"team2_id"`
	Round        int         `json:"round"`
	ScheduledAt  time.Time   `json:"scheduled_at"`
	Status       MatchStatus `json:"status"`
	Team1Score   *int        `json:"team1_score"`
	Team2Score   *int        `json:"team2_score"`
	WinnerID     *int        `json:"winner_id"`
	CreatedAt    time.Time   `json:"created_at"`

	Team1      *Team          `json:"team1,omitempty"`
	Team2      *Team          `json:"team2,omitempty"`
	Tournament *TournamentRef `json:"tournament,omitempty"`
}
