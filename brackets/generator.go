package brackets

import (
	"context"
	"time"
)

// BracketMatch is one pairing produced by a generator, before it is stored.
type BracketMatch struct {
	UID          string
	Round        int
	OrderInRound int
	Team1ID      int
	Team2ID      int
	ScheduledAt  time.Time
}

type GenerateBracketParams struct {
	TournamentID int
	TeamIDs      []int
	StartDate    time.Time
	// RoundInterval separates consecutive rounds. Zero means one day.
	RoundInterval time.Duration
}

type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error)

	GetName() string
}
