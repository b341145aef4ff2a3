package brackets

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotEnoughTeams = errors.New("round robin requires at least two teams")

const byeSlot = -1

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() BracketGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateBracket pairs every team with every other team exactly once using the
// circle method. The first team stays fixed while the others rotate one slot per
// round; an odd field gets a bye slot, and whoever meets it sits the round out.
func (g *RoundRobinGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	if len(params.TeamIDs) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrNotEnoughTeams, len(params.TeamIDs))
	}

	seen := make(map[int]struct{}, len(params.TeamIDs))
	slots := make([]int, 0, len(params.TeamIDs)+1)
	for _, id := range params.TeamIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("round robin: team %d listed twice", id)
		}
		seen[id] = struct{}{}
		slots = append(slots, id)
	}
	if len(slots)%2 == 1 {
		slots = append(slots, byeSlot)
	}

	interval := params.RoundInterval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	n := len(slots)
	rounds := n - 1
	matches := make([]*BracketMatch, 0, n/2*rounds)

	for round := 1; round <= rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		scheduledAt := params.StartDate.Add(time.Duration(round-1) * interval)
		order := 0
		for i := 0; i < n/2; i++ {
			home, away := slots[i], slots[n-1-i]
			if home == byeSlot || away == byeSlot {
				continue
			}
			// alternate the fixed team's side so it is not always listed first
			if i == 0 && round%2 == 0 {
				home, away = away, home
			}
			order++
			matches = append(matches, &BracketMatch{
				UID:          fmt.Sprintf("T%d_R%dM%d", params.TournamentID, round, order),
				Round:        round,
				OrderInRound: order,
				Team1ID:      home,
				Team2ID:      away,
				ScheduledAt:  scheduledAt,
			})
		}

		last := slots[n-1]
		copy(slots[2:], slots[1:n-1])
		slots[1] = last
	}

	return matches, nil
}
