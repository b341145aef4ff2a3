package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-hub/brackets"
	"github.com/Dosada05/tournament-hub/db"
	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/repositories"
)

type MatchService interface {
	GetResult(ctx context.Context, matchID int) (*models.Match, error)
	RecordResult(ctx context.Context, matchID, organizerID int, input RecordResultInput) (*models.Match, error)
	ScheduleMatch(ctx context.Context, tournamentID, organizerID int, input ScheduleMatchInput) (*models.Match, error)
	GenerateSchedule(ctx context.Context, tournamentID, organizerID int) ([]models.Match, error)
	ListMatches(ctx context.Context, tournamentID int) ([]models.Match, error)
}

type RecordResultInput struct {
	Team1Score int `json:"team1_score"`
	Team2Score int `json:"team2_score"`
}

type ScheduleMatchInput struct {
	Team1ID     int       `json:"team1_id"`
	Team2ID     int       `json:"team2_id"`
	Round       int       `json:"round"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

type matchService struct {
	db             *sql.DB
	matchRepo      repositories.MatchRepository
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
	generator      brackets.BracketGenerator
	hub            brackets.Broadcaster
	logger         *slog.Logger
}

// NewMatchService builds the match service. hub may be nil, in which case no
// live updates are sent.
func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	generator brackets.BracketGenerator,
	hub brackets.Broadcaster,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		db:             db,
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		generator:      generator,
		hub:            hub,
		logger:         logger,
	}
}

// GetResult loads a match with both teams and a reference to its tournament.
func (s *matchService) GetResult(ctx context.Context, matchID int) (*models.Match, error) {
	match, err := s.matchRepo.GetWithTeams(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", matchID, err)
	}
	return match, nil
}

func (s *matchService) RecordResult(ctx context.Context, matchID, organizerID int, input RecordResultInput) (*models.Match, error) {
	if input.Team1Score < 0 || input.Team2Score < 0 {
		return nil, ErrScoreInvalid
	}

	match, err := s.GetResult(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Tournament.OrganizerID != organizerID {
		return nil, ErrForbiddenOperation
	}
	if match.Status != models.MatchStatusScheduled {
		return nil, fmt.Errorf("%w: match %d is %s", ErrMatchNotScheduled, matchID, match.Status)
	}

	var winnerID *int
	switch {
	case input.Team1Score > input.Team2Score:
		winnerID = &match.Team1ID
	case input.Team2Score > input.Team1Score:
		winnerID = &match.Team2ID
	}

	if err := s.matchRepo.UpdateResult(ctx, matchID, input.Team1Score, input.Team2Score, winnerID); err != nil {
		if errors.Is(err, repositories.ErrMatchAlreadyDecided) {
			return nil, fmt.Errorf("%w: match %d", ErrMatchNotScheduled, matchID)
		}
		return nil, fmt.Errorf("failed to record result of match %d: %w", matchID, err)
	}

	match.Team1Score = &input.Team1Score
	match.Team2Score = &input.Team2Score
	match.WinnerID = winnerID
	match.Status = models.MatchStatusCompleted

	s.broadcast(match.TournamentID, brackets.MessageMatchResultRecorded, match)
	return match, nil
}

func (s *matchService) ScheduleMatch(ctx context.Context, tournamentID, organizerID int, input ScheduleMatchInput) (*models.Match, error) {
	tournament, err := s.schedulableTournament(ctx, tournamentID, organizerID)
	if err != nil {
		return nil, err
	}

	if input.Team1ID == input.Team2ID {
		return nil, ErrMatchTeamsInvalid
	}
	for _, teamID := range []int{input.Team1ID, input.Team2ID} {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, fmt.Errorf("%w: team %d does not exist", ErrMatchTeamsInvalid, teamID)
			}
			return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
		}
		if team.TournamentID != tournamentID {
			return nil, fmt.Errorf("%w: team %d is not in tournament %d", ErrMatchTeamsInvalid, teamID, tournamentID)
		}
	}

	round := input.Round
	if round <= 0 {
		round = 1
	}
	scheduledAt := input.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = tournament.StartDate
	}

	match := &models.Match{
		TournamentID: tournamentID,
		Team1ID:      input.Team1ID,
		Team2ID:      input.Team2ID,
		Round:        round,
		ScheduledAt:  scheduledAt.UTC(),
	}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		if errors.Is(err, repositories.ErrMatchTeamsInvalid) {
			return nil, ErrMatchTeamsInvalid
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

// GenerateSchedule creates a full round-robin for the tournament's registered
// teams. A tournament can be scheduled this way only once.
func (s *matchService) GenerateSchedule(ctx context.Context, tournamentID, organizerID int) ([]models.Match, error) {
	tournament, err := s.schedulableTournament(ctx, tournamentID, organizerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	if len(existing) > 0 {
		return nil, ErrScheduleExists
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for tournament %d: %w", tournamentID, err)
	}
	teamIDs := make([]int, 0, len(teams))
	for _, team := range teams {
		teamIDs = append(teamIDs, team.ID)
	}
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrNotEnoughTeams, len(teamIDs))
	}

	generated, err := s.generator.GenerateBracket(ctx, brackets.GenerateBracketParams{
		TournamentID: tournamentID,
		TeamIDs:      teamIDs,
		StartDate:    tournament.StartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s schedule for tournament %d: %w", s.generator.GetName(), tournamentID, err)
	}

	matches := make([]models.Match, 0, len(generated))
	err = db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.tournamentRepo.MarkScheduleGenerated(ctx, tx, tournamentID, time.Now()); err != nil {
			if errors.Is(err, repositories.ErrScheduleAlreadyGenerated) {
				return ErrScheduleExists
			}
			return err
		}
		for _, bm := range generated {
			match := models.Match{
				TournamentID: tournamentID,
				Team1ID:      bm.Team1ID,
				Team2ID:      bm.Team2ID,
				Round:        bm.Round,
				ScheduledAt:  bm.ScheduledAt,
			}
			if err := s.matchRepo.Create(ctx, tx, &match); err != nil {
				return fmt.Errorf("failed to store match %s: %w", bm.UID, err)
			}
			matches = append(matches, match)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "schedule generated",
		slog.Int("tournament_id", tournamentID),
		slog.String("generator", s.generator.GetName()),
		slog.Int("teams", len(teamIDs)),
		slog.Int("matches", len(matches)),
	)
	s.broadcast(tournamentID, brackets.MessageScheduleGenerated, matches)
	return matches, nil
}

func (s *matchService) ListMatches(ctx context.Context, tournamentID int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) schedulableTournament(ctx context.Context, tournamentID, organizerID int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", tournamentID, err)
	}
	if tournament.OrganizerID != organizerID {
		return nil, ErrForbiddenOperation
	}
	if tournament.Status == models.StatusCompleted || tournament.Status == models.StatusCanceled {
		return nil, fmt.Errorf("%w: tournament %d", ErrTournamentClosed, tournamentID)
	}
	return tournament, nil
}

func (s *matchService) broadcast(tournamentID int, messageType string, payload any) {
	if s.hub == nil {
		return
	}
	room := brackets.TournamentRoom(tournamentID)
	s.hub.BroadcastToRoom(room, brackets.WebSocketMessage{
		Type:    messageType,
		Payload: payload,
		RoomID:  room,
	})
}
