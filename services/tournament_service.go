package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/repositories"
)

const (
	defaultTournamentPageSize = 20
	maxTournamentPageSize     = 100
)

type TournamentService interface {
	Create(ctx context.Context, organizerID int, input CreateTournamentInput) (*models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, input ListTournamentsInput) ([]models.Tournament, error)
	UpdateStatus(ctx context.Context, id, organizerID int, status models.TournamentStatus) (*models.Tournament, error)
	SyncStatuses(ctx context.Context, now time.Time) (int, error)
}

type CreateTournamentInput struct {
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Game        *string   `json:"game"`
	MaxTeams    int       `json:"max_teams"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type ListTournamentsInput struct {
	OrganizerID *int
	Status      *models.TournamentStatus
	Limit       int
	Offset      int
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	logger         *slog.Logger
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository, logger *slog.Logger) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		logger:         logger,
	}
}

func (s *tournamentService) Create(ctx context.Context, organizerID int, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if err := validateTournamentDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	if input.MaxTeams < 2 {
		return nil, ErrTournamentInvalidCapacity
	}

	tournament := &models.Tournament{
		Name:        name,
		Description: input.Description,
		Game:        input.Game,
		OrganizerID: organizerID,
		Status:      models.StatusRegistration,
		MaxTeams:    input.MaxTeams,
		StartDate:   input.StartDate.UTC(),
		EndDate:     input.EndDate.UTC(),
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentInvalidOrg) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) List(ctx context.Context, input ListTournamentsInput) ([]models.Tournament, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrTournamentInvalidStatus, *input.Status)
	}
	if input.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrValidationFailed)
	}

	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultTournamentPageSize
	case limit > maxTournamentPageSize:
		limit = maxTournamentPageSize
	}

	tournaments, err := s.tournamentRepo.List(ctx, repositories.ListTournamentsFilter{
		OrganizerID: input.OrganizerID,
		Status:      input.Status,
		Limit:       limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateStatus(ctx context.Context, id, organizerID int, status models.TournamentStatus) (*models.Tournament, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrTournamentInvalidStatus, status)
	}

	tournament, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament.OrganizerID != organizerID {
		return nil, ErrForbiddenOperation
	}
	if !isValidStatusTransition(tournament.Status, status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrTournamentInvalidStatusTransition, tournament.Status, status)
	}

	if err := s.tournamentRepo.UpdateStatus(ctx, id, tournament.Status, status); err != nil {
		if errors.Is(err, repositories.ErrTournamentStatusStale) {
			return nil, fmt.Errorf("%w: status changed concurrently", ErrTournamentInvalidStatusTransition)
		}
		return nil, fmt.Errorf("failed to update status of tournament %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "tournament status changed",
		slog.Int("tournament_id", id),
		slog.String("from", string(tournament.Status)),
		slog.String("to", string(status)),
	)
	tournament.Status = status
	return tournament, nil
}

// SyncStatuses advances tournaments whose dates have passed: registration to
// ongoing after the start date, ongoing to completed after the end date. It
// returns how many tournaments changed.
func (s *tournamentService) SyncStatuses(ctx context.Context, now time.Time) (int, error) {
	due, err := s.tournamentRepo.ListDueForStatusSync(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list tournaments due for status sync: %w", err)
	}

	updated := 0
	for _, t := range due {
		next := models.StatusOngoing
		if t.Status == models.StatusOngoing {
			next = models.StatusCompleted
		}

		err := s.tournamentRepo.UpdateStatus(ctx, t.ID, t.Status, next)
		switch {
		case err == nil:
			updated++
			s.logger.InfoContext(ctx, "tournament status synced",
				slog.Int("tournament_id", t.ID),
				slog.String("from", string(t.Status)),
				slog.String("to", string(next)),
			)
		case errors.Is(err, repositories.ErrTournamentStatusStale):
			// changed by someone else since the listing
		default:
			return updated, fmt.Errorf("failed to sync status of tournament %d: %w", t.ID, err)
		}
	}
	return updated, nil
}
