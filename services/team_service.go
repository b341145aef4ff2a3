package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Dosada05/tournament-hub/db"
	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/repositories"
	"github.com/Dosada05/tournament-hub/storage"
)

const maxTeamNameLength = 64

type TeamService interface {
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error)
	RegisterTeam(ctx context.Context, tournamentID, captainID int, input RegisterTeamInput) (*models.Team, error)
}

type RegisterTeamInput struct {
	Name      string `json:"name"`
	MemberIDs []int  `json:"member_ids"`
}

type teamService struct {
	db             *sql.DB
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
	logger         *slog.Logger
}

func NewTeamService(
	db *sql.DB,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TeamService {
	return &teamService{
		db:             db,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
		logger:         logger,
	}
}

// ListByTournament returns the tournament's teams with their members. A
// tournament without teams, or one that does not exist, yields an empty list.
func (s *teamService) ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for tournament %d: %w", tournamentID, err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	populateTeamImages(teams, s.uploader)
	return teams, nil
}

// RegisterTeam creates a team with the caller as captain plus the listed
// members, all or nothing.
func (s *teamService) RegisterTeam(ctx context.Context, tournamentID, captainID int, input RegisterTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	if utf8.RuneCountInString(name) > maxTeamNameLength {
		return nil, ErrTeamNameTooLong
	}

	team := &models.Team{
		Name:         name,
		TournamentID: tournamentID,
		CaptainID:    captainID,
	}

	err := db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := s.tournamentRepo.GetByID(ctx, tx, tournamentID)
		if err != nil {
			if errors.Is(err, repositories.ErrTournamentNotFound) {
				return ErrTournamentNotFound
			}
			return err
		}
		if tournament.Status != models.StatusRegistration {
			return fmt.Errorf("%w: tournament %d is %s", ErrRegistrationNotOpen, tournamentID, tournament.Status)
		}

		count, err := s.teamRepo.CountByTournament(ctx, tx, tournamentID)
		if err != nil {
			return err
		}
		if count >= tournament.MaxTeams {
			return fmt.Errorf("%w: %d of %d", ErrTournamentFull, count, tournament.MaxTeams)
		}

		if err := s.teamRepo.Create(ctx, tx, team); err != nil {
			return mapTeamRepoError(err)
		}

		members := []models.TeamMember{{TeamID: team.ID, UserID: captainID, Role: models.RoleCaptain}}
		seen := map[int]bool{captainID: true}
		for _, userID := range input.MemberIDs {
			if seen[userID] {
				continue
			}
			seen[userID] = true
			members = append(members, models.TeamMember{TeamID: team.ID, UserID: userID, Role: models.RolePlayer})
		}

		for i := range members {
			if err := s.teamRepo.AddMember(ctx, tx, &members[i]); err != nil {
				return mapTeamRepoError(err)
			}
		}
		team.Members = members
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "team registered",
		slog.Int("tournament_id", tournamentID),
		slog.Int("team_id", team.ID),
		slog.Int("members", len(team.Members)),
	)
	return team, nil
}

func mapTeamRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrTeamNameConflict):
		return ErrTeamNameConflict
	case errors.Is(err, repositories.ErrTeamMemberConflict):
		return ErrUserAlreadyInTeam
	case errors.Is(err, repositories.ErrTeamReferenceInvalid):
		return ErrTeamMemberInvalid
	}
	return err
}
