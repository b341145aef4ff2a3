package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/repositories"
	"github.com/Dosada05/tournament-hub/storage"
)

const (
	minSearchQueryLength = 2
	maxSearchResults     = 20
	maxOrganizedListed   = 100
)

type UserService interface {
	Search(ctx context.Context, query string) ([]models.UserSummary, error)
	GetPublicProfile(ctx context.Context, userID int) (*models.PublicProfile, error)
	GetProfile(ctx context.Context, userID int) (*models.Profile, error)
	UpdateAvatar(ctx context.Context, userID int, input UploadAvatarInput) (*models.User, error)
}

type UploadAvatarInput struct {
	ContentType string
	Size        int64
	File        io.Reader
}

type userService struct {
	userRepo       repositories.UserRepository
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
	logger         *slog.Logger
}

// NewUserService builds the user service. uploader may be nil, in which case
// avatars cannot be changed and no image URLs are produced.
func NewUserService(
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
		logger:         logger,
	}
}

// Search returns up to 20 users whose username or email contains query.
// Queries shorter than two characters after trimming yield an empty result
// without a lookup.
func (s *userService) Search(ctx context.Context, query string) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchQueryLength {
		return []models.UserSummary{}, nil
	}

	users, err := s.userRepo.Search(ctx, query, maxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summary := users[i].Summary()
		populateSummaryImage(&summary, s.uploader)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *userService) GetPublicProfile(ctx context.Context, userID int) (*models.PublicProfile, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.PublicProfile{User: user.Summary()}
	populateSummaryImage(&profile.User, s.uploader)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.teamRepo.CountByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count teams of user %d: %w", userID, err)
		}
		profile.TeamsCount = count
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.List(gctx, repositories.ListTournamentsFilter{
			OrganizerID: &userID,
			Limit:       maxOrganizedListed,
		})
		if err != nil {
			return fmt.Errorf("failed to list tournaments of user %d: %w", userID, err)
		}
		profile.Tournaments = tournaments
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile loads the caller's account, teams and organized tournaments concurrently.
func (s *userService) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	profile := &models.Profile{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.getUser(gctx, userID)
		if err != nil {
			return err
		}
		populateUserImage(user, s.uploader)
		profile.User = user
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list teams of user %d: %w", userID, err)
		}
		profile.Teams = teams
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.List(gctx, repositories.ListTournamentsFilter{
			OrganizerID: &userID,
			Limit:       maxOrganizedListed,
		})
		if err != nil {
			return fmt.Errorf("failed to list tournaments of user %d: %w", userID, err)
		}
		profile.Tournaments = tournaments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateAvatar stores a new avatar and removes the previous one. The old
// object is deleted best-effort after the new key is saved.
func (s *userService) UpdateAvatar(ctx context.Context, userID int, input UploadAvatarInput) (*models.User, error) {
	if s.uploader == nil {
		return nil, ErrStorageNotConfigured
	}
	if input.Size > maxAvatarSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, input.Size, maxAvatarSize)
	}
	contentType, ext, err := parseAvatarContentType(input.ContentType)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	previousKey := user.ImageKey

	key := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.NewString(), ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, input.File); err != nil {
		return nil, fmt.Errorf("failed to upload avatar for user %d: %w", userID, err)
	}

	if err := s.userRepo.UpdateImageKey(ctx, userID, &key); err != nil {
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.WarnContext(ctx, "failed to remove orphaned avatar", slog.String("key", key), slog.Any("error", delErr))
		}
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to save avatar key for user %d: %w", userID, err)
	}

	if previousKey != nil && *previousKey != "" {
		if err := s.uploader.Delete(ctx, *previousKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete previous avatar", slog.String("key", *previousKey), slog.Any("error", err))
		}
	}

	user.ImageKey = &key
	populateUserImage(user, s.uploader)
	return user, nil
}

func (s *userService) getUser(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return user, nil
}
