package services

import (
	"fmt"
	"mime"
	"time"

	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/storage"
)

const maxAvatarSize = 5 << 20

func validateTournamentDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrTournamentDatesRequired
	}
	if end.Before(start) {
		return fmt.Errorf("%w: start date (%s), end date (%s)", ErrTournamentInvalidDateRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

var allowedTransitions = map[models.TournamentStatus][]models.TournamentStatus{
	models.StatusUpcoming:     {models.StatusRegistration, models.StatusCanceled},
	models.StatusRegistration: {models.StatusOngoing, models.StatusCanceled},
	models.StatusOngoing:      {models.StatusCompleted, models.StatusCanceled},
	models.StatusCompleted:    {},
	models.StatusCanceled:     {},
}

func isValidStatusTransition(current, next models.TournamentStatus) bool {
	for _, allowed := range allowedTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

func populateUserImage(user *models.User, uploader storage.FileUploader) {
	if user == nil {
		return
	}
	user.Image = imageURL(user.ImageKey, uploader)
}

func populateSummaryImage(summary *models.UserSummary, uploader storage.FileUploader) {
	if summary == nil {
		return
	}
	summary.Image = imageURL(summary.ImageKey, uploader)
}

func populateTeamImages(teams []models.Team, uploader storage.FileUploader) {
	for i := range teams {
		for j := range teams[i].Members {
			populateSummaryImage(teams[i].Members[j].User, uploader)
		}
	}
}

func imageURL(key *string, uploader storage.FileUploader) *string {
	if key == nil || *key == "" || uploader == nil {
		return nil
	}
	url := uploader.GetPublicURL(*key)
	if url == "" {
		return nil
	}
	return &url
}

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// parseAvatarContentType normalizes a client-sent Content-Type and returns it
// with the object key extension. Only raster formats on the allow-list pass.
func parseAvatarContentType(contentType string) (mediaType, ext string, err error) {
	mediaType, _, err = mime.ParseMediaType(contentType)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, contentType)
	}
	ext, ok := avatarExtensions[mediaType]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, mediaType)
	}
	return mediaType, ext, nil
}
