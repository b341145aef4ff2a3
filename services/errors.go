package services

import "errors"

// Errors shared by services and mapped to HTTP statuses by the handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// validation and business rules
	ErrValidationFailed    = errors.New("validation failed")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong     = errors.New("password must not exceed 72 bytes")
	ErrTeamNameRequired    = errors.New("team name is required")
	ErrTeamNameTooLong     = errors.New("team name must not exceed 64 characters")
	ErrTeamMemberInvalid   = errors.New("team member does not exist")
	ErrRegistrationNotOpen = errors.New("tournament registration is not open")
	ErrTournamentFull      = errors.New("tournament has reached its team limit")
	ErrTournamentClosed    = errors.New("tournament is completed or canceled")
	ErrNotEnoughTeams      = errors.New("at least two teams are required")
	ErrMatchTeamsInvalid   = errors.New("match teams must be two different teams of the tournament")
	ErrMatchNotScheduled   = errors.New("match is not awaiting a result")
	ErrScoreInvalid        = errors.New("scores must not be negative")
	ErrUnsupportedFileType = errors.New("file must be an image")
	ErrFileTooLarge        = errors.New("file is too large")

	// conflicts
	ErrUserEmailConflict    = errors.New("email address is already in use")
	ErrUserUsernameConflict = errors.New("username is already in use")
	ErrTeamNameConflict     = errors.New("team name is already in use")
	ErrUserAlreadyInTeam    = errors.New("user is already in this team")
	ErrScheduleExists       = errors.New("tournament already has matches scheduled")

	// authentication and authorization
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	// missing entities
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")

	// tournaments
	ErrTournamentNameRequired            = errors.New("tournament name is required")
	ErrTournamentDatesRequired           = errors.New("tournament start and end dates are required")
	ErrTournamentInvalidDateRange        = errors.New("tournament end date must not be before start date")
	ErrTournamentInvalidCapacity         = errors.New("tournament max teams must be at least 2")
	ErrTournamentInvalidStatus           = errors.New("invalid tournament status provided")
	ErrTournamentInvalidStatusTransition = errors.New("invalid tournament status transition")

	ErrStorageNotConfigured = errors.New("file storage is not configured")
)
