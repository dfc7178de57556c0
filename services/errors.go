package services

import "errors"

// Errors shared across services and the HTTP error mapping.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	// Business rule violations
	ErrInvalidCombination   = errors.New("player genders do not satisfy the pair division")
	ErrDuplicateParticipant = errors.New("a pair needs two distinct players")
	ErrPairCategoryMismatch = errors.New("players are not in the requested category")
	ErrPlayerAlreadyPaired  = errors.New("player already belongs to a pair")
	ErrInvalidDivision      = errors.New("invalid division")
	ErrInvalidGender        = errors.New("invalid gender")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	// Entity-specific not-found, kept distinct for HTTP mapping context
	ErrCategoryNotFound    = errors.New("category not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrPairNotFound        = errors.New("pair not found")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrUserNotFound        = errors.New("user not found")

	// Conflicts
	ErrCategoryNameConflict = errors.New("category name already exists")
	ErrSponsorNameConflict  = errors.New("sponsor name already exists")
	ErrUserEmailConflict    = errors.New("email address is already in use")
	ErrPairAlreadyExists    = errors.New("pair with these players already exists")

	// Tournament rules
	ErrTournamentInvalidDateRange = errors.New("tournament end date must be on or after start date")
	ErrTournamentInvalidMaxSets   = errors.New("tournament max sets must be 1, 3 or 5")
	ErrTournamentInvalidTieBreak  = errors.New("tie-break must target 7 or 10 points with margin 1 or 2")
	ErrDivisionMismatch           = errors.New("pair division does not match tournament division")
	ErrPairAlreadyEnrolled        = errors.New("pair is already enrolled in this tournament")
	ErrParticipantAlreadyEnrolled = errors.New("participant is already enrolled in this tournament")
	ErrPairNotEnrolled            = errors.New("pair is not enrolled in this tournament")
)
