package models

import "time"

// EnrollmentStage represents the phase a pair currently plays in.
type EnrollmentStage string

const (
	StageGroup    EnrollmentStage = "group"
	StageKnockout EnrollmentStage = "knockout"
)

// Tournament holds the event configuration, including the tie-break rules
// every match result is validated against.
type Tournament struct {
	ID              int        `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	CategoryID      *int       `json:"category_id,omitempty" db:"category_id"`
	Division        Division   `json:"division" db:"division"`
	Location        *string    `json:"location,omitempty" db:"location"`
	StartDate       time.Time  `json:"start_date" db:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty" db:"end_date"`
	MaxSets         int        `json:"max_sets" db:"max_sets"`
	TieBreakEnabled bool       `json:"tie_break_enabled" db:"tie_break_enabled"`
	TieBreakPoints  int        `json:"tie_break_points" db:"tie_break_points"`
	TieBreakMargin  int        `json:"tie_break_margin" db:"tie_break_margin"`
	Notes           *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`

	Category *Category `json:"category,omitempty" db:"-"`
}

// TournamentParticipant links an athlete to a tournament roster.
type TournamentParticipant struct {
	ID            int       `json:"id" db:"id"`
	TournamentID  int       `json:"tournament_id" db:"tournament_id"`
	ParticipantID int       `json:"participant_id" db:"participant_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Participant *Participant `json:"participant,omitempty" db:"-"`
}

// TournamentPair enrolls a pair into a tournament with grouping metadata.
type TournamentPair struct {
	ID           int             `json:"id" db:"id"`
	TournamentID int             `json:"tournament_id" db:"tournament_id"`
	PairID       int             `json:"pair_id" db:"pair_id"`
	GroupLabel   *string         `json:"group_label,omitempty" db:"group_label"`
	Stage        EnrollmentStage `json:"stage" db:"stage"`
	Seed         *int            `json:"seed,omitempty" db:"seed"`
	IsEliminated bool            `json:"is_eliminated" db:"is_eliminated"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`

	Pair *Pair `json:"pair,omitempty" db:"-"`
}
