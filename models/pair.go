package models

import "time"

// Division is the gender mode a pair competes under.
type Division string

const (
	DivisionMale   Division = "M"
	DivisionFemale Division = "F"
	DivisionMixed  Division = "X"
)

func (d Division) Valid() bool {
	switch d {
	case DivisionMale, DivisionFemale, DivisionMixed:
		return true
	}
	return false
}

// Pair is two participants competing together. Player IDs are stored
// low-id-first so that (one, two) and (two, one) hit the same unique row.
type Pair struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PlayerOneID int       `json:"player_one_id" db:"player_one_id"`
	PlayerTwoID int       `json:"player_two_id" db:"player_two_id"`
	CategoryID  int       `json:"category_id" db:"category_id"`
	Division    Division  `json:"division" db:"division"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	PlayerOne *Participant `json:"player_one,omitempty" db:"-"`
	PlayerTwo *Participant `json:"player_two,omitempty" db:"-"`
	Category  *Category    `json:"category,omitempty" db:"-"`
}
