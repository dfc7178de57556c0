package models

import "time"

// Gender matches the gender ENUM in the database.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	// GenderFlex marks athletes registered as mixed-eligible: they can fill
	// either side of a mixed pair and join male or female divisions alike.
	GenderFlex Gender = "X"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderFlex:
		return true
	}
	return false
}

// Participant is an athlete registered in the catalog.
type Participant struct {
	ID         int       `json:"id" db:"id"`
	FullName   string    `json:"full_name" db:"full_name"`
	BirthDate  time.Time `json:"birth_date" db:"birth_date"`
	Gender     Gender    `json:"gender" db:"gender"`
	CategoryID int       `json:"category_id" db:"category_id"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	Category *Category `json:"category,omitempty" db:"-"`
}
