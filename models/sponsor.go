package models

import "time"

// Sponsor is shown on the public portal. LogoKey is the object-storage key;
// LogoURL is populated by the service from the uploader's public base URL.
type Sponsor struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Website   *string   `json:"website,omitempty" db:"website"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
