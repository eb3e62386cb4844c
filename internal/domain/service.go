package domain

import "time"

// Service represents an offering from the detailing catalog
// Immutable once seeded except via re-seed upsert keyed by ID
type Service struct {
	ID              string // стабильный слаг, например "lavagem-simples"
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	ImageURL        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
