package locations

import "time"

// Location es una región operativa. Única por (Name, Country).
type Location struct {
	ID      string
	Name    string
	Country string

	CreatedAt time.Time
}
