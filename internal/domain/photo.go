package domain

import "time"

// GroupPhoto is one entry in the group-photo gallery.
type GroupPhoto struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Event       string    `json:"event"`
	TakenOn     time.Time `json:"taken_on"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
