package dto

import (
	"time"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// PhotoCreateRequest is the payload for adding a gallery photo. TakenOn is
// a calendar date in YYYY-MM-DD form.
type PhotoCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Event       string `json:"event"`
	TakenOn     string `json:"taken_on"`
	Image       string `json:"image"`
}

// ToPhoto maps the request onto a domain photo.
func (r PhotoCreateRequest) ToPhoto() (domain.GroupPhoto, error) {
	takenOn, err := time.Parse("2006-01-02", r.TakenOn)
	if err != nil {
		return domain.GroupPhoto{}, err
	}
	return domain.GroupPhoto{
		Title:       r.Title,
		Description: r.Description,
		Event:       r.Event,
		TakenOn:     takenOn,
		Image:       r.Image,
	}, nil
}
