package dto

import "github.com/spec-kit/staff-directory/internal/domain"

// StaffCreateRequest is the payload for adding a staff member to a category.
type StaffCreateRequest struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	Experience    string `json:"experience"`
	Qualification string `json:"qualification"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	DisplayOrder  *int   `json:"display_order"`
}

// ToRecord maps the request onto a domain record. The category and id are
// assigned by the directory, not the caller.
func (r StaffCreateRequest) ToRecord() domain.StaffRecord {
	return domain.StaffRecord{
		Name:          r.Name,
		Position:      r.Position,
		Department:    r.Department,
		Experience:    r.Experience,
		Qualification: r.Qualification,
		Email:         r.Email,
		Phone:         r.Phone,
		Image:         r.Image,
		Description:   r.Description,
		DisplayOrder:  r.DisplayOrder,
	}
}

// StaffUpdateRequest carries a partial update. Absent fields stay untouched.
type StaffUpdateRequest struct {
	Name          *string `json:"name"`
	Position      *string `json:"position"`
	Department    *string `json:"department"`
	Experience    *string `json:"experience"`
	Qualification *string `json:"qualification"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Image         *string `json:"image"`
	Description   *string `json:"description"`
	DisplayOrder  *int    `json:"display_order"`
}

// Changes converts the request into a domain change set.
func (r StaffUpdateRequest) Changes() domain.StaffChanges {
	return domain.StaffChanges{
		Name:          r.Name,
		Position:      r.Position,
		Department:    r.Department,
		Experience:    r.Experience,
		Qualification: r.Qualification,
		Email:         r.Email,
		Phone:         r.Phone,
		Image:         r.Image,
		Description:   r.Description,
		DisplayOrder:  r.DisplayOrder,
	}
}
