package domain

// Category identifies one of the fixed staff groupings.
type Category string

const (
	CategoryHeadStaff        Category = "head-staff"
	CategoryHeadTeachers     Category = "head-teachers"
	CategoryPrimaryTeachers  Category = "primary-teachers"
	CategorySeniorTeachers   Category = "senior-teachers"
	CategoryPrefects         Category = "prefects"
	CategorySecurityCleaning Category = "security-cleaning"
)

// Categories lists every staff grouping in site navigation order.
func Categories() []Category {
	return []Category{
		CategoryHeadStaff,
		CategoryHeadTeachers,
		CategoryPrimaryTeachers,
		CategorySeniorTeachers,
		CategoryPrefects,
		CategorySecurityCleaning,
	}
}

// Valid reports whether c is one of the fixed groupings.
func (c Category) Valid() bool {
	switch c {
	case CategoryHeadStaff, CategoryHeadTeachers, CategoryPrimaryTeachers,
		CategorySeniorTeachers, CategoryPrefects, CategorySecurityCleaning:
		return true
	}
	return false
}

// StaffRecord models one staff member. The JSON field names are the wire
// contract shared with the front-end and must stay as-is.
type StaffRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Department    string   `json:"department"`
	Experience    string   `json:"experience"`
	Qualification string   `json:"qualification"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Image         string   `json:"image"`
	Description   string   `json:"description,omitempty"`
	Category      Category `json:"category"`
	// DisplayOrder is accepted and stored but does not influence listing
	// order; listings are ranked by position title.
	DisplayOrder *int `json:"display_order,omitempty"`
}

// StaffChanges is a partial attribute set for updates. Nil fields are left
// untouched. Identifier and category are immutable and have no entry here.
type StaffChanges struct {
	Name          *string `json:"name,omitempty"`
	Position      *string `json:"position,omitempty"`
	Department    *string `json:"department,omitempty"`
	Experience    *string `json:"experience,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Image         *string `json:"image,omitempty"`
	Description   *string `json:"description,omitempty"`
	DisplayOrder  *int    `json:"display_order,omitempty"`
}

// Empty reports whether no attribute is being changed.
func (ch StaffChanges) Empty() bool {
	return ch.Name == nil && ch.Position == nil && ch.Department == nil &&
		ch.Experience == nil && ch.Qualification == nil && ch.Email == nil &&
		ch.Phone == nil && ch.Image == nil && ch.Description == nil &&
		ch.DisplayOrder == nil
}

// Apply merges the set attributes into record.
func (ch StaffChanges) Apply(record *StaffRecord) {
	if ch.Name != nil {
		record.Name = *ch.Name
	}
	if ch.Position != nil {
		record.Position = *ch.Position
	}
	if ch.Department != nil {
		record.Department = *ch.Department
	}
	if ch.Experience != nil {
		record.Experience = *ch.Experience
	}
	if ch.Qualification != nil {
		record.Qualification = *ch.Qualification
	}
	if ch.Email != nil {
		record.Email = *ch.Email
	}
	if ch.Phone != nil {
		record.Phone = *ch.Phone
	}
	if ch.Image != nil {
		record.Image = *ch.Image
	}
	if ch.Description != nil {
		record.Description = *ch.Description
	}
	if ch.DisplayOrder != nil {
		record.DisplayOrder = ch.DisplayOrder
	}
}
