package domain

import "time"

// Category classifies transactions. Default categories (IsDefault, no owner)
// are seeded by migration, visible to every user and immutable through the
// API; user categories belong to exactly one user.
type Category struct {
	ID        string
	UserID    *string
	Name      string
	Type      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VisibleTo reports whether the user may reference this category.
func (c *Category) VisibleTo(userID string) bool {
	return c.IsDefault || (c.UserID != nil && *c.UserID == userID)
}

// OwnedBy reports whether the user may modify this category.
func (c *Category) OwnedBy(userID string) bool {
	return !c.IsDefault && c.UserID != nil && *c.UserID == userID
}
