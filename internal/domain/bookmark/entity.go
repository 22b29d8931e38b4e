package bookmark

import "time"

// Bookmark represents a saved link owned by exactly one user.
type Bookmark struct {
	ID          int64
	UserID      int64 // UserID is the owner
	Title       string
	Description *string // Description is optional
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether userID owns the bookmark.
func (b *Bookmark) OwnedBy(userID int64) bool {
	return b != nil && b.UserID == userID
}

// Patch holds a partial bookmark update; nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Link        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Link == nil
}
