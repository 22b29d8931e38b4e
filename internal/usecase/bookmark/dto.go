package bookmark

// CreateBookmarkRequest represents the request payload for creating a bookmark.
type CreateBookmarkRequest struct {
	Title       string  `validate:"required,max=255"`
	Description *string `validate:"omitempty,max=2000"`
	Link        string  `validate:"required,url"`
}

// EditBookmarkRequest represents a partial bookmark update. Nil fields are left unchanged.
type EditBookmarkRequest struct {
	Title       *string `validate:"omitempty,min=1,max=255"`
	Description *string `validate:"omitempty,max=2000"`
	Link        *string `validate:"omitempty,url"`
}
