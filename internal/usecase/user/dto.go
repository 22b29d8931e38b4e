package user

// EditUserRequest represents a partial profile update. Nil fields are left unchanged.
type EditUserRequest struct {
	Email     *string `validate:"omitempty,email"`
	FirstName *string `validate:"omitempty,min=1,max=100"`
	LastName  *string `validate:"omitempty,min=1,max=100"`
}
