// Package users manages registered accounts: listing, lookup, partial
// update and deletion. Accounts are created through auth registration.
package users

// UserResponse is the public view of a user. The password hash is never
// part of it.
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"johndoe"`
	Email    string `json:"email" example:"johndoe@example.com"`
}

// UpdateUserRequest represents a partial user update. Nil fields keep their
// current value; a supplied password is re-hashed before it is stored.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitnil,min=1" example:"john"`
	Email    *string `json:"email,omitempty" validate:"omitnil,email" example:"john.doe@example.com"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=1,max=72" example:"newpassword"`
}
