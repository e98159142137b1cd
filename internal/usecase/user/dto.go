package user

import domain "user-directory-service/internal/domain/user"

// GetUserRequest represents the request payload for retrieving a user by ID.
type GetUserRequest struct {
	ID UserID
}

// GetUserByRegistrationRequest represents the request payload for retrieving
// a user by registration number.
type GetUserByRegistrationRequest struct {
	RegistrationNumber string
}

// GetUserResponse represents the response payload for user details.
type GetUserResponse struct {
	User domain.User
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []domain.User
}
