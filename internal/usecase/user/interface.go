package user

import "context"

// Usecase defines the interface for user directory lookups.
type Usecase interface {
	ListUsers(ctx context.Context) (*ListUsersResponse, error)
	GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error)
	GetUserByRegistrationNumber(ctx context.Context, in GetUserByRegistrationRequest) (*GetUserResponse, error)
}
