package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-directory-service/internal/domain/user"
	pkgerrors "user-directory-service/pkg/errors"
	"user-directory-service/pkg/logger"
)

// Not-found messages returned to API clients.
const (
	MsgUserNotFound             = "User not found"
	MsgUserNotFoundRegistration = "User not found with this registration number"
)

// Repository defines the read-only data access operations for user records.
// A lookup miss is reported as (nil, nil).
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)                                     // List all users in authored order
	GetByID(ctx context.Context, id int64) (*domain.User, error)                         // Retrieve user by ID
	GetByRegistrationNumber(ctx context.Context, regNumber string) (*domain.User, error) // Retrieve user by registration number
}

// Service implements Usecase on top of a Repository.
type Service struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

var _ Usecase = (*Service)(nil)

// ListUsers returns every user record.
func (uc *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	users, err := uc.repo.List(ctx)
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	log.Debug("listed users", zap.Int("count", len(users)))
	return &ListUsersResponse{Users: users}, nil
}

// GetUser retrieves a user by ID. An invalid ID is reported exactly like a
// missing one.
func (uc *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	id, ok := in.ID.Value()
	if !ok {
		log.Debug("user id did not parse", zap.Stringer("id", in.ID))
		return nil, pkgerrors.NewNotFoundError("user", MsgUserNotFound)
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		log.Debug("user not found", zap.Int64("id", id))
		return nil, pkgerrors.NewNotFoundError("user", MsgUserNotFound)
	}

	return &GetUserResponse{User: *u}, nil
}

// GetUserByRegistrationNumber retrieves a user by exact registration number.
func (uc *Service) GetUserByRegistrationNumber(ctx context.Context, in GetUserByRegistrationRequest) (*GetUserResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	u, err := uc.repo.GetByRegistrationNumber(ctx, in.RegistrationNumber)
	if err != nil {
		log.Error("failed to get user by registration number",
			zap.String("registration_number", in.RegistrationNumber),
			zap.Error(err),
		)
		return nil, err
	}
	if u == nil {
		log.Debug("user not found", zap.String("registration_number", in.RegistrationNumber))
		return nil, pkgerrors.NewNotFoundError("user", MsgUserNotFoundRegistration)
	}

	return &GetUserResponse{User: *u}, nil
}
