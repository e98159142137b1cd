package memory

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "user-directory-service/internal/domain/user"
	"user-directory-service/internal/usecase/user"
)

// UserStore implements user.Repository over a fixed, in-memory set of
// records. The records are copied in at construction and never change.
type UserStore struct {
	users []domain.User // authored records, insertion order preserved
	log   *zap.Logger   // Structured logger for store operations
}

var _ user.Repository = (*UserStore)(nil)

// NewUserStore checks the records and returns a store holding a private copy
// of them. IDs must be positive and unique; duplicate registration numbers
// are allowed and the first record wins on lookup.
func NewUserStore(records []domain.User, log *zap.Logger) (*UserStore, error) {
	validate := validator.New()

	seenIDs := make(map[int64]struct{}, len(records))
	seenRegs := make(map[string]int64, len(records))
	for i := range records {
		u := records[i]
		if err := validate.Struct(u); err != nil {
			return nil, fmt.Errorf("invalid user record at index %d: %w", i, err)
		}
		if _, dup := seenIDs[u.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %d at index %d", u.ID, i)
		}
		seenIDs[u.ID] = struct{}{}

		if firstID, dup := seenRegs[u.RegistrationNumber]; dup {
			log.Warn("duplicate registration number in dataset",
				zap.String("registration_number", u.RegistrationNumber),
				zap.Int64("first_id", firstID),
				zap.Int64("duplicate_id", u.ID),
			)
			continue
		}
		seenRegs[u.RegistrationNumber] = u.ID
	}

	users := make([]domain.User, len(records))
	copy(users, records)

	log.Info("user store loaded", zap.Int("count", len(users)))

	return &UserStore{users: users, log: log}, nil
}

// List returns a copy of all users in authored order.
func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// GetByID returns the first user whose ID matches, or nil if none does.
func (s *UserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// GetByRegistrationNumber returns the first user whose registration number
// is exactly regNumber, or nil if none is.
func (s *UserStore) GetByRegistrationNumber(_ context.Context, regNumber string) (*domain.User, error) {
	for i := range s.users {
		if s.users[i].RegistrationNumber == regNumber {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Len returns the number of records held by the store.
func (s *UserStore) Len() int {
	return len(s.users)
}
