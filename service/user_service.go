// service/user_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/andreyques41/lyfter-store/cache"
	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/repository"
	"github.com/andreyques41/lyfter-store/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	RegisterUser(ctx context.Context, registration model.UserRegistration, actorID string) (*model.User, error)
	UpdateUser(ctx context.Context, user model.User, actorID string) (*model.User, error)
	DeleteUser(ctx context.Context, userID string, actorID string) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// UserService handles business logic for user operations. Passwords are
// bcrypt-hashed before they reach the repository and never serialized into
// the cache.
type UserService struct {
	store          *CachedStore[model.User]
	userRepo       repository.UserRepository
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

func NewUserService(userRepo repository.UserRepository, kv cache.KeyValueCache, ttls CacheTTLs, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *UserService {
	return &UserService{
		store:          NewCachedStore[model.User](model.KindUser, userRepo, kv, ttls.Entry, ttls.List),
		userRepo:       userRepo,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// RegisterUser creates a new user from a registration payload
func (s *UserService) RegisterUser(ctx context.Context, registration model.UserRegistration, actorID string) (*model.User, error) {
	if err := s.validationUtil.ValidateRegistration(registration); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, registration.Email); err == nil {
		return nil, lyfter_errors.ErrUserConflict
	} else if !errors.Is(err, lyfter_errors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error hashing password", zap.Error(err))
		return nil, lyfter_errors.ErrInternalServer
	}

	role := registration.Role
	if role == "" {
		role = "customer"
	}

	user := model.User{
		ID:           uuid.New().String(),
		Name:         registration.Name,
		Username:     registration.Username,
		Email:        registration.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		logger.Error("Error creating user", zap.Error(err), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindUser, util.ActionCreated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionCreated,
		Kind:     model.KindUser,
		EntityID: created.ID,
	})

	logger.Info("User registered successfully", zap.String("userID", created.ID))
	return created, nil
}

// UpdateUser handles updates to an existing user. The password hash is
// carried over from the stored record; password changes go through
// Authenticate-guarded flows, not this method.
func (s *UserService) UpdateUser(ctx context.Context, user model.User, actorID string) (*model.User, error) {
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = existing.PasswordHash
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()

	updated, err := s.store.Update(ctx, user.ID, user)
	if err != nil {
		logger.Error("Error updating user", zap.Error(err), zap.String("userID", user.ID), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindUser, util.ActionUpdated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionUpdated,
		Kind:     model.KindUser,
		EntityID: updated.ID,
	})

	logger.Info("User updated successfully", zap.String("userID", updated.ID), zap.String("actorID", actorID))
	return updated, nil
}

// DeleteUser handles the deletion of a user
func (s *UserService) DeleteUser(ctx context.Context, userID string, actorID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		logger.Error("Error deleting user", zap.Error(err), zap.String("userID", userID), zap.String("actorID", actorID))
		return err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindUser, util.ActionDeleted), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionDeleted,
		Kind:     model.KindUser,
		EntityID: userID,
	})

	logger.Info("User deleted successfully", zap.String("userID", userID), zap.String("actorID", actorID))
	return nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.GetByID(ctx, userID)
}

// GetAllUsers retrieves all users
func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.store.GetAll(ctx)
}

// Authenticate verifies a user's credentials. Always reads the repository:
// the cached copy carries no password hash.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrUserNotFound) {
			return nil, lyfter_errors.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, lyfter_errors.ErrUnauthorized
	}
	return user, nil
}
