package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"catalog-services/catalog-service/internal/entity"
	"catalog-services/catalog-service/internal/repository"
)

// ErrNotFound is returned when the requested id has no matching row.
var ErrNotFound = errors.New("not found")

type UserService struct {
	repo   *repository.UserRepository
	events EventPublisher
	logger zerolog.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo *repository.UserRepository, events EventPublisher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, events: events, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}

	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	publishEvent(ctx, s.events, s.logger, eventKey("user", "created", createdUser.ID), createdUser)
	return createdUser, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Msgf("Error deleting user %d", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	publishEvent(ctx, s.events, s.logger, eventKey("user", "deleted", id), DeletedEvent{ID: id})
	return nil
}
