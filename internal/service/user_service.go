package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// userService implements UserService
type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(users repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// List fetches all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}
