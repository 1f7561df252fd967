package service

import (
	"context"

	"tipovacka/app_error"
	"tipovacka/repository"

	"github.com/google/uuid"
)

type UserService struct {
	profiles ProfileStore
}

func NewUserService(profiles ProfileStore) *UserService {
	return &UserService{profiles: profiles}
}

// GetOrCreateProfile returns the profile of an authenticated user, creating an empty
// one on the first request.
func (e *UserService) GetOrCreateProfile(ctx context.Context, userId uuid.UUID, email string) (*repository.Profile, error) {
	profile, err := e.profiles.GetProfile(ctx, userId)
	if err == nil {
		return profile, nil
	}
	if !app_error.Is(err, app_error.NotFound) {
		return nil, err
	}
	if err := e.profiles.CreateProfile(ctx, &repository.Profile{UserID: userId, Email: email}); err != nil {
		return nil, err
	}
	return e.profiles.GetProfile(ctx, userId)
}

func (e *UserService) GetProfile(ctx context.Context, userId uuid.UUID) (*repository.Profile, error) {
	return e.profiles.GetProfile(ctx, userId)
}
