package service

import (
	"context"
	"strings"
	"time"

	"tipovacka/app_error"
	"tipovacka/repository"
)

type NewMatch struct {
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	StartsAt time.Time `json:"starts_at"`
}

type MatchService struct {
	matches MatchStore
}

func NewMatchService(matches MatchStore) *MatchService {
	return &MatchService{matches: matches}
}

func (e *MatchService) CreateMatch(ctx context.Context, input NewMatch) (*repository.Match, error) {
	home := strings.TrimSpace(input.HomeTeam)
	away := strings.TrimSpace(input.AwayTeam)
	if home == "" || away == "" {
		return nil, app_error.New(app_error.Invalid, "both teams are required")
	}
	if home == away {
		return nil, app_error.New(app_error.Invalid, "a team cannot play itself")
	}
	if input.StartsAt.IsZero() {
		return nil, app_error.New(app_error.Invalid, "start time is required")
	}
	return e.matches.SaveMatch(ctx, &repository.Match{HomeTeam: home, AwayTeam: away, StartsAt: input.StartsAt})
}

func (e *MatchService) GetMatch(ctx context.Context, matchId int) (*repository.Match, error) {
	return e.matches.GetMatchById(ctx, matchId)
}

func (e *MatchService) ListMatches(ctx context.Context) ([]*repository.Match, error) {
	return e.matches.GetAllMatches(ctx)
}
