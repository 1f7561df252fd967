package service

import (
	"context"
	"strings"

	"tipovacka/app_error"
	"tipovacka/repository"
)

type RosterCache interface {
	GetRoster(ctx context.Context, team string) ([]*repository.Player, bool)
	SetRoster(ctx context.Context, team string, players []*repository.Player)
	InvalidateRoster(ctx context.Context, team string)
}

type NoopRosterCache struct{}

func (NoopRosterCache) GetRoster(ctx context.Context, team string) ([]*repository.Player, bool) {
	return nil, false
}

func (NoopRosterCache) SetRoster(ctx context.Context, team string, players []*repository.Player) {}

func (NoopRosterCache) InvalidateRoster(ctx context.Context, team string) {}

type RosterEntry struct {
	Name   string `json:"name"`
	Number *int   `json:"number"`
}

type RosterService struct {
	players PlayerStore
	cache   RosterCache
}

func NewRosterService(players PlayerStore, cache RosterCache) *RosterService {
	if cache == nil {
		cache = NoopRosterCache{}
	}
	return &RosterService{players: players, cache: cache}
}

func (e *RosterService) GetRoster(ctx context.Context, team string) ([]*repository.Player, error) {
	team = strings.TrimSpace(team)
	if players, ok := e.cache.GetRoster(ctx, team); ok {
		return players, nil
	}
	players, err := e.players.GetPlayersForTeam(ctx, team)
	if err != nil {
		return nil, err
	}
	e.cache.SetRoster(ctx, team, players)
	return players, nil
}

// ReplaceRoster swaps the whole roster of a team, keeping the ids of players that stay.
// Names are trimmed and duplicates dropped; an empty list clears the roster.
func (e *RosterService) ReplaceRoster(ctx context.Context, team string, entries []RosterEntry) ([]*repository.Player, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return nil, app_error.New(app_error.Invalid, "team name is required")
	}
	seen := make(map[string]bool)
	players := make([]*repository.Player, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, app_error.New(app_error.Invalid, "player name is required")
		}
		if entry.Number != nil && (*entry.Number < 0 || *entry.Number > 99) {
			return nil, app_error.New(app_error.Invalid, "jersey number of %s must be between 0 and 99", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		players = append(players, &repository.Player{TeamName: team, Name: name, Number: entry.Number})
	}
	if err := e.players.ReplaceRoster(ctx, team, players); err != nil {
		return nil, err
	}
	e.cache.InvalidateRoster(ctx, team)
	return e.GetRoster(ctx, team)
}

// FindPlayer looks a player up by name within a team roster.
func (e *RosterService) FindPlayer(ctx context.Context, team string, name string) (*repository.Player, error) {
	players, err := e.GetRoster(ctx, team)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for _, player := range players {
		if player.Name == name {
			return player, nil
		}
	}
	return nil, app_error.New(app_error.NotFound, "player %s is not on the roster of %s", name, team)
}
