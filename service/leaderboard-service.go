package service

import (
	"context"
	"sort"

	"tipovacka/repository"

	"github.com/google/uuid"
)

type LeaderboardEntry struct {
	Rank   int       `json:"rank"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Points int       `json:"points"`
}

type LeaderboardDiff struct {
	Changed []*LeaderboardEntry `json:"changed"`
	Removed []uuid.UUID         `json:"removed"`
}

func (d *LeaderboardDiff) IsEmpty() bool {
	return len(d.Changed) == 0 && len(d.Removed) == 0
}

type LeaderboardService struct {
	profiles ProfileStore
}

func NewLeaderboardService(profiles ProfileStore) *LeaderboardService {
	return &LeaderboardService{profiles: profiles}
}

// GetLeaderboard orders profiles by points, then name. Tied points share a rank and
// the next rank skips accordingly.
func (e *LeaderboardService) GetLeaderboard(ctx context.Context) ([]*LeaderboardEntry, error) {
	profiles, err := e.profiles.GetAllProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(profiles), nil
}

func Rank(profiles []*repository.Profile) []*LeaderboardEntry {
	sorted := make([]*repository.Profile, len(profiles))
	copy(sorted, profiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].Name() < sorted[j].Name()
	})
	entries := make([]*LeaderboardEntry, len(sorted))
	for i, profile := range sorted {
		rank := i + 1
		if i > 0 && profile.Points == sorted[i-1].Points {
			rank = entries[i-1].Rank
		}
		entries[i] = &LeaderboardEntry{
			Rank:   rank,
			UserID: profile.UserID,
			Name:   profile.Name(),
			Points: profile.Points,
		}
	}
	return entries
}

// Diff returns the entries of next that are new or differ from previous, and the users
// that disappeared.
func Diff(previous []*LeaderboardEntry, next []*LeaderboardEntry) *LeaderboardDiff {
	diff := &LeaderboardDiff{
		Changed: make([]*LeaderboardEntry, 0),
		Removed: make([]uuid.UUID, 0),
	}
	old := make(map[uuid.UUID]*LeaderboardEntry, len(previous))
	for _, entry := range previous {
		old[entry.UserID] = entry
	}
	for _, entry := range next {
		if prev, ok := old[entry.UserID]; !ok || *prev != *entry {
			diff.Changed = append(diff.Changed, entry)
		}
		delete(old, entry.UserID)
	}
	for _, entry := range previous {
		if _, ok := old[entry.UserID]; ok {
			diff.Removed = append(diff.Removed, entry.UserID)
		}
	}
	return diff
}
