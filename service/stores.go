package service

import (
	"context"
	"time"

	"tipovacka/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MatchStore interface {
	GetMatchById(ctx context.Context, matchId int) (*repository.Match, error)
	GetAllMatches(ctx context.Context) ([]*repository.Match, error)
	SaveMatch(ctx context.Context, match *repository.Match) (*repository.Match, error)
	SetFinalScore(ctx context.Context, matchId int, home int, away int, evaluatedAt time.Time) error
	ClearFinalScore(ctx context.Context, matchId int) error
}

type PredictionStore interface {
	GetPredictionsForMatch(ctx context.Context, matchId int) ([]*repository.Prediction, error)
	GetPredictionsForUser(ctx context.Context, userId uuid.UUID) ([]*repository.Prediction, error)
	GetPrediction(ctx context.Context, userId uuid.UUID, matchId int) (*repository.Prediction, error)
	UpsertPrediction(ctx context.Context, prediction *repository.Prediction) error
	UpdatePoints(ctx context.Context, userId uuid.UUID, matchId int, points int, detail datatypes.JSON, evaluatedAt *time.Time) error
	ResetPointsForMatch(ctx context.Context, matchId int) (int64, error)
	SumPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error)
}

type ScorerResultStore interface {
	GetScorerResults(ctx context.Context, matchId int) ([]*repository.ScorerResult, error)
	ReplaceScorerResults(ctx context.Context, matchId int, results []*repository.ScorerResult) error
	DeleteScorerResults(ctx context.Context, matchId int) error
}

type PlacementStore interface {
	GetEventById(ctx context.Context, eventId int) (*repository.PlacementEvent, error)
	GetAllEvents(ctx context.Context) ([]*repository.PlacementEvent, error)
	SaveEvent(ctx context.Context, event *repository.PlacementEvent) (*repository.PlacementEvent, error)
	SetCorrectValue(ctx context.Context, eventId int, value string, evaluatedAt time.Time) error
	ClearCorrectValue(ctx context.Context, eventId int) error
	GetPredictionsForEvent(ctx context.Context, eventId int) ([]*repository.PlacementPrediction, error)
	GetPlacementPrediction(ctx context.Context, userId uuid.UUID, eventId int) (*repository.PlacementPrediction, error)
	UpsertPlacementPrediction(ctx context.Context, prediction *repository.PlacementPrediction) error
	UpdatePlacementPoints(ctx context.Context, userId uuid.UUID, eventId int, points int, evaluatedAt *time.Time) error
	ResetPointsForEvent(ctx context.Context, eventId int) (int64, error)
	SumPlacementPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error)
}

type ManualPointsStore interface {
	CreateEntry(ctx context.Context, entry *repository.ManualPointsLogEntry) error
	GetLatestEntries(ctx context.Context, limit int) ([]*repository.ManualPointsLogEntry, error)
	SumDeltasByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*repository.Profile, error)
	CreateProfile(ctx context.Context, profile *repository.Profile) error
	GetAllProfiles(ctx context.Context) ([]*repository.Profile, error)
	UpdatePoints(ctx context.Context, userId uuid.UUID, points int) error
}

type PlayerStore interface {
	GetPlayerById(ctx context.Context, playerId int) (*repository.Player, error)
	GetPlayersForTeam(ctx context.Context, teamName string) ([]*repository.Player, error)
	ReplaceRoster(ctx context.Context, teamName string, players []*repository.Player) error
}
