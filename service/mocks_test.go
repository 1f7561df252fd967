package service

import (
	"context"
	"testing"
	"time"

	"tipovacka/client"
	"tipovacka/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func verifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()
	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

func sums(args mock.Arguments) (map[uuid.UUID]int, error) {
	if v := args.Get(0); v != nil {
		return v.(map[uuid.UUID]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMatchStore struct {
	mock.Mock
}

func (m *MockMatchStore) GetMatchById(ctx context.Context, matchId int) (*repository.Match, error) {
	args := m.Called(ctx, matchId)
	if v := args.Get(0); v != nil {
		return v.(*repository.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchStore) GetAllMatches(ctx context.Context) ([]*repository.Match, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*repository.Match), args.Error(1)
}

func (m *MockMatchStore) SaveMatch(ctx context.Context, match *repository.Match) (*repository.Match, error) {
	args := m.Called(ctx, match)
	if v := args.Get(0); v != nil {
		return v.(*repository.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchStore) SetFinalScore(ctx context.Context, matchId int, home int, away int, evaluatedAt time.Time) error {
	return m.Called(ctx, matchId, home, away, evaluatedAt).Error(0)
}

func (m *MockMatchStore) ClearFinalScore(ctx context.Context, matchId int) error {
	return m.Called(ctx, matchId).Error(0)
}

type MockPredictionStore struct {
	mock.Mock
}

func (m *MockPredictionStore) GetPredictionsForMatch(ctx context.Context, matchId int) ([]*repository.Prediction, error) {
	args := m.Called(ctx, matchId)
	if v := args.Get(0); v != nil {
		return v.([]*repository.Prediction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionStore) GetPredictionsForUser(ctx context.Context, userId uuid.UUID) ([]*repository.Prediction, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]*repository.Prediction), args.Error(1)
}

func (m *MockPredictionStore) GetPrediction(ctx context.Context, userId uuid.UUID, matchId int) (*repository.Prediction, error) {
	args := m.Called(ctx, userId, matchId)
	if v := args.Get(0); v != nil {
		return v.(*repository.Prediction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionStore) UpsertPrediction(ctx context.Context, prediction *repository.Prediction) error {
	return m.Called(ctx, prediction).Error(0)
}

func (m *MockPredictionStore) UpdatePoints(ctx context.Context, userId uuid.UUID, matchId int, points int, detail datatypes.JSON, evaluatedAt *time.Time) error {
	return m.Called(ctx, userId, matchId, points, detail, evaluatedAt).Error(0)
}

func (m *MockPredictionStore) ResetPointsForMatch(ctx context.Context, matchId int) (int64, error) {
	args := m.Called(ctx, matchId)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPredictionStore) SumPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	return sums(m.Called(ctx, userIds))
}

type MockScorerResultStore struct {
	mock.Mock
}

func (m *MockScorerResultStore) GetScorerResults(ctx context.Context, matchId int) ([]*repository.ScorerResult, error) {
	args := m.Called(ctx, matchId)
	return args.Get(0).([]*repository.ScorerResult), args.Error(1)
}

func (m *MockScorerResultStore) ReplaceScorerResults(ctx context.Context, matchId int, results []*repository.ScorerResult) error {
	return m.Called(ctx, matchId, results).Error(0)
}

func (m *MockScorerResultStore) DeleteScorerResults(ctx context.Context, matchId int) error {
	return m.Called(ctx, matchId).Error(0)
}

type MockPlacementStore struct {
	mock.Mock
}

func (m *MockPlacementStore) GetEventById(ctx context.Context, eventId int) (*repository.PlacementEvent, error) {
	args := m.Called(ctx, eventId)
	if v := args.Get(0); v != nil {
		return v.(*repository.PlacementEvent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlacementStore) GetAllEvents(ctx context.Context) ([]*repository.PlacementEvent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*repository.PlacementEvent), args.Error(1)
}

func (m *MockPlacementStore) SaveEvent(ctx context.Context, event *repository.PlacementEvent) (*repository.PlacementEvent, error) {
	args := m.Called(ctx, event)
	if v := args.Get(0); v != nil {
		return v.(*repository.PlacementEvent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlacementStore) SetCorrectValue(ctx context.Context, eventId int, value string, evaluatedAt time.Time) error {
	return m.Called(ctx, eventId, value, evaluatedAt).Error(0)
}

func (m *MockPlacementStore) ClearCorrectValue(ctx context.Context, eventId int) error {
	return m.Called(ctx, eventId).Error(0)
}

func (m *MockPlacementStore) GetPredictionsForEvent(ctx context.Context, eventId int) ([]*repository.PlacementPrediction, error) {
	args := m.Called(ctx, eventId)
	if v := args.Get(0); v != nil {
		return v.([]*repository.PlacementPrediction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlacementStore) GetPlacementPrediction(ctx context.Context, userId uuid.UUID, eventId int) (*repository.PlacementPrediction, error) {
	args := m.Called(ctx, userId, eventId)
	if v := args.Get(0); v != nil {
		return v.(*repository.PlacementPrediction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlacementStore) UpsertPlacementPrediction(ctx context.Context, prediction *repository.PlacementPrediction) error {
	return m.Called(ctx, prediction).Error(0)
}

func (m *MockPlacementStore) UpdatePlacementPoints(ctx context.Context, userId uuid.UUID, eventId int, points int, evaluatedAt *time.Time) error {
	return m.Called(ctx, userId, eventId, points, evaluatedAt).Error(0)
}

func (m *MockPlacementStore) ResetPointsForEvent(ctx context.Context, eventId int) (int64, error) {
	args := m.Called(ctx, eventId)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlacementStore) SumPlacementPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	return sums(m.Called(ctx, userIds))
}

type MockManualPointsStore struct {
	mock.Mock
}

func (m *MockManualPointsStore) CreateEntry(ctx context.Context, entry *repository.ManualPointsLogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockManualPointsStore) GetLatestEntries(ctx context.Context, limit int) ([]*repository.ManualPointsLogEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*repository.ManualPointsLogEntry), args.Error(1)
}

func (m *MockManualPointsStore) SumDeltasByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	return sums(m.Called(ctx, userIds))
}

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetProfile(ctx context.Context, userId uuid.UUID) (*repository.Profile, error) {
	args := m.Called(ctx, userId)
	if v := args.Get(0); v != nil {
		return v.(*repository.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileStore) CreateProfile(ctx context.Context, profile *repository.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileStore) GetAllProfiles(ctx context.Context) ([]*repository.Profile, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*repository.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileStore) UpdatePoints(ctx context.Context, userId uuid.UUID, points int) error {
	return m.Called(ctx, userId, points).Error(0)
}

type MockPlayerStore struct {
	mock.Mock
}

func (m *MockPlayerStore) GetPlayerById(ctx context.Context, playerId int) (*repository.Player, error) {
	args := m.Called(ctx, playerId)
	if v := args.Get(0); v != nil {
		return v.(*repository.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerStore) GetPlayersForTeam(ctx context.Context, teamName string) ([]*repository.Player, error) {
	args := m.Called(ctx, teamName)
	if v := args.Get(0); v != nil {
		return v.([]*repository.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerStore) ReplaceRoster(ctx context.Context, teamName string, players []*repository.Player) error {
	return m.Called(ctx, teamName, players).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event *client.PointsChangedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
