package service

import (
	"context"
	"sort"
	"time"

	"tipovacka/app_error"
	"tipovacka/repository"
	"tipovacka/scoring"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type predictionKey struct {
	userId uuid.UUID
	id     int
}

// memoryDB backs the store interfaces with maps for flow tests.
type memoryDB struct {
	matches              map[int]*repository.Match
	predictions          map[predictionKey]*repository.Prediction
	scorerResults        map[int][]*repository.ScorerResult
	events               map[int]*repository.PlacementEvent
	placementPredictions map[predictionKey]*repository.PlacementPrediction
	manual               []*repository.ManualPointsLogEntry
	profiles             map[uuid.UUID]*repository.Profile
	players              map[int]*repository.Player
	failProfileWrites    map[uuid.UUID]error
	failPointWrites      map[uuid.UUID]error
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		matches:              make(map[int]*repository.Match),
		predictions:          make(map[predictionKey]*repository.Prediction),
		scorerResults:        make(map[int][]*repository.ScorerResult),
		events:               make(map[int]*repository.PlacementEvent),
		placementPredictions: make(map[predictionKey]*repository.PlacementPrediction),
		profiles:             make(map[uuid.UUID]*repository.Profile),
		players:              make(map[int]*repository.Player),
		failProfileWrites:    make(map[uuid.UUID]error),
		failPointWrites:      make(map[uuid.UUID]error),
	}
}

func notFound(what string) error {
	return app_error.New(app_error.NotFound, "%s not found", what)
}

func (db *memoryDB) app(rules scoring.Rules) *App {
	points := NewPointsService(memoryPredictions{db}, memoryPlacements{db}, memoryManual{db}, memoryProfiles{db}, nil)
	rosters := NewRosterService(memoryPlayers{db}, nil)
	return &App{
		Points:      points,
		Evaluation:  NewEvaluationService(memoryMatches{db}, memoryPredictions{db}, memoryScorerResults{db}, memoryPlayers{db}, points, nil, rules),
		Placements:  NewPlacementService(memoryPlacements{db}, points, nil, rules),
		Manual:      NewManualPointsService(memoryManual{db}, memoryProfiles{db}, points, nil),
		Predictions: NewPredictionService(memoryMatches{db}, memoryPredictions{db}, memoryPlacements{db}, memoryPlayers{db}, rosters),
		Leaderboard: NewLeaderboardService(memoryProfiles{db}),
		Rosters:     rosters,
		Users:       NewUserService(memoryProfiles{db}),
		Matches:     NewMatchService(memoryMatches{db}),
	}
}

type memoryMatches struct{ db *memoryDB }

func (m memoryMatches) GetMatchById(ctx context.Context, matchId int) (*repository.Match, error) {
	match, ok := m.db.matches[matchId]
	if !ok {
		return nil, notFound("match")
	}
	copied := *match
	return &copied, nil
}

func (m memoryMatches) GetAllMatches(ctx context.Context) ([]*repository.Match, error) {
	matches := make([]*repository.Match, 0)
	for _, match := range m.db.matches {
		matches = append(matches, match)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (m memoryMatches) SaveMatch(ctx context.Context, match *repository.Match) (*repository.Match, error) {
	if match.ID == 0 {
		match.ID = len(m.db.matches) + 1
	}
	m.db.matches[match.ID] = match
	return match, nil
}

func (m memoryMatches) SetFinalScore(ctx context.Context, matchId int, home int, away int, evaluatedAt time.Time) error {
	match, ok := m.db.matches[matchId]
	if !ok {
		return notFound("match")
	}
	match.FinalHomeScore, match.FinalAwayScore, match.EvaluatedAt = &home, &away, &evaluatedAt
	return nil
}

func (m memoryMatches) ClearFinalScore(ctx context.Context, matchId int) error {
	match, ok := m.db.matches[matchId]
	if !ok {
		return notFound("match")
	}
	match.FinalHomeScore, match.FinalAwayScore, match.EvaluatedAt = nil, nil, nil
	return nil
}

type memoryPredictions struct{ db *memoryDB }

func (m memoryPredictions) GetPredictionsForMatch(ctx context.Context, matchId int) ([]*repository.Prediction, error) {
	predictions := make([]*repository.Prediction, 0)
	for key, prediction := range m.db.predictions {
		if key.id == matchId {
			predictions = append(predictions, prediction)
		}
	}
	sort.Slice(predictions, func(i, j int) bool {
		return predictions[i].UserID.String() < predictions[j].UserID.String()
	})
	return predictions, nil
}

func (m memoryPredictions) GetPredictionsForUser(ctx context.Context, userId uuid.UUID) ([]*repository.Prediction, error) {
	predictions := make([]*repository.Prediction, 0)
	for key, prediction := range m.db.predictions {
		if key.userId == userId {
			predictions = append(predictions, prediction)
		}
	}
	sort.Slice(predictions, func(i, j int) bool { return predictions[i].MatchID < predictions[j].MatchID })
	return predictions, nil
}

func (m memoryPredictions) GetPrediction(ctx context.Context, userId uuid.UUID, matchId int) (*repository.Prediction, error) {
	prediction, ok := m.db.predictions[predictionKey{userId, matchId}]
	if !ok {
		return nil, notFound("prediction")
	}
	return prediction, nil
}

func (m memoryPredictions) UpsertPrediction(ctx context.Context, prediction *repository.Prediction) error {
	key := predictionKey{prediction.UserID, prediction.MatchID}
	if existing, ok := m.db.predictions[key]; ok {
		existing.HomeScore, existing.AwayScore = prediction.HomeScore, prediction.AwayScore
		existing.ScorerPlayerID, existing.ScorerName, existing.ScorerTeam = prediction.ScorerPlayerID, prediction.ScorerName, prediction.ScorerTeam
		return nil
	}
	copied := *prediction
	copied.PointsAwarded, copied.PointsDetail, copied.EvaluatedAt = 0, nil, nil
	m.db.predictions[key] = &copied
	return nil
}

func (m memoryPredictions) UpdatePoints(ctx context.Context, userId uuid.UUID, matchId int, points int, detail datatypes.JSON, evaluatedAt *time.Time) error {
	if err := m.db.failPointWrites[userId]; err != nil {
		return err
	}
	prediction, ok := m.db.predictions[predictionKey{userId, matchId}]
	if !ok {
		return notFound("prediction")
	}
	prediction.PointsAwarded, prediction.PointsDetail, prediction.EvaluatedAt = points, detail, evaluatedAt
	return nil
}

func (m memoryPredictions) ResetPointsForMatch(ctx context.Context, matchId int) (int64, error) {
	var count int64
	for key, prediction := range m.db.predictions {
		if key.id == matchId {
			prediction.PointsAwarded, prediction.PointsDetail, prediction.EvaluatedAt = 0, nil, nil
			count++
		}
	}
	return count, nil
}

func (m memoryPredictions) SumPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int)
	for key, prediction := range m.db.predictions {
		result[key.userId] += prediction.PointsAwarded
	}
	return result, nil
}

type memoryScorerResults struct{ db *memoryDB }

func (m memoryScorerResults) GetScorerResults(ctx context.Context, matchId int) ([]*repository.ScorerResult, error) {
	return append([]*repository.ScorerResult{}, m.db.scorerResults[matchId]...), nil
}

func (m memoryScorerResults) ReplaceScorerResults(ctx context.Context, matchId int, results []*repository.ScorerResult) error {
	m.db.scorerResults[matchId] = results
	return nil
}

func (m memoryScorerResults) DeleteScorerResults(ctx context.Context, matchId int) error {
	delete(m.db.scorerResults, matchId)
	return nil
}

type memoryPlacements struct{ db *memoryDB }

func (m memoryPlacements) GetEventById(ctx context.Context, eventId int) (*repository.PlacementEvent, error) {
	event, ok := m.db.events[eventId]
	if !ok {
		return nil, notFound("placement event")
	}
	return event, nil
}

func (m memoryPlacements) GetAllEvents(ctx context.Context) ([]*repository.PlacementEvent, error) {
	events := make([]*repository.PlacementEvent, 0)
	for _, event := range m.db.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (m memoryPlacements) SaveEvent(ctx context.Context, event *repository.PlacementEvent) (*repository.PlacementEvent, error) {
	if event.ID == 0 {
		event.ID = len(m.db.events) + 1
	}
	m.db.events[event.ID] = event
	return event, nil
}

func (m memoryPlacements) SetCorrectValue(ctx context.Context, eventId int, value string, evaluatedAt time.Time) error {
	event, ok := m.db.events[eventId]
	if !ok {
		return notFound("placement event")
	}
	event.CorrectValue, event.EvaluatedAt = &value, &evaluatedAt
	return nil
}

func (m memoryPlacements) ClearCorrectValue(ctx context.Context, eventId int) error {
	event, ok := m.db.events[eventId]
	if !ok {
		return notFound("placement event")
	}
	event.CorrectValue, event.EvaluatedAt = nil, nil
	return nil
}

func (m memoryPlacements) GetPredictionsForEvent(ctx context.Context, eventId int) ([]*repository.PlacementPrediction, error) {
	predictions := make([]*repository.PlacementPrediction, 0)
	for key, prediction := range m.db.placementPredictions {
		if key.id == eventId {
			predictions = append(predictions, prediction)
		}
	}
	sort.Slice(predictions, func(i, j int) bool {
		return predictions[i].UserID.String() < predictions[j].UserID.String()
	})
	return predictions, nil
}

func (m memoryPlacements) GetPlacementPrediction(ctx context.Context, userId uuid.UUID, eventId int) (*repository.PlacementPrediction, error) {
	prediction, ok := m.db.placementPredictions[predictionKey{userId, eventId}]
	if !ok {
		return nil, notFound("placement prediction")
	}
	return prediction, nil
}

func (m memoryPlacements) UpsertPlacementPrediction(ctx context.Context, prediction *repository.PlacementPrediction) error {
	key := predictionKey{prediction.UserID, prediction.EventID}
	if existing, ok := m.db.placementPredictions[key]; ok {
		existing.PredictedValue = prediction.PredictedValue
		return nil
	}
	copied := *prediction
	m.db.placementPredictions[key] = &copied
	return nil
}

func (m memoryPlacements) UpdatePlacementPoints(ctx context.Context, userId uuid.UUID, eventId int, points int, evaluatedAt *time.Time) error {
	if err := m.db.failPointWrites[userId]; err != nil {
		return err
	}
	prediction, ok := m.db.placementPredictions[predictionKey{userId, eventId}]
	if !ok {
		return notFound("placement prediction")
	}
	prediction.PointsAwarded, prediction.EvaluatedAt = points, evaluatedAt
	return nil
}

func (m memoryPlacements) ResetPointsForEvent(ctx context.Context, eventId int) (int64, error) {
	var count int64
	for key, prediction := range m.db.placementPredictions {
		if key.id == eventId {
			prediction.PointsAwarded, prediction.EvaluatedAt = 0, nil
			count++
		}
	}
	return count, nil
}

func (m memoryPlacements) SumPlacementPointsByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int)
	for key, prediction := range m.db.placementPredictions {
		result[key.userId] += prediction.PointsAwarded
	}
	return result, nil
}

type memoryManual struct{ db *memoryDB }

func (m memoryManual) CreateEntry(ctx context.Context, entry *repository.ManualPointsLogEntry) error {
	entry.ID = len(m.db.manual) + 1
	m.db.manual = append(m.db.manual, entry)
	return nil
}

func (m memoryManual) GetLatestEntries(ctx context.Context, limit int) ([]*repository.ManualPointsLogEntry, error) {
	entries := make([]*repository.ManualPointsLogEntry, 0)
	for i := len(m.db.manual) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, m.db.manual[i])
	}
	return entries, nil
}

func (m memoryManual) SumDeltasByUser(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int)
	for _, entry := range m.db.manual {
		result[entry.TargetUserID] += entry.ChangeAmount
	}
	return result, nil
}

type memoryProfiles struct{ db *memoryDB }

func (m memoryProfiles) GetProfile(ctx context.Context, userId uuid.UUID) (*repository.Profile, error) {
	profile, ok := m.db.profiles[userId]
	if !ok {
		return nil, notFound("profile")
	}
	copied := *profile
	return &copied, nil
}

func (m memoryProfiles) CreateProfile(ctx context.Context, profile *repository.Profile) error {
	copied := *profile
	m.db.profiles[profile.UserID] = &copied
	return nil
}

func (m memoryProfiles) GetAllProfiles(ctx context.Context) ([]*repository.Profile, error) {
	profiles := make([]*repository.Profile, 0)
	for _, profile := range m.db.profiles {
		copied := *profile
		profiles = append(profiles, &copied)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Email < profiles[j].Email })
	return profiles, nil
}

func (m memoryProfiles) UpdatePoints(ctx context.Context, userId uuid.UUID, points int) error {
	if err := m.db.failProfileWrites[userId]; err != nil {
		return err
	}
	profile, ok := m.db.profiles[userId]
	if !ok {
		return notFound("profile")
	}
	profile.Points = points
	return nil
}

type memoryPlayers struct{ db *memoryDB }

func (m memoryPlayers) GetPlayerById(ctx context.Context, playerId int) (*repository.Player, error) {
	player, ok := m.db.players[playerId]
	if !ok {
		return nil, notFound("player")
	}
	return player, nil
}

func (m memoryPlayers) GetPlayersForTeam(ctx context.Context, teamName string) ([]*repository.Player, error) {
	players := make([]*repository.Player, 0)
	for _, player := range m.db.players {
		if player.TeamName == teamName {
			players = append(players, player)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (m memoryPlayers) ReplaceRoster(ctx context.Context, teamName string, players []*repository.Player) error {
	existing := make(map[string]*repository.Player)
	for id, player := range m.db.players {
		if player.TeamName == teamName {
			existing[player.Name] = player
			delete(m.db.players, id)
		}
	}
	next := 1
	for id := range m.db.players {
		next = max(next, id+1)
	}
	for _, player := range existing {
		next = max(next, player.ID+1)
	}
	for _, player := range players {
		if kept, ok := existing[player.Name]; ok {
			player.ID = kept.ID
		} else {
			player.ID = next
			next++
		}
		m.db.players[player.ID] = player
	}
	return nil
}
