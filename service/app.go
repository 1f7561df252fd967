package service

import (
	"tipovacka/client"
	"tipovacka/repository"
	"tipovacka/scoring"

	"gorm.io/gorm"
)

type App struct {
	Points      *PointsService
	Evaluation  *EvaluationService
	Placements  *PlacementService
	Manual      *ManualPointsService
	Predictions *PredictionService
	Leaderboard *LeaderboardService
	Rosters     *RosterService
	Users       *UserService
	Matches     *MatchService
}

func NewApp(db *gorm.DB, rules scoring.Rules, publisher client.EventPublisher, rosterCache RosterCache) *App {
	if publisher == nil {
		publisher = client.NoopPublisher{}
	}
	matches := repository.NewMatchRepository(db)
	predictions := repository.NewPredictionRepository(db)
	scorerResults := repository.NewScorerResultRepository(db)
	placements := repository.NewPlacementRepository(db)
	manual := repository.NewManualPointsRepository(db)
	profiles := repository.NewProfileRepository(db)
	players := repository.NewPlayerRepository(db)

	points := NewPointsService(predictions, placements, manual, profiles, publisher)
	rosters := NewRosterService(players, rosterCache)
	return &App{
		Points:      points,
		Evaluation:  NewEvaluationService(matches, predictions, scorerResults, players, points, publisher, rules),
		Placements:  NewPlacementService(placements, points, publisher, rules),
		Manual:      NewManualPointsService(manual, profiles, points, publisher),
		Predictions: NewPredictionService(matches, predictions, placements, players, rosters),
		Leaderboard: NewLeaderboardService(profiles),
		Rosters:     rosters,
		Users:       NewUserService(profiles),
		Matches:     NewMatchService(matches),
	}
}
