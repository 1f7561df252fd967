package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"tipovacka/app_error"
	"tipovacka/repository"
	"tipovacka/utils"

	"github.com/google/uuid"
)

const (
	maxPredictedGoals     = 99
	maxPlacementValueSize = 255
)

type ScorerPick struct {
	PlayerID *int   `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
}

type MatchPredictionInput struct {
	HomeScore *int        `json:"home_score"`
	AwayScore *int        `json:"away_score"`
	Scorer    *ScorerPick `json:"scorer"`
}

type PredictionService struct {
	matches     MatchStore
	predictions PredictionStore
	placements  PlacementStore
	players     PlayerStore
	rosters     *RosterService
	now         func() time.Time
}

func NewPredictionService(matches MatchStore, predictions PredictionStore, placements PlacementStore, players PlayerStore, rosters *RosterService) *PredictionService {
	return &PredictionService{
		matches:     matches,
		predictions: predictions,
		placements:  placements,
		players:     players,
		rosters:     rosters,
		now:         time.Now,
	}
}

func validGoals(goals *int) bool {
	return goals != nil && *goals >= 0 && *goals <= maxPredictedGoals
}

// resolveScorer checks that the pick is on the roster of one of the two teams and
// returns the player it refers to.
func (e *PredictionService) resolveScorer(ctx context.Context, match *repository.Match, pick *ScorerPick) (*repository.Player, error) {
	if pick.PlayerID != nil {
		player, err := e.players.GetPlayerById(ctx, *pick.PlayerID)
		if app_error.Is(err, app_error.NotFound) {
			return nil, app_error.Wrap(app_error.Invalid, err, "unknown scorer")
		}
		if err != nil {
			return nil, err
		}
		if !match.HasTeam(player.TeamName) {
			return nil, app_error.New(app_error.Invalid, "%s does not play in this match", player.Name)
		}
		return player, nil
	}
	team := strings.TrimSpace(pick.Team)
	if !match.HasTeam(team) {
		return nil, app_error.New(app_error.Invalid, "scorer team must be %s or %s", match.HomeTeam, match.AwayTeam)
	}
	player, err := e.rosters.FindPlayer(ctx, team, pick.Name)
	if app_error.Is(err, app_error.NotFound) {
		return nil, app_error.Wrap(app_error.Invalid, err, "unknown scorer")
	}
	return player, err
}

// SubmitMatchPrediction creates or updates the prediction of a user. Points already
// awarded are never touched by a submission.
func (e *PredictionService) SubmitMatchPrediction(ctx context.Context, userId uuid.UUID, matchId int, input MatchPredictionInput) (*repository.Prediction, error) {
	if !validGoals(input.HomeScore) || !validGoals(input.AwayScore) {
		return nil, app_error.New(app_error.Invalid, "both scores must be between 0 and %d", maxPredictedGoals)
	}
	match, err := e.matches.GetMatchById(ctx, matchId)
	if err != nil {
		return nil, err
	}
	if match.IsLocked(e.now()) {
		return nil, app_error.New(app_error.Locked, "match %d has already started", matchId)
	}
	prediction := &repository.Prediction{
		UserID:    userId,
		MatchID:   matchId,
		HomeScore: *input.HomeScore,
		AwayScore: *input.AwayScore,
	}
	if input.Scorer != nil && (input.Scorer.PlayerID != nil || strings.TrimSpace(input.Scorer.Name) != "") {
		player, err := e.resolveScorer(ctx, match, input.Scorer)
		if err != nil {
			return nil, err
		}
		prediction.ScorerPlayerID = utils.Ptr(player.ID)
		prediction.ScorerName = utils.Ptr(player.Name)
		prediction.ScorerTeam = utils.Ptr(player.TeamName)
	}
	if err := e.predictions.UpsertPrediction(ctx, prediction); err != nil {
		return nil, err
	}
	return e.predictions.GetPrediction(ctx, userId, matchId)
}

func (e *PredictionService) GetMatchPrediction(ctx context.Context, userId uuid.UUID, matchId int) (*repository.Prediction, error) {
	return e.predictions.GetPrediction(ctx, userId, matchId)
}

func (e *PredictionService) GetUserPredictions(ctx context.Context, userId uuid.UUID) ([]*repository.Prediction, error) {
	return e.predictions.GetPredictionsForUser(ctx, userId)
}

// SubmitPlacementPrediction stores the trimmed value. Scoring later compares it
// literally with the correct value.
func (e *PredictionService) SubmitPlacementPrediction(ctx context.Context, userId uuid.UUID, eventId int, value string) (*repository.PlacementPrediction, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, app_error.New(app_error.Invalid, "predicted value is required")
	}
	if utf8.RuneCountInString(value) > maxPlacementValueSize {
		return nil, app_error.New(app_error.Invalid, "predicted value is longer than %d characters", maxPlacementValueSize)
	}
	event, err := e.placements.GetEventById(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if event.IsLocked(e.now()) {
		return nil, app_error.New(app_error.Locked, "placement event %d is closed", eventId)
	}
	prediction := &repository.PlacementPrediction{
		UserID:         userId,
		EventID:        eventId,
		PredictedValue: value,
	}
	if err := e.placements.UpsertPlacementPrediction(ctx, prediction); err != nil {
		return nil, err
	}
	return e.placements.GetPlacementPrediction(ctx, userId, eventId)
}

func (e *PredictionService) GetPlacementPrediction(ctx context.Context, userId uuid.UUID, eventId int) (*repository.PlacementPrediction, error) {
	return e.placements.GetPlacementPrediction(ctx, userId, eventId)
}
