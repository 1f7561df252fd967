package service

import (
	"context"
	"encoding/json"
	"testing"

	"tipovacka/app_error"
	"tipovacka/client"
	"tipovacka/repository"
	"tipovacka/scoring"
	"tipovacka/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pastrnakScored() ScorerDecision {
	return ScorerDecision{ScorerIdentity: scoring.ScorerIdentity{PlayerID: utils.Ptr(7)}, DidScore: true}
}

func assertAggregateInvariant(t *testing.T, db *memoryDB) {
	t.Helper()
	for user, profile := range db.profiles {
		total := 0
		for key, prediction := range db.predictions {
			if key.userId == user {
				total += prediction.PointsAwarded
			}
		}
		for key, prediction := range db.placementPredictions {
			if key.userId == user {
				total += prediction.PointsAwarded
			}
		}
		for _, entry := range db.manual {
			if entry.TargetUserID == user {
				total += entry.ChangeAmount
			}
		}
		assert.Equal(t, scoring.Aggregate(total, 0, 0), profile.Points, "aggregate of %s", profile.Email)
	}
}

func TestEvaluateMatch(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())
	app.Evaluation.now = fixedClock(evaluation)

	report, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, pastrnakScored()))
	require.NoError(t, err)
	assert.True(t, report.Ok())
	assert.Equal(t, 3, report.Predictions.Processed)
	assert.Equal(t, 3, report.Aggregates.Processed)

	assert.Equal(t, map[uuid.UUID]int{alice: 11, bob: 4, carol: 0}, pointsOf(db, 1))
	assert.Equal(t, map[uuid.UUID]int{alice: 11, bob: 4, carol: 0}, aggregatesOf(db))
	assertAggregateInvariant(t, db)

	match := db.matches[1]
	require.True(t, match.IsEvaluated())
	assert.Equal(t, 3, *match.FinalHomeScore)
	assert.Equal(t, 1, *match.FinalAwayScore)
	assert.Equal(t, evaluation, *match.EvaluatedAt)

	results := db.scorerResults[1]
	require.Len(t, results, 2)
	assert.Equal(t, "Pastrnak", results[0].ScorerName)
	assert.True(t, results[0].DidScore)
	assert.Equal(t, "Slafkovsky", results[1].ScorerName)
	assert.False(t, results[1].DidScore, "scorers without a decision did not score")

	breakdown := scoring.Breakdown{}
	require.NoError(t, json.Unmarshal(db.predictions[predictionKey{alice, 1}].PointsDetail, &breakdown))
	assert.Equal(t, scoring.Breakdown{ExactScore: 6, Scorer: 5}, breakdown)

	prediction := db.predictions[predictionKey{alice, 1}]
	assert.Equal(t, 3, prediction.HomeScore, "predicted values are never touched")
	assert.Equal(t, "Pastrnak", *prediction.ScorerName)
}

func TestEvaluateMatchIsIdempotent(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(4, 2, pastrnakScored()))
	require.NoError(t, err)
	first := pointsOf(db, 1)
	firstAggregates := aggregatesOf(db)

	_, err = app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(4, 2, pastrnakScored()))
	require.NoError(t, err)
	assert.Equal(t, first, pointsOf(db, 1))
	assert.Equal(t, firstAggregates, aggregatesOf(db))
	assertAggregateInvariant(t, db)
}

func TestEvaluateMatchOverwritesPreviousEvaluation(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, pastrnakScored()))
	require.NoError(t, err)
	_, err = app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(2, 2))
	require.NoError(t, err)

	assert.Equal(t, map[uuid.UUID]int{alice: 0, bob: 1, carol: 6}, pointsOf(db, 1))
	assertAggregateInvariant(t, db)
}

func TestResetMatch(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, pastrnakScored()))
	require.NoError(t, err)
	report, err := app.Evaluation.ResetMatch(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Predictions.Processed)

	assert.Equal(t, map[uuid.UUID]int{alice: 0, bob: 0, carol: 0}, pointsOf(db, 1))
	assert.Nil(t, db.matches[1].FinalHomeScore)
	assert.Nil(t, db.matches[1].FinalAwayScore)
	assert.Nil(t, db.matches[1].EvaluatedAt)
	assert.Empty(t, db.scorerResults[1])
	assert.Nil(t, db.predictions[predictionKey{alice, 1}].PointsDetail)
	assertAggregateInvariant(t, db)
}

func TestEvaluateMatchKeepsManualAdjustments(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	_, err := app.Manual.Adjust(context.Background(), admin, bob, 5, nil)
	require.NoError(t, err)
	_, err = app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, db.profiles[bob].Points)

	_, err = app.Evaluation.ResetMatch(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, db.profiles[bob].Points)
	assertAggregateInvariant(t, db)
}

func TestEvaluateMatchMissingGroundTruth(t *testing.T) {
	matches := new(MockMatchStore)
	predictions := new(MockPredictionStore)
	scorers := new(MockScorerResultStore)
	service := NewEvaluationService(matches, predictions, scorers, nil, nil, nil, scoring.DefaultRules())

	_, err := service.EvaluateMatch(context.Background(), 1, MatchEvaluation{FinalHome: utils.Ptr(2)})
	assert.True(t, app_error.Is(err, app_error.MissingGroundTruth))

	_, err = service.EvaluateMatch(context.Background(), 1, MatchEvaluation{})
	assert.True(t, app_error.Is(err, app_error.MissingGroundTruth))

	_, err = service.EvaluateMatch(context.Background(), 1, finalScore(-1, 0))
	assert.True(t, app_error.Is(err, app_error.Invalid))

	// no store was touched
	verifyAllMocks(t, matches, predictions, scorers)
	matches.AssertNotCalled(t, "SetFinalScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEvaluateMatchUnknownMatch(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	_, err := app.Evaluation.EvaluateMatch(context.Background(), 42, finalScore(1, 0))
	assert.True(t, app_error.Is(err, app_error.NotFound))
}

func evaluationMocks(predictionList []*repository.Prediction) (*MockMatchStore, *MockPredictionStore, *MockScorerResultStore, *MockProfileStore, *EvaluationService) {
	matches := new(MockMatchStore)
	predictions := new(MockPredictionStore)
	scorers := new(MockScorerResultStore)
	profiles := new(MockProfileStore)
	placements := new(MockPlacementStore)
	manual := new(MockManualPointsStore)

	matches.On("GetMatchById", mock.Anything, 1).Return(&repository.Match{ID: 1, HomeTeam: "CZE", AwayTeam: "SVK"}, nil)
	matches.On("SetFinalScore", mock.Anything, 1, 3, 1, mock.Anything).Return(nil)
	predictions.On("GetPredictionsForMatch", mock.Anything, 1).Return(predictionList, nil)
	scorers.On("ReplaceScorerResults", mock.Anything, 1, mock.Anything).Return(nil)
	predictions.On("SumPointsByUser", mock.Anything, mock.Anything).Return(map[uuid.UUID]int{}, nil).Maybe()
	placements.On("SumPlacementPointsByUser", mock.Anything, mock.Anything).Return(map[uuid.UUID]int{}, nil).Maybe()
	manual.On("SumDeltasByUser", mock.Anything, mock.Anything).Return(map[uuid.UUID]int{}, nil).Maybe()

	points := NewPointsService(predictions, placements, manual, profiles, nil)
	service := NewEvaluationService(matches, predictions, scorers, nil, points, nil, scoring.DefaultRules())
	return matches, predictions, scorers, profiles, service
}

func TestEvaluateMatchContinuesPastRowFailures(t *testing.T) {
	predictionList := []*repository.Prediction{
		{UserID: alice, MatchID: 1, HomeScore: 3, AwayScore: 1},
		{UserID: bob, MatchID: 1, HomeScore: 1, AwayScore: 0},
		{UserID: carol, MatchID: 1, HomeScore: 0, AwayScore: 0},
	}
	matches, predictions, scorers, profiles, service := evaluationMocks(predictionList)
	predictions.On("UpdatePoints", mock.Anything, alice, 1, 6, mock.Anything, mock.Anything).Return(nil)
	predictions.On("UpdatePoints", mock.Anything, bob, 1, 3, mock.Anything, mock.Anything).
		Return(app_error.New(app_error.Transient, "connection reset"))
	predictions.On("UpdatePoints", mock.Anything, carol, 1, 0, mock.Anything, mock.Anything).Return(nil)
	profiles.On("UpdatePoints", mock.Anything, alice, 0).Return(nil)
	profiles.On("UpdatePoints", mock.Anything, bob, 0).Return(app_error.New(app_error.NotFound, "profile missing"))
	profiles.On("UpdatePoints", mock.Anything, carol, 0).Return(nil)

	report, err := service.EvaluateMatch(context.Background(), 1, finalScore(3, 1))
	require.NoError(t, err)
	assert.False(t, report.Ok())
	assert.Equal(t, 2, report.Predictions.Processed)
	require.Len(t, report.Predictions.Failed, 1)
	assert.Equal(t, bob.String(), report.Predictions.Failed[0].Target)
	assert.Equal(t, app_error.Transient, report.Predictions.Failed[0].Kind)

	assert.Equal(t, 2, report.Aggregates.Processed)
	require.Len(t, report.Aggregates.Failed, 1)
	assert.Equal(t, app_error.NotFound, report.Aggregates.Failed[0].Kind)
	verifyAllMocks(t, matches, predictions, scorers, profiles)
}

func TestEvaluateMatchAbortsOnPermissionDenied(t *testing.T) {
	db := seededDB()
	db.failPointWrites[carol] = app_error.New(app_error.PermissionDenied, "row level security")
	app := db.app(scoring.DefaultRules())

	report, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, pastrnakScored()))
	assert.True(t, app_error.Is(err, app_error.PermissionDenied))
	require.NotNil(t, report)
	assert.Equal(t, 2, report.Predictions.Processed)
	require.Len(t, report.Predictions.Failed, 1)
	assert.Equal(t, carol.String(), report.Predictions.Failed[0].Target)

	require.NotNil(t, report.Aggregates, "users written before the abort are recomputed")
	assert.Equal(t, 2, report.Aggregates.Processed)
	assert.Equal(t, map[uuid.UUID]int{alice: 11, bob: 4, carol: 0}, aggregatesOf(db))
	assertAggregateInvariant(t, db)
}

func TestEvaluateMatchStopsAtFirstDeniedRow(t *testing.T) {
	predictionList := []*repository.Prediction{
		{UserID: alice, MatchID: 1, HomeScore: 3, AwayScore: 1},
		{UserID: bob, MatchID: 1, HomeScore: 1, AwayScore: 0},
	}
	_, predictions, _, profiles, service := evaluationMocks(predictionList)
	predictions.On("UpdatePoints", mock.Anything, alice, 1, 6, mock.Anything, mock.Anything).
		Return(app_error.New(app_error.PermissionDenied, "row level security"))

	report, err := service.EvaluateMatch(context.Background(), 1, finalScore(3, 1))
	assert.True(t, app_error.Is(err, app_error.PermissionDenied))
	require.NotNil(t, report)
	assert.Len(t, report.Predictions.Failed, 1)
	require.NotNil(t, report.Aggregates)
	assert.Equal(t, 0, report.Aggregates.Processed, "nothing was written, nothing to recompute")
	predictions.AssertNotCalled(t, "UpdatePoints", mock.Anything, bob, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	profiles.AssertNotCalled(t, "UpdatePoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestEvaluateMatchNameDecisionHitsTipWithPlayerId(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	decision := ScorerDecision{ScorerIdentity: scoring.ScorerIdentity{Name: "Pastrnak", Team: "CZE"}, DidScore: true}
	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, decision))
	require.NoError(t, err)
	assert.Equal(t, 11, db.predictions[predictionKey{alice, 1}].PointsAwarded)

	results := db.scorerResults[1]
	require.Len(t, results, 2, "one row per tipped player")
	assert.Equal(t, utils.Ptr(7), results[0].ScorerPlayerID)
	assert.True(t, results[0].DidScore)
	assert.False(t, results[1].DidScore)
}

func TestEvaluateMatchIdDecisionHitsTipByName(t *testing.T) {
	db := seededDB()
	db.predictions[predictionKey{bob, 1}].ScorerName = utils.Ptr("Pastrnak")
	db.predictions[predictionKey{bob, 1}].ScorerTeam = utils.Ptr("CZE")
	app := db.app(scoring.DefaultRules())

	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, pastrnakScored()))
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{alice: 11, bob: 9, carol: 0}, pointsOf(db, 1))

	results := db.scorerResults[1]
	require.Len(t, results, 2, "alice and bob tipped the same player")
	assert.Equal(t, "Pastrnak", results[0].ScorerName)
	assert.Equal(t, utils.Ptr(7), results[0].ScorerPlayerID)
	assert.True(t, results[0].DidScore)
	assertAggregateInvariant(t, db)
}

func TestEvaluateMatchResolvesIdDecisionThroughRoster(t *testing.T) {
	db := seededDB()
	delete(db.predictions, predictionKey{alice, 1})
	db.predictions[predictionKey{bob, 1}].ScorerName = utils.Ptr("Pastrnak")
	db.predictions[predictionKey{bob, 1}].ScorerTeam = utils.Ptr("CZE")
	app := db.app(scoring.DefaultRules())

	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(4, 2, pastrnakScored()))
	require.NoError(t, err)
	assert.Equal(t, 11, db.predictions[predictionKey{bob, 1}].PointsAwarded)
}

func TestEvaluateMatchDropsDecisionsForUntippedPlayers(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	forsberg := ScorerDecision{ScorerIdentity: scoring.ScorerIdentity{PlayerID: utils.Ptr(9)}, DidScore: true}
	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, forsberg))
	require.NoError(t, err)

	results := db.scorerResults[1]
	require.Len(t, results, 2)
	for _, result := range results {
		assert.NotEqual(t, "Forsberg", result.ScorerName)
	}
}

func TestScorerCandidatesCollapseIdentityForms(t *testing.T) {
	db := seededDB()
	db.predictions[predictionKey{bob, 1}].ScorerName = utils.Ptr(" Pastrnak ")
	db.predictions[predictionKey{bob, 1}].ScorerTeam = utils.Ptr("CZE")
	app := db.app(scoring.DefaultRules())

	decision := ScorerDecision{ScorerIdentity: scoring.ScorerIdentity{Name: "Pastrnak", Team: "CZE"}, DidScore: true}
	_, err := app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, decision))
	require.NoError(t, err)

	candidates, err := app.Evaluation.ScorerCandidates(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, 2, candidates[0].Predictions)
	assert.Equal(t, utils.Ptr(7), candidates[0].PlayerID)
	require.NotNil(t, candidates[0].DidScore)
	assert.True(t, *candidates[0].DidScore)
}

func TestEvaluateMatchPublishes(t *testing.T) {
	db := seededDB()
	publisher := new(MockPublisher)
	points := NewPointsService(memoryPredictions{db}, memoryPlacements{db}, memoryManual{db}, memoryProfiles{db}, publisher)
	service := NewEvaluationService(memoryMatches{db}, memoryPredictions{db}, memoryScorerResults{db}, memoryPlayers{db}, points, publisher, scoring.DefaultRules())
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *client.PointsChangedEvent) bool {
		return e.Reason == client.MatchEvaluated && *e.MatchID == 1 && len(e.UserIDs) == 3
	})).Return(app_error.New(app_error.Transient, "broker down"))

	_, err := service.EvaluateMatch(context.Background(), 1, finalScore(1, 1))
	require.NoError(t, err, "publishing failures never fail the operation")
	verifyAllMocks(t, publisher)
}

func TestPreviewDoesNotWrite(t *testing.T) {
	db := seededDB()
	app := db.app(scoring.DefaultRules())

	previews, err := app.Evaluation.Preview(context.Background(), 1, finalScore(3, 1, pastrnakScored()))
	require.NoError(t, err)
	require.Len(t, previews, 3)
	assert.Equal(t, alice, previews[0].UserID)
	assert.Equal(t, 11, previews[0].Result.Points)
	assert.Equal(t, bob, previews[1].UserID)
	assert.Equal(t, 4, previews[1].Result.Points)

	assert.Equal(t, map[uuid.UUID]int{alice: 0, bob: 0, carol: 0}, pointsOf(db, 1))
	assert.False(t, db.matches[1].IsEvaluated())
	assert.Empty(t, db.scorerResults[1])
}

func TestScorerCandidates(t *testing.T) {
	db := seededDB()
	db.predictions[predictionKey{admin, 1}] = &repository.Prediction{
		UserID: admin, MatchID: 1, HomeScore: 5, AwayScore: 0,
		ScorerPlayerID: utils.Ptr(7), ScorerName: utils.Ptr("Pastrnak"), ScorerTeam: utils.Ptr("CZE"),
	}
	app := db.app(scoring.DefaultRules())

	candidates, err := app.Evaluation.ScorerCandidates(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Pastrnak", candidates[0].Name)
	assert.Equal(t, 2, candidates[0].Predictions)
	assert.Nil(t, candidates[0].DidScore)
	assert.Equal(t, "Slafkovsky", candidates[1].Name)

	_, err = app.Evaluation.EvaluateMatch(context.Background(), 1, finalScore(3, 1, pastrnakScored()))
	require.NoError(t, err)
	candidates, err = app.Evaluation.ScorerCandidates(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, candidates[0].DidScore)
	assert.True(t, *candidates[0].DidScore)
	require.NotNil(t, candidates[1].DidScore)
	assert.False(t, *candidates[1].DidScore)
}
