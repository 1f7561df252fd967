package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"tipovacka/app_error"
	"tipovacka/client"
	"tipovacka/metrics"
	"tipovacka/repository"
	"tipovacka/scoring"
	"tipovacka/utils"

	"github.com/google/uuid"
)

type ScorerDecision struct {
	scoring.ScorerIdentity
	DidScore bool `json:"did_score"`
}

// MatchEvaluation is the ground truth an admin supplies for a match.
type MatchEvaluation struct {
	FinalHome *int             `json:"final_home"`
	FinalAway *int             `json:"final_away"`
	Scorers   []ScorerDecision `json:"scorers"`
}

func (m MatchEvaluation) finalScore() (scoring.ScoreLine, error) {
	if m.FinalHome == nil || m.FinalAway == nil {
		return scoring.ScoreLine{}, app_error.New(app_error.MissingGroundTruth, "final score of both teams is required")
	}
	if *m.FinalHome < 0 || *m.FinalAway < 0 {
		return scoring.ScoreLine{}, app_error.New(app_error.Invalid, "final score cannot be negative")
	}
	return scoring.ScoreLine{Home: *m.FinalHome, Away: *m.FinalAway}, nil
}

func (m MatchEvaluation) decisions() scoring.ScorerDecisions {
	decisions := scoring.NewScorerDecisions()
	for _, scorer := range m.Scorers {
		decisions.Set(scorer.ScorerIdentity, scorer.DidScore)
	}
	return decisions
}

type EvaluationReport struct {
	Predictions *BatchReport `json:"predictions"`
	Aggregates  *BatchReport `json:"aggregates"`
}

func (r *EvaluationReport) Ok() bool {
	return (r.Predictions == nil || r.Predictions.Ok()) && (r.Aggregates == nil || r.Aggregates.Ok())
}

type PredictionPreview struct {
	UserID    uuid.UUID              `json:"user_id"`
	Predicted scoring.ScoreLine      `json:"predicted"`
	Scorer    scoring.ScorerIdentity `json:"scorer"`
	Result    scoring.Result         `json:"result"`
}

type ScorerCandidate struct {
	scoring.ScorerIdentity
	Predictions int   `json:"predictions"`
	DidScore    *bool `json:"did_score"`
}

type EvaluationService struct {
	matches       MatchStore
	predictions   PredictionStore
	scorerResults ScorerResultStore
	players       PlayerStore
	points        *PointsService
	publisher     client.EventPublisher
	rules         scoring.Rules
	now           func() time.Time
}

func NewEvaluationService(matches MatchStore, predictions PredictionStore, scorerResults ScorerResultStore, players PlayerStore, points *PointsService, publisher client.EventPublisher, rules scoring.Rules) *EvaluationService {
	return &EvaluationService{
		matches:       matches,
		predictions:   predictions,
		scorerResults: scorerResults,
		players:       players,
		points:        points,
		publisher:     publisher,
		rules:         rules,
		now:           time.Now,
	}
}

func tipsOf(predictions []*repository.Prediction) []scoring.Tip {
	return utils.Map(predictions, func(p *repository.Prediction) scoring.Tip {
		return scoring.Tip{Predicted: p.ScoreLine(), Scorer: p.Scorer()}
	})
}

func userIdsOfPredictions(predictions []*repository.Prediction) []uuid.UUID {
	return utils.Map(predictions, func(p *repository.Prediction) uuid.UUID { return p.UserID })
}

// scorerGroup is one tipped player with the number of predictions naming them. Tips
// stored by id and by name collapse into the same group.
type scorerGroup struct {
	identity    scoring.ScorerIdentity
	predictions int
}

func groupScorers(predictions []*repository.Prediction) []*scorerGroup {
	groups := make([]*scorerGroup, 0)
	for _, prediction := range predictions {
		scorer := prediction.Scorer()
		if scorer.IsEmpty() {
			continue
		}
		group := findScorerGroup(groups, scorer)
		if group == nil {
			groups = append(groups, &scorerGroup{identity: scorer, predictions: 1})
			continue
		}
		group.predictions++
		if group.identity.PlayerID == nil && scorer.PlayerID != nil {
			group.identity = scorer
		}
	}
	return groups
}

func findScorerGroup(groups []*scorerGroup, scorer scoring.ScorerIdentity) *scorerGroup {
	for _, group := range groups {
		if group.identity.Matches(scorer) {
			return group
		}
	}
	return nil
}

// scorerResultRows stores one row per tipped player. A tipped player without a
// decision is stored as not having scored, decisions for players nobody tipped are
// dropped.
func scorerResultRows(matchId int, decisions scoring.ScorerDecisions, predictions []*repository.Prediction) []*repository.ScorerResult {
	return utils.Map(groupScorers(predictions), func(group *scorerGroup) *repository.ScorerResult {
		row := &repository.ScorerResult{
			MatchID:        matchId,
			ScorerPlayerID: group.identity.PlayerID,
			ScorerName:     strings.TrimSpace(group.identity.Name),
			DidScore:       decisions.Hit(group.identity),
		}
		if team := strings.TrimSpace(group.identity.Team); team != "" {
			row.ScorerTeam = utils.Ptr(team)
		}
		return row
	})
}

// resolveDecisions fills in name and team of decisions that only carry a player id, so
// they also hit tips stored by name.
func (e *EvaluationService) resolveDecisions(ctx context.Context, evaluation MatchEvaluation, predictions []*repository.Prediction) (scoring.ScorerDecisions, error) {
	resolved := make([]ScorerDecision, len(evaluation.Scorers))
	for i, decision := range evaluation.Scorers {
		if decision.PlayerID != nil && strings.TrimSpace(decision.Name) == "" {
			identity, err := e.lookupScorer(ctx, *decision.PlayerID, predictions)
			if err != nil {
				return scoring.ScorerDecisions{}, err
			}
			decision.ScorerIdentity = identity
		}
		resolved[i] = decision
	}
	evaluation.Scorers = resolved
	return evaluation.decisions(), nil
}

func (e *EvaluationService) lookupScorer(ctx context.Context, playerId int, predictions []*repository.Prediction) (scoring.ScorerIdentity, error) {
	for _, prediction := range predictions {
		scorer := prediction.Scorer()
		if scorer.PlayerID != nil && *scorer.PlayerID == playerId && strings.TrimSpace(scorer.Name) != "" {
			return scorer, nil
		}
	}
	identity := scoring.ScorerIdentity{PlayerID: utils.Ptr(playerId)}
	if e.players == nil {
		return identity, nil
	}
	player, err := e.players.GetPlayerById(ctx, playerId)
	if app_error.Is(err, app_error.NotFound) {
		return identity, nil
	}
	if err != nil {
		return identity, err
	}
	identity.Name, identity.Team = player.Name, player.TeamName
	return identity, nil
}

// EvaluateMatch stores the final score and scorer decisions of a match, overwrites the
// points of every prediction on it and recomputes the aggregates of the tipping users.
// Running it twice with the same input yields the same points.
func (e *EvaluationService) EvaluateMatch(ctx context.Context, matchId int, evaluation MatchEvaluation) (*EvaluationReport, error) {
	final, err := evaluation.finalScore()
	if err != nil {
		return nil, err
	}
	if _, err := e.matches.GetMatchById(ctx, matchId); err != nil {
		return nil, err
	}
	predictions, err := e.predictions.GetPredictionsForMatch(ctx, matchId)
	if err != nil {
		return nil, err
	}

	decisions, err := e.resolveDecisions(ctx, evaluation, predictions)
	if err != nil {
		return nil, err
	}

	evaluatedAt := e.now()
	if err := e.matches.SetFinalScore(ctx, matchId, final.Home, final.Away, evaluatedAt); err != nil {
		return nil, err
	}
	if err := e.scorerResults.ReplaceScorerResults(ctx, matchId, scorerResultRows(matchId, decisions, predictions)); err != nil {
		return nil, err
	}
	metrics.EvaluationCounter.WithLabelValues("match", "evaluate").Inc()

	report := &EvaluationReport{Predictions: NewBatchReport()}
	results := scoring.ScoreTips(tipsOf(predictions), final, decisions, e.rules)
	written := make([]uuid.UUID, 0, len(predictions))
	for i, prediction := range predictions {
		result := results[i]
		err := e.predictions.UpdatePoints(ctx, prediction.UserID, matchId, result.Points, result.Breakdown.JSON(), &evaluatedAt)
		if err != nil {
			metrics.RowFailureCounter.WithLabelValues(string(app_error.KindOf(err))).Inc()
		} else {
			written = append(written, prediction.UserID)
		}
		if abort := report.Predictions.record(prediction.UserID.String(), err); abort != nil {
			report.Aggregates = e.points.recomputeAfterAbort(ctx, written)
			publish(ctx, e.publisher, client.MatchEvaluated, &matchId, nil, written)
			return report, abort
		}
	}

	userIds := userIdsOfPredictions(predictions)
	report.Aggregates, err = e.points.Recompute(ctx, userIds)
	if err != nil {
		return report, err
	}
	publish(ctx, e.publisher, client.MatchEvaluated, &matchId, nil, userIds)
	return report, nil
}

// ResetMatch undoes an evaluation: final score and scorer decisions are removed and the
// points of every prediction on the match go back to zero.
func (e *EvaluationService) ResetMatch(ctx context.Context, matchId int) (*EvaluationReport, error) {
	if _, err := e.matches.GetMatchById(ctx, matchId); err != nil {
		return nil, err
	}
	predictions, err := e.predictions.GetPredictionsForMatch(ctx, matchId)
	if err != nil {
		return nil, err
	}
	reset, err := e.predictions.ResetPointsForMatch(ctx, matchId)
	if err != nil {
		return nil, err
	}
	if err := e.scorerResults.DeleteScorerResults(ctx, matchId); err != nil {
		return nil, err
	}
	if err := e.matches.ClearFinalScore(ctx, matchId); err != nil {
		return nil, err
	}
	metrics.EvaluationCounter.WithLabelValues("match", "reset").Inc()

	report := &EvaluationReport{Predictions: NewBatchReport()}
	report.Predictions.Processed = int(reset)
	userIds := userIdsOfPredictions(predictions)
	report.Aggregates, err = e.points.Recompute(ctx, userIds)
	if err != nil {
		return report, err
	}
	publish(ctx, e.publisher, client.MatchReset, &matchId, nil, userIds)
	return report, nil
}

// Preview scores every prediction of a match against the given ground truth without
// writing anything.
func (e *EvaluationService) Preview(ctx context.Context, matchId int, evaluation MatchEvaluation) ([]*PredictionPreview, error) {
	final, err := evaluation.finalScore()
	if err != nil {
		return nil, err
	}
	if _, err := e.matches.GetMatchById(ctx, matchId); err != nil {
		return nil, err
	}
	predictions, err := e.predictions.GetPredictionsForMatch(ctx, matchId)
	if err != nil {
		return nil, err
	}
	decisions, err := e.resolveDecisions(ctx, evaluation, predictions)
	if err != nil {
		return nil, err
	}
	results := scoring.ScoreTips(tipsOf(predictions), final, decisions, e.rules)
	previews := make([]*PredictionPreview, len(predictions))
	for i, prediction := range predictions {
		previews[i] = &PredictionPreview{
			UserID:    prediction.UserID,
			Predicted: prediction.ScoreLine(),
			Scorer:    prediction.Scorer(),
			Result:    results[i],
		}
	}
	sort.SliceStable(previews, func(i, j int) bool {
		return previews[i].Result.Points > previews[j].Result.Points
	})
	return previews, nil
}

// ScorerCandidates lists the distinct scorers tipped for a match together with the
// stored decision, if the match was evaluated already.
func (e *EvaluationService) ScorerCandidates(ctx context.Context, matchId int) ([]*ScorerCandidate, error) {
	if _, err := e.matches.GetMatchById(ctx, matchId); err != nil {
		return nil, err
	}
	predictions, err := e.predictions.GetPredictionsForMatch(ctx, matchId)
	if err != nil {
		return nil, err
	}
	results, err := e.scorerResults.GetScorerResults(ctx, matchId)
	if err != nil {
		return nil, err
	}
	candidates := utils.Map(groupScorers(predictions), func(group *scorerGroup) *ScorerCandidate {
		candidate := &ScorerCandidate{ScorerIdentity: group.identity, Predictions: group.predictions}
		for _, result := range results {
			if result.Scorer().Matches(group.identity) {
				candidate.DidScore = utils.Ptr(result.DidScore)
				break
			}
		}
		return candidate
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Team != candidates[j].Team {
			return candidates[i].Team < candidates[j].Team
		}
		return candidates[i].Name < candidates[j].Name
	})
	return candidates, nil
}
