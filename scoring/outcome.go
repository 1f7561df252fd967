package scoring

import (
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ScoreLine struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

func (s ScoreLine) Diff() int {
	return s.Home - s.Away
}

// Winner is +1 for a home win, -1 for an away win and 0 for a tie.
func (s ScoreLine) Winner() int {
	diff := s.Diff()
	if diff > 0 {
		return 1
	}
	if diff < 0 {
		return -1
	}
	return 0
}

type Breakdown struct {
	ExactScore    int `json:"exact_score"`
	WinnerAndDiff int `json:"winner_and_diff"`
	WinnerOnly    int `json:"winner_only"`
	OneTeamGoals  int `json:"one_team_goals"`
	Scorer        int `json:"scorer"`
}

func (b Breakdown) JSON() []byte {
	data, _ := json.Marshal(b)
	return data
}

type Result struct {
	Points    int       `json:"points"`
	Breakdown Breakdown `json:"breakdown"`
}

// Tip is a single match prediction as seen by the scorer.
type Tip struct {
	Predicted ScoreLine
	Scorer    ScorerIdentity
}

var scoreEvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "tipovacka_score_evaluation_duration_s",
	Help: "Duration of scoring all predictions of a match",
	Buckets: []float64{
		0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1,
	},
})

// ScoreOutcome scores the predicted score line against the final one, without any
// scorer bonus. The result never exceeds rules.BaseCap.
func ScoreOutcome(predicted ScoreLine, actual ScoreLine, rules Rules) Result {
	result := Result{}
	if predicted == actual {
		result.Breakdown.ExactScore = rules.ExactScore
		result.Points = capAt(rules.ExactScore, rules.BaseCap)
		return result
	}

	sameWinner := predicted.Winner() == actual.Winner()
	if sameWinner && predicted.Diff() == actual.Diff() {
		result.Breakdown.WinnerAndDiff = rules.WinnerAndDiff
	} else if sameWinner && predicted.Winner() != 0 {
		result.Breakdown.WinnerOnly = rules.WinnerOnly
	}
	if predicted.Home == actual.Home || predicted.Away == actual.Away {
		result.Breakdown.OneTeamGoals = rules.OneTeamGoals
	}
	base := result.Breakdown.WinnerAndDiff + result.Breakdown.WinnerOnly + result.Breakdown.OneTeamGoals
	result.Points = capAt(base, rules.BaseCap)
	return result
}

// ScoreMatch scores one prediction including the scorer bonus. scorerHit reports
// whether the predicted scorer was marked as having scored.
func ScoreMatch(predicted ScoreLine, actual ScoreLine, scorerHit bool, rules Rules) Result {
	result := ScoreOutcome(predicted, actual, rules)
	if scorerHit {
		result.Breakdown.Scorer = rules.ScorerBonus
		result.Points += rules.ScorerBonus
	}
	result.Points = capAt(result.Points, rules.TotalCap)
	return result
}

// ScoreTips scores every tip of a match against the final score line. The returned
// slice is parallel to tips.
func ScoreTips(tips []Tip, final ScoreLine, decisions ScorerDecisions, rules Rules) []Result {
	t := time.Now()
	defer func() { scoreEvaluationDuration.Observe(time.Since(t).Seconds()) }()
	results := make([]Result, len(tips))
	for i, tip := range tips {
		results[i] = ScoreMatch(tip.Predicted, final, decisions.Hit(tip.Scorer), rules)
	}
	return results
}
