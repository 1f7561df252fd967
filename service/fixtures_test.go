package service

import (
	"time"

	"tipovacka/repository"
	"tipovacka/utils"

	"github.com/google/uuid"
)

var (
	alice = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	bob   = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	carol = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	admin = uuid.MustParse("00000000-0000-0000-0000-0000000000ad")

	matchStart = time.Date(2026, 5, 10, 16, 20, 0, 0, time.UTC)
	evaluation = time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// seededDB holds one match CZE-SVK with three predictions:
// alice 3:1 with Pastrnak, bob 4:2 without scorer, carol 2:2 with Slafkovsky.
func seededDB() *memoryDB {
	db := newMemoryDB()
	db.matches[1] = &repository.Match{ID: 1, HomeTeam: "CZE", AwayTeam: "SVK", StartsAt: matchStart}
	db.players[7] = &repository.Player{ID: 7, TeamName: "CZE", Name: "Pastrnak"}
	db.players[8] = &repository.Player{ID: 8, TeamName: "SVK", Name: "Slafkovsky"}
	db.players[9] = &repository.Player{ID: 9, TeamName: "SWE", Name: "Forsberg"}
	for _, user := range []uuid.UUID{alice, bob, carol} {
		db.profiles[user] = &repository.Profile{UserID: user, Email: user.String()[35:] + "@example.com"}
	}
	db.predictions[predictionKey{alice, 1}] = &repository.Prediction{
		UserID: alice, MatchID: 1, HomeScore: 3, AwayScore: 1,
		ScorerPlayerID: utils.Ptr(7), ScorerName: utils.Ptr("Pastrnak"), ScorerTeam: utils.Ptr("CZE"),
	}
	db.predictions[predictionKey{bob, 1}] = &repository.Prediction{
		UserID: bob, MatchID: 1, HomeScore: 4, AwayScore: 2,
	}
	db.predictions[predictionKey{carol, 1}] = &repository.Prediction{
		UserID: carol, MatchID: 1, HomeScore: 2, AwayScore: 2,
		ScorerName: utils.Ptr("Slafkovsky"), ScorerTeam: utils.Ptr("SVK"),
	}
	return db
}

func finalScore(home int, away int, scorers ...ScorerDecision) MatchEvaluation {
	return MatchEvaluation{FinalHome: utils.Ptr(home), FinalAway: utils.Ptr(away), Scorers: scorers}
}

func pointsOf(db *memoryDB, matchId int) map[uuid.UUID]int {
	points := make(map[uuid.UUID]int)
	for key, prediction := range db.predictions {
		if key.id == matchId {
			points[key.userId] = prediction.PointsAwarded
		}
	}
	return points
}

func aggregatesOf(db *memoryDB) map[uuid.UUID]int {
	points := make(map[uuid.UUID]int)
	for user, profile := range db.profiles {
		points[user] = profile.Points
	}
	return points
}
