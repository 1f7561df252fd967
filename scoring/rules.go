package scoring

// Rules holds the point values used by the scorers. The zero value awards nothing,
// use DefaultRules for the tournament defaults.
type Rules struct {
	ExactScore    int
	WinnerAndDiff int
	WinnerOnly    int
	OneTeamGoals  int
	BaseCap       int
	ScorerBonus   int
	TotalCap      int
	Placement     int
}

func DefaultRules() Rules {
	return Rules{
		ExactScore:    6,
		WinnerAndDiff: 4,
		WinnerOnly:    3,
		OneTeamGoals:  1,
		BaseCap:       6,
		ScorerBonus:   5,
		TotalCap:      11,
		Placement:     10,
	}
}

func capAt(points int, limit int) int {
	if limit > 0 && points > limit {
		return limit
	}
	return points
}
