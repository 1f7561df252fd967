package scoring

// ScorePlacement awards rules.Placement points when the predicted value equals the
// correct one. The comparison is literal: no trimming, no case folding.
func ScorePlacement(predicted string, correct string, rules Rules) int {
	if predicted == correct {
		return rules.Placement
	}
	return 0
}
