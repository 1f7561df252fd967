package scoring

// PointSources are the three inputs of a user's total.
type PointSources struct {
	Match     int `json:"match"`
	Placement int `json:"placement"`
	Manual    int `json:"manual"`
}

// Total is the sum of all sources floored at zero.
func (p PointSources) Total() int {
	return Aggregate(p.Match, p.Placement, p.Manual)
}

func Aggregate(matchPoints int, placementPoints int, manualDelta int) int {
	total := matchPoints + placementPoints + manualDelta
	if total < 0 {
		return 0
	}
	return total
}
