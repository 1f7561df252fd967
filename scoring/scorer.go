package scoring

import (
	"strconv"
	"strings"
)

// ScorerIdentity identifies a predicted goal scorer. Two identities match by player id
// when both carry one, otherwise by the trimmed name and team pair.
type ScorerIdentity struct {
	PlayerID *int   `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
}

func (s ScorerIdentity) IsEmpty() bool {
	return s.PlayerID == nil && strings.TrimSpace(s.Name) == ""
}

// Key names the identity for lookups of rows that were already resolved, preferring
// the player id.
func (s ScorerIdentity) Key() string {
	if s.PlayerID != nil {
		return "id:" + strconv.Itoa(*s.PlayerID)
	}
	return s.nameKey()
}

func (s ScorerIdentity) nameKey() string {
	return "name:" + strings.TrimSpace(s.Name) + "|team:" + strings.TrimSpace(s.Team)
}

func (s ScorerIdentity) hasName() bool {
	return strings.TrimSpace(s.Name) != ""
}

// Matches reports whether both identities point at the same player.
func (s ScorerIdentity) Matches(other ScorerIdentity) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	if s.PlayerID != nil && other.PlayerID != nil {
		return *s.PlayerID == *other.PlayerID
	}
	return s.hasName() && other.hasName() && s.nameKey() == other.nameKey()
}

// ScorerDecisions holds whether each decided scorer scored in the match.
type ScorerDecisions struct {
	byId       map[int]bool
	byName     map[string]bool
	byNameNoId map[string]bool
}

func NewScorerDecisions() ScorerDecisions {
	return ScorerDecisions{
		byId:       make(map[int]bool),
		byName:     make(map[string]bool),
		byNameNoId: make(map[string]bool),
	}
}

func (d ScorerDecisions) Set(scorer ScorerIdentity, didScore bool) {
	if scorer.IsEmpty() {
		return
	}
	if scorer.PlayerID != nil {
		d.byId[*scorer.PlayerID] = didScore
	}
	if scorer.hasName() {
		d.byName[scorer.nameKey()] = didScore
		if scorer.PlayerID == nil {
			d.byNameNoId[scorer.nameKey()] = didScore
		}
	}
}

// Len is the number of stored identities.
func (d ScorerDecisions) Len() int {
	return len(d.byId) + len(d.byNameNoId)
}

func (d ScorerDecisions) Hit(scorer ScorerIdentity) bool {
	if scorer.IsEmpty() {
		return false
	}
	if scorer.PlayerID != nil {
		if didScore, ok := d.byId[*scorer.PlayerID]; ok {
			return didScore
		}
		if !scorer.hasName() {
			return false
		}
		return d.byNameNoId[scorer.nameKey()]
	}
	return d.byName[scorer.nameKey()]
}
