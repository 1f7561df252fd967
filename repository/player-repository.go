package repository

import (
	"context"

	"gorm.io/gorm"
)

type Player struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	TeamName string `gorm:"not null;index;uniqueIndex:idx_players_team_name_name" json:"team_name"`
	Name     string `gorm:"not null;uniqueIndex:idx_players_team_name_name" json:"name"`
	Number   *int   `gorm:"null" json:"number,omitempty"`
}

type PlayerRepository struct {
	DB *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{DB: db}
}

func (r *PlayerRepository) GetPlayerById(ctx context.Context, playerId int) (*Player, error) {
	player := &Player{}
	result := r.DB.WithContext(ctx).First(player, playerId)
	if result.Error != nil {
		return nil, classify(result.Error, "player %d", playerId)
	}
	return player, nil
}

func (r *PlayerRepository) GetPlayersForTeam(ctx context.Context, teamName string) ([]*Player, error) {
	defer observe("GetPlayersForTeam")()
	players := make([]*Player, 0)
	result := r.DB.WithContext(ctx).Where("team_name = ?", teamName).Order("name").Find(&players)
	if result.Error != nil {
		return nil, classify(result.Error, "roster of %s", teamName)
	}
	return players, nil
}

// ReplaceRoster makes the given players the team's roster in one transaction. Players
// already on the team keep their id, matched by name, so predictions naming them keep
// pointing at them. Players missing from the list are removed.
func (r *PlayerRepository) ReplaceRoster(ctx context.Context, teamName string, players []*Player) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current := make([]*Player, 0)
		if err := tx.Where("team_name = ?", teamName).Find(&current).Error; err != nil {
			return err
		}
		existing := make(map[string]*Player, len(current))
		for _, player := range current {
			existing[player.Name] = player
		}

		kept := make(map[int]bool, len(players))
		for _, player := range players {
			player.TeamName = teamName
			if old, ok := existing[player.Name]; ok {
				player.ID = old.ID
				kept[old.ID] = true
				if err := tx.Model(&Player{}).Where("id = ?", old.ID).Update("number", player.Number).Error; err != nil {
					return err
				}
				continue
			}
			player.ID = 0
			if err := tx.Create(player).Error; err != nil {
				return err
			}
		}

		removed := make([]int, 0)
		for _, player := range current {
			if !kept[player.ID] {
				removed = append(removed, player.ID)
			}
		}
		if len(removed) == 0 {
			return nil
		}
		return tx.Where("id IN ?", removed).Delete(&Player{}).Error
	})
	return classify(err, "replace roster of %s", teamName)
}
