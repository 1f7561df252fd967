package controller

import (
	"tipovacka/app_error"
	"tipovacka/service"

	"github.com/gin-gonic/gin"
)

type RosterController struct {
	rosterService *service.RosterService
}

func NewRosterController(app *service.App) *RosterController {
	return &RosterController{rosterService: app.Rosters}
}

func setupRosterController(app *service.App) []RouteInfo {
	e := NewRosterController(app)
	basePath := "/rosters"
	routes := []RouteInfo{
		{Method: "GET", Path: "/:team", HandlerFunc: e.getRosterHandler(), Authenticated: true},
		{Method: "PUT", Path: "/:team", HandlerFunc: e.replaceRosterHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetRoster
// @Description Lists the players of a team
// @Tags rosters
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {array} repository.Player
// @Security BearerAuth
// @Router /rosters/{team} [get]
func (e *RosterController) getRosterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		players, err := e.rosterService.GetRoster(c.Request.Context(), c.Param("team"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, players)
	}
}

// @id ReplaceRoster
// @Description Replaces the whole roster of a team
// @Tags rosters
// @Accept json
// @Produce json
// @Param team path string true "Team name"
// @Param body body []service.RosterEntry true "Players"
// @Success 200 {array} repository.Player
// @Security BearerAuth
// @Router /rosters/{team} [put]
func (e *RosterController) replaceRosterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := make([]service.RosterEntry, 0)
		if err := c.BindJSON(&entries); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		players, err := e.rosterService.ReplaceRoster(c.Request.Context(), c.Param("team"), entries)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, players)
	}
}
