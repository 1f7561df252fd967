package controller

import (
	"time"

	"tipovacka/app_error"
	"tipovacka/repository"
	"tipovacka/service"
	"tipovacka/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

type MatchController struct {
	matchService      *service.MatchService
	evaluationService *service.EvaluationService
	cacheStore        persistence.CacheStore
}

func NewMatchController(app *service.App, cacheStore persistence.CacheStore) *MatchController {
	return &MatchController{
		matchService:      app.Matches,
		evaluationService: app.Evaluation,
		cacheStore:        cacheStore,
	}
}

func setupMatchController(app *service.App, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewMatchController(app, cacheStore)
	basePath := "/matches"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getMatchesHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createMatchHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
		{Method: "POST", Path: "/:match_id/evaluate", HandlerFunc: e.evaluateMatchHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
		{Method: "DELETE", Path: "/:match_id/evaluation", HandlerFunc: e.resetMatchHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
		{Method: "POST", Path: "/:match_id/preview", HandlerFunc: e.previewMatchHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
		{Method: "GET", Path: "/:match_id/scorers", HandlerFunc: e.getScorerCandidatesHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetMatches
// @Description Lists all matches ordered by start time
// @Tags matches
// @Produce json
// @Success 200 {array} MatchResponse
// @Router /matches [get]
func (e *MatchController) getMatchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matches, err := e.matchService.ListMatches(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(matches, toMatchResponse))
	}
}

// @id CreateMatch
// @Description Schedules a new match
// @Tags matches
// @Accept json
// @Produce json
// @Param body body service.NewMatch true "Match to create"
// @Success 201 {object} MatchResponse
// @Security BearerAuth
// @Router /matches [post]
func (e *MatchController) createMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.NewMatch
		if err := c.BindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		match, err := e.matchService.CreateMatch(c.Request.Context(), input)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toMatchResponse(match))
	}
}

// @id EvaluateMatch
// @Description Stores the final score and scorer decisions of a match and awards points for all predictions on it
// @Tags matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match Id"
// @Param body body service.MatchEvaluation true "Ground truth"
// @Success 200 {object} service.EvaluationReport
// @Success 207 {object} service.EvaluationReport
// @Security BearerAuth
// @Router /matches/{match_id}/evaluate [post]
func (e *MatchController) evaluateMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, ok := intParam(c, "match_id")
		if !ok {
			return
		}
		var evaluation service.MatchEvaluation
		if err := c.BindJSON(&evaluation); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.evaluationService.EvaluateMatch(c.Request.Context(), matchId, evaluation)
		if report != nil {
			flushCache(e.cacheStore)
		}
		respondEvaluation(c, report, err)
	}
}

// @id ResetMatchEvaluation
// @Description Removes the evaluation of a match and zeroes the points of all predictions on it
// @Tags matches
// @Produce json
// @Param match_id path int true "Match Id"
// @Success 200 {object} service.EvaluationReport
// @Security BearerAuth
// @Router /matches/{match_id}/evaluation [delete]
func (e *MatchController) resetMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, ok := intParam(c, "match_id")
		if !ok {
			return
		}
		report, err := e.evaluationService.ResetMatch(c.Request.Context(), matchId)
		if report != nil {
			flushCache(e.cacheStore)
		}
		respondEvaluation(c, report, err)
	}
}

// @id PreviewMatchEvaluation
// @Description Computes the points every prediction would get without storing anything
// @Tags matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match Id"
// @Param body body service.MatchEvaluation true "Ground truth"
// @Success 200 {array} service.PredictionPreview
// @Security BearerAuth
// @Router /matches/{match_id}/preview [post]
func (e *MatchController) previewMatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, ok := intParam(c, "match_id")
		if !ok {
			return
		}
		var evaluation service.MatchEvaluation
		if err := c.BindJSON(&evaluation); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		previews, err := e.evaluationService.Preview(c.Request.Context(), matchId, evaluation)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, previews)
	}
}

// @id GetScorerCandidates
// @Description Lists the distinct scorers predicted for a match with the stored decision
// @Tags matches
// @Produce json
// @Param match_id path int true "Match Id"
// @Success 200 {array} service.ScorerCandidate
// @Security BearerAuth
// @Router /matches/{match_id}/scorers [get]
func (e *MatchController) getScorerCandidatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		matchId, ok := intParam(c, "match_id")
		if !ok {
			return
		}
		candidates, err := e.evaluationService.ScorerCandidates(c.Request.Context(), matchId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, candidates)
	}
}

type MatchResponse struct {
	ID             int        `json:"id" binding:"required"`
	HomeTeam       string     `json:"home_team" binding:"required"`
	AwayTeam       string     `json:"away_team" binding:"required"`
	StartsAt       time.Time  `json:"starts_at" binding:"required"`
	FinalHomeScore *int       `json:"final_home_score"`
	FinalAwayScore *int       `json:"final_away_score"`
	EvaluatedAt    *time.Time `json:"evaluated_at"`
}

func toMatchResponse(match *repository.Match) *MatchResponse {
	return &MatchResponse{
		ID:             match.ID,
		HomeTeam:       match.HomeTeam,
		AwayTeam:       match.AwayTeam,
		StartsAt:       match.StartsAt,
		FinalHomeScore: match.FinalHomeScore,
		FinalAwayScore: match.FinalAwayScore,
		EvaluatedAt:    match.EvaluatedAt,
	}
}
