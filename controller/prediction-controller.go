package controller

import (
	"encoding/json"
	"time"

	"tipovacka/app_error"
	"tipovacka/repository"
	"tipovacka/scoring"
	"tipovacka/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PredictionController struct {
	predictionService *service.PredictionService
}

func NewPredictionController(app *service.App) *PredictionController {
	return &PredictionController{predictionService: app.Predictions}
}

func setupPredictionController(app *service.App) []RouteInfo {
	e := NewPredictionController(app)
	return []RouteInfo{
		{Method: "GET", Path: "/matches/:match_id/prediction", HandlerFunc: e.getMatchPredictionHandler(), Authenticated: true},
		{Method: "PUT", Path: "/matches/:match_id/prediction", HandlerFunc: e.submitMatchPredictionHandler(), Authenticated: true},
		{Method: "GET", Path: "/placements/:event_id/prediction", HandlerFunc: e.getPlacementPredictionHandler(), Authenticated: true},
		{Method: "PUT", Path: "/placements/:event_id/prediction", HandlerFunc: e.submitPlacementPredictionHandler(), Authenticated: true},
	}
}

// @id GetMatchPrediction
// @Description Returns the caller's prediction for a match
// @Tags predictions
// @Produce json
// @Param match_id path int true "Match Id"
// @Success 200 {object} PredictionResponse
// @Security BearerAuth
// @Router /matches/{match_id}/prediction [get]
func (e *PredictionController) getMatchPredictionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := getPrincipal(c)
		if principal == nil {
			return
		}
		matchId, ok := intParam(c, "match_id")
		if !ok {
			return
		}
		prediction, err := e.predictionService.GetMatchPrediction(c.Request.Context(), principal.UserID, matchId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPredictionResponse(prediction))
	}
}

// @id SubmitMatchPrediction
// @Description Creates or updates the caller's prediction for a match until the match starts
// @Tags predictions
// @Accept json
// @Produce json
// @Param match_id path int true "Match Id"
// @Param body body service.MatchPredictionInput true "Prediction"
// @Success 200 {object} PredictionResponse
// @Security BearerAuth
// @Router /matches/{match_id}/prediction [put]
func (e *PredictionController) submitMatchPredictionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := getPrincipal(c)
		if principal == nil {
			return
		}
		matchId, ok := intParam(c, "match_id")
		if !ok {
			return
		}
		var input service.MatchPredictionInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		prediction, err := e.predictionService.SubmitMatchPrediction(c.Request.Context(), principal.UserID, matchId, input)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPredictionResponse(prediction))
	}
}

// @id GetPlacementPrediction
// @Description Returns the caller's prediction for a placement event
// @Tags predictions
// @Produce json
// @Param event_id path int true "Placement event Id"
// @Success 200 {object} PlacementPredictionResponse
// @Security BearerAuth
// @Router /placements/{event_id}/prediction [get]
func (e *PredictionController) getPlacementPredictionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := getPrincipal(c)
		if principal == nil {
			return
		}
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		prediction, err := e.predictionService.GetPlacementPrediction(c.Request.Context(), principal.UserID, eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPlacementPredictionResponse(prediction))
	}
}

// @id SubmitPlacementPrediction
// @Description Creates or updates the caller's prediction for a placement event until it locks
// @Tags predictions
// @Accept json
// @Produce json
// @Param event_id path int true "Placement event Id"
// @Param body body PlacementPredictionRequest true "Prediction"
// @Success 200 {object} PlacementPredictionResponse
// @Security BearerAuth
// @Router /placements/{event_id}/prediction [put]
func (e *PredictionController) submitPlacementPredictionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := getPrincipal(c)
		if principal == nil {
			return
		}
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var request PlacementPredictionRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		prediction, err := e.predictionService.SubmitPlacementPrediction(c.Request.Context(), principal.UserID, eventId, request.PredictedValue)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPlacementPredictionResponse(prediction))
	}
}

type PredictionResponse struct {
	MatchID       int                     `json:"match_id" binding:"required"`
	HomeScore     int                     `json:"home_score" binding:"required"`
	AwayScore     int                     `json:"away_score" binding:"required"`
	Scorer        *scoring.ScorerIdentity `json:"scorer"`
	PointsAwarded int                     `json:"points_awarded" binding:"required"`
	PointsDetail  *scoring.Breakdown      `json:"points_detail"`
	EvaluatedAt   *time.Time              `json:"evaluated_at"`
}

func toPredictionResponse(prediction *repository.Prediction) *PredictionResponse {
	response := &PredictionResponse{
		MatchID:       prediction.MatchID,
		HomeScore:     prediction.HomeScore,
		AwayScore:     prediction.AwayScore,
		PointsAwarded: prediction.PointsAwarded,
		EvaluatedAt:   prediction.EvaluatedAt,
	}
	if scorer := prediction.Scorer(); !scorer.IsEmpty() {
		response.Scorer = &scorer
	}
	if len(prediction.PointsDetail) > 0 {
		breakdown := &scoring.Breakdown{}
		if err := json.Unmarshal(prediction.PointsDetail, breakdown); err == nil {
			response.PointsDetail = breakdown
		}
	}
	return response
}

type PlacementPredictionRequest struct {
	PredictedValue string `json:"predicted_value" binding:"required"`
}

type PlacementPredictionResponse struct {
	UserID         uuid.UUID  `json:"user_id" binding:"required"`
	EventID        int        `json:"event_id" binding:"required"`
	PredictedValue string     `json:"predicted_value" binding:"required"`
	PointsAwarded  int        `json:"points_awarded" binding:"required"`
	EvaluatedAt    *time.Time `json:"evaluated_at"`
}

func toPlacementPredictionResponse(prediction *repository.PlacementPrediction) *PlacementPredictionResponse {
	return &PlacementPredictionResponse{
		UserID:         prediction.UserID,
		EventID:        prediction.EventID,
		PredictedValue: prediction.PredictedValue,
		PointsAwarded:  prediction.PointsAwarded,
		EvaluatedAt:    prediction.EvaluatedAt,
	}
}
