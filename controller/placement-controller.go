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

type PlacementController struct {
	placementService *service.PlacementService
	cacheStore       persistence.CacheStore
	now              func() time.Time
}

func NewPlacementController(app *service.App, cacheStore persistence.CacheStore) *PlacementController {
	return &PlacementController{
		placementService: app.Placements,
		cacheStore:       cacheStore,
		now:              time.Now,
	}
}

func setupPlacementController(app *service.App, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewPlacementController(app, cacheStore)
	basePath := "/placements"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
		{Method: "POST", Path: "/:event_id/evaluate", HandlerFunc: e.evaluateEventHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
		{Method: "DELETE", Path: "/:event_id/evaluation", HandlerFunc: e.resetEventHandler(), Authenticated: true, RoleRequired: []string{AdminRole}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetPlacementEvents
// @Description Lists all placement events
// @Tags placements
// @Produce json
// @Success 200 {array} PlacementEventResponse
// @Router /placements [get]
func (e *PlacementController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.placementService.ListEvents(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		now := e.now()
		c.JSON(200, utils.Map(events, func(event *repository.PlacementEvent) *PlacementEventResponse {
			return toPlacementEventResponse(event, now)
		}))
	}
}

// @id CreatePlacementEvent
// @Description Creates a placement event
// @Tags placements
// @Accept json
// @Produce json
// @Param body body service.NewPlacementEvent true "Placement event"
// @Success 201 {object} PlacementEventResponse
// @Security BearerAuth
// @Router /placements [post]
func (e *PlacementController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.NewPlacementEvent
		if err := c.BindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.placementService.CreateEvent(c.Request.Context(), input)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toPlacementEventResponse(event, e.now()))
	}
}

// @id EvaluatePlacementEvent
// @Description Stores the correct value of a placement event and awards points for all predictions on it
// @Tags placements
// @Accept json
// @Produce json
// @Param event_id path int true "Placement event Id"
// @Param body body PlacementEvaluationRequest true "Correct value"
// @Success 200 {object} service.EvaluationReport
// @Success 207 {object} service.EvaluationReport
// @Security BearerAuth
// @Router /placements/{event_id}/evaluate [post]
func (e *PlacementController) evaluateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		var request PlacementEvaluationRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.placementService.EvaluateEvent(c.Request.Context(), eventId, request.CorrectValue)
		if report != nil {
			flushCache(e.cacheStore)
		}
		respondEvaluation(c, report, err)
	}
}

// @id ResetPlacementEvaluation
// @Description Removes the evaluation of a placement event and zeroes the points of all predictions on it
// @Tags placements
// @Produce json
// @Param event_id path int true "Placement event Id"
// @Success 200 {object} service.EvaluationReport
// @Security BearerAuth
// @Router /placements/{event_id}/evaluation [delete]
func (e *PlacementController) resetEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := intParam(c, "event_id")
		if !ok {
			return
		}
		report, err := e.placementService.ResetEvent(c.Request.Context(), eventId)
		if report != nil {
			flushCache(e.cacheStore)
		}
		respondEvaluation(c, report, err)
	}
}

type PlacementEvaluationRequest struct {
	CorrectValue *string `json:"correct_value"`
}

type PlacementEventResponse struct {
	ID           int        `json:"id" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Category     *string    `json:"category"`
	EventDate    string     `json:"event_date" binding:"required"`
	LockAt       *time.Time `json:"lock_at"`
	Locked       bool       `json:"locked" binding:"required"`
	CorrectValue *string    `json:"correct_value"`
	EvaluatedAt  *time.Time `json:"evaluated_at"`
}

func toPlacementEventResponse(event *repository.PlacementEvent, now time.Time) *PlacementEventResponse {
	return &PlacementEventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Category:     event.Category,
		EventDate:    event.EventDate.Format(time.DateOnly),
		LockAt:       event.LockAt,
		Locked:       event.IsLocked(now),
		CorrectValue: event.CorrectValue,
		EvaluatedAt:  event.EvaluatedAt,
	}
}
