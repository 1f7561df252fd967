package controller

import (
	"time"

	"tipovacka/app_error"
	"tipovacka/repository"
	"tipovacka/service"
	"tipovacka/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PointsController struct {
	pointsService *service.PointsService
	manualService *service.ManualPointsService
	cacheStore    persistence.CacheStore
}

func NewPointsController(app *service.App, cacheStore persistence.CacheStore) *PointsController {
	return &PointsController{
		pointsService: app.Points,
		manualService: app.Manual,
		cacheStore:    cacheStore,
	}
}

func setupPointsController(app *service.App, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewPointsController(app, cacheStore)
	basePath := "/points"
	routes := []RouteInfo{
		{Method: "POST", Path: "/manual", HandlerFunc: e.adjustPointsHandler()},
		{Method: "GET", Path: "/manual", HandlerFunc: e.getManualHistoryHandler()},
		{Method: "GET", Path: "/diagnostics", HandlerFunc: e.getDiagnosticsHandler()},
		{Method: "POST", Path: "/sync", HandlerFunc: e.syncPointsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
		routes[i].Authenticated = true
		routes[i].RoleRequired = []string{AdminRole}
	}
	return routes
}

// @id AdjustPoints
// @Description Adds a signed manual point adjustment for a user and recomputes the user's total
// @Tags points
// @Accept json
// @Produce json
// @Param body body ManualAdjustmentRequest true "Adjustment"
// @Success 201 {object} ManualAdjustmentResponse
// @Security BearerAuth
// @Router /points/manual [post]
func (e *PointsController) adjustPointsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := getPrincipal(c)
		if principal == nil {
			return
		}
		var request ManualAdjustmentRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		adjustment, err := e.manualService.Adjust(c.Request.Context(), principal.UserID, request.UserID, request.ChangeAmount, request.Reason)
		if adjustment != nil {
			flushCache(e.cacheStore)
		}
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toManualAdjustmentResponse(adjustment))
	}
}

// @id GetManualPointsHistory
// @Description Lists the latest manual point adjustments, newest first
// @Tags points
// @Produce json
// @Success 200 {array} ManualPointsEntryResponse
// @Security BearerAuth
// @Router /points/manual [get]
func (e *PointsController) getManualHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := e.manualService.History(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(entries, toManualPointsEntryResponse))
	}
}

// @id GetPointsDiagnostics
// @Description Compares the cached total of every user with a fresh recomputation
// @Tags points
// @Produce json
// @Success 200 {object} service.Diagnostics
// @Security BearerAuth
// @Router /points/diagnostics [get]
func (e *PointsController) getDiagnosticsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		diagnostics, err := e.pointsService.Diagnose(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, diagnostics)
	}
}

// @id SyncPoints
// @Description Recomputes the total of every user
// @Tags points
// @Produce json
// @Success 200 {object} service.BatchReport
// @Success 207 {object} service.BatchReport
// @Security BearerAuth
// @Router /points/sync [post]
func (e *PointsController) syncPointsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := e.pointsService.SyncAll(c.Request.Context())
		if report != nil {
			flushCache(e.cacheStore)
		}
		respondBatch(c, report, err)
	}
}

type ManualAdjustmentRequest struct {
	UserID       uuid.UUID `json:"user_id" binding:"required"`
	ChangeAmount int       `json:"change_amount" binding:"required"`
	Reason       *string   `json:"reason"`
}

type ManualPointsEntryResponse struct {
	ID           int       `json:"id" binding:"required"`
	AdminUserID  uuid.UUID `json:"admin_user_id" binding:"required"`
	TargetUserID uuid.UUID `json:"target_user_id" binding:"required"`
	ChangeAmount int       `json:"change_amount" binding:"required"`
	OldPoints    int       `json:"old_points" binding:"required"`
	NewPoints    int       `json:"new_points" binding:"required"`
	Reason       *string   `json:"reason"`
	CreatedAt    time.Time `json:"created_at" binding:"required"`
}

func toManualPointsEntryResponse(entry *repository.ManualPointsLogEntry) *ManualPointsEntryResponse {
	return &ManualPointsEntryResponse{
		ID:           entry.ID,
		AdminUserID:  entry.AdminUserID,
		TargetUserID: entry.TargetUserID,
		ChangeAmount: entry.ChangeAmount,
		OldPoints:    entry.OldPoints,
		NewPoints:    entry.NewPoints,
		Reason:       entry.Reason,
		CreatedAt:    entry.CreatedAt,
	}
}

type ManualAdjustmentResponse struct {
	Entry      *ManualPointsEntryResponse `json:"entry" binding:"required"`
	Profile    *ProfileResponse           `json:"profile"`
	Aggregates *service.BatchReport       `json:"aggregates"`
}

func toManualAdjustmentResponse(adjustment *service.ManualAdjustment) *ManualAdjustmentResponse {
	response := &ManualAdjustmentResponse{
		Entry:      toManualPointsEntryResponse(adjustment.Entry),
		Aggregates: adjustment.Aggregates,
	}
	if adjustment.Profile != nil {
		response.Profile = toProfileResponse(adjustment.Profile)
	}
	return response
}
