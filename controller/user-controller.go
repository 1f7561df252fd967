package controller

import (
	"tipovacka/app_error"
	"tipovacka/repository"
	"tipovacka/service"
	"tipovacka/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	userService       *service.UserService
	predictionService *service.PredictionService
}

func NewUserController(app *service.App) *UserController {
	return &UserController{
		userService:       app.Users,
		predictionService: app.Predictions,
	}
}

func setupUserController(app *service.App) []RouteInfo {
	e := NewUserController(app)
	return []RouteInfo{
		{Method: "GET", Path: "/me", HandlerFunc: e.getMeHandler(), Authenticated: true},
	}
}

// @id GetMe
// @Description Returns the caller's profile together with all of their match predictions
// @Tags users
// @Produce json
// @Success 200 {object} MeResponse
// @Security BearerAuth
// @Router /me [get]
func (e *UserController) getMeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := getPrincipal(c)
		if principal == nil {
			return
		}
		profile, err := e.userService.GetProfile(c.Request.Context(), principal.UserID)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		predictions, err := e.predictionService.GetUserPredictions(c.Request.Context(), principal.UserID)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, &MeResponse{
			Profile:     toProfileResponse(profile),
			Predictions: utils.Map(predictions, toPredictionResponse),
		})
	}
}

type ProfileResponse struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	Email       string    `json:"email" binding:"required"`
	DisplayName string    `json:"display_name" binding:"required"`
	Points      int       `json:"points" binding:"required"`
	IsAdmin     bool      `json:"is_admin" binding:"required"`
}

func toProfileResponse(profile *repository.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:      profile.UserID,
		Email:       profile.Email,
		DisplayName: profile.Name(),
		Points:      profile.Points,
		IsAdmin:     profile.IsAdmin,
	}
}

type MeResponse struct {
	Profile     *ProfileResponse      `json:"profile" binding:"required"`
	Predictions []*PredictionResponse `json:"predictions" binding:"required"`
}
