package controller

import (
	"net/http"
	"strconv"
	"strings"

	"tipovacka/app_error"
	"tipovacka/auth"
	"tipovacka/config"
	"tipovacka/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

const AdminRole = "admin"

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RoleRequired  []string
}

func SetRoutes(r *gin.Engine, app *service.App, cacheStore persistence.CacheStore) {
	group := r.Group("/api")
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupMatchController(app, cacheStore)...)
	routes = append(routes, setupPredictionController(app)...)
	routes = append(routes, setupPlacementController(app, cacheStore)...)
	routes = append(routes, setupPointsController(app, cacheStore)...)
	routes = append(routes, setupLeaderboardController(app, cacheStore)...)
	routes = append(routes, setupRosterController(app)...)
	routes = append(routes, setupUserController(app)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(app.Users, route.RoleRequired))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		group.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		return token
	}
	if cookie, err := c.Cookie("auth"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware verifies the session token and stores the caller as the request
// principal. The admin role comes from the caller's profile, never from the token.
func AuthMiddleware(users *service.UserService, roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		claims, err := auth.ParseClaims(token, config.Env().JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		profile, err := users.GetOrCreateProfile(c.Request.Context(), claims.UserId, claims.Email)
		if err != nil {
			app_error.Respond(c, err)
			c.Abort()
			return
		}
		principal := &auth.Principal{UserID: claims.UserId, Email: claims.Email, IsAdmin: profile.IsAdmin}
		auth.SetPrincipal(c, principal)

		for _, requiredRole := range roles {
			if requiredRole == AdminRole && !principal.IsAdmin {
				c.AbortWithStatusJSON(403, gin.H{"error": "Unauthorized"})
				return
			}
		}
		c.Next()
	}
}

func getPrincipal(c *gin.Context) *auth.Principal {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Unauthenticated"})
		return nil
	}
	return principal
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return value, true
}

// respondEvaluation answers with 207 when some rows failed. A batch that stopped at an
// aborting error still carries the partial report.
func respondEvaluation(c *gin.Context, report *service.EvaluationReport, err error) {
	if err != nil && report == nil {
		app_error.Respond(c, err)
		return
	}
	if err != nil {
		c.JSON(app_error.HTTPStatus(err), gin.H{"error": err.Error(), "kind": app_error.KindOf(err), "report": report})
		return
	}
	if report.Ok() {
		c.JSON(http.StatusOK, report)
		return
	}
	c.JSON(http.StatusMultiStatus, report)
}

func respondBatch(c *gin.Context, report *service.BatchReport, err error) {
	if err != nil && report == nil {
		app_error.Respond(c, err)
		return
	}
	if err != nil {
		c.JSON(app_error.HTTPStatus(err), gin.H{"error": err.Error(), "kind": app_error.KindOf(err), "report": report})
		return
	}
	if report.Ok() {
		c.JSON(http.StatusOK, report)
		return
	}
	c.JSON(http.StatusMultiStatus, report)
}

func flushCache(cacheStore persistence.CacheStore) {
	if cacheStore != nil {
		_ = cacheStore.Flush()
	}
}
