package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"tipovacka/app_error"
	"tipovacka/logger"
	"tipovacka/metrics"
	"tipovacka/service"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	leaderboardCacheDuration = 30 * time.Second
	leaderboardPollInterval  = 5 * time.Second
)

type LeaderboardController struct {
	leaderboardService *service.LeaderboardService
	cacheStore         persistence.CacheStore
	mu                 sync.Mutex
	connections        map[*websocket.Conn]bool
	latest             []*service.LeaderboardEntry
}

func NewLeaderboardController(app *service.App, cacheStore persistence.CacheStore) *LeaderboardController {
	controller := &LeaderboardController{
		leaderboardService: app.Leaderboard,
		cacheStore:         cacheStore,
		connections:        make(map[*websocket.Conn]bool),
	}
	controller.StartLeaderboardUpdater()
	return controller
}

func setupLeaderboardController(app *service.App, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewLeaderboardController(app, cacheStore)
	basePath := "/leaderboard"
	handler := e.getLeaderboardHandler()
	if cacheStore != nil {
		handler = cache.CachePage(cacheStore, leaderboardCacheDuration, handler)
	}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: handler},
		{Method: "GET", Path: "/ws", HandlerFunc: e.WebSocketHandler},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// @id GetLeaderboard
// @Description Users ordered by points, tied users share a rank
// @Tags leaderboard
// @Produce json
// @Success 200 {array} service.LeaderboardEntry
// @Router /leaderboard [get]
func (e *LeaderboardController) getLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := e.leaderboardService.GetLeaderboard(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, entries)
	}
}

// @id LeaderboardWebSocket
// @Description Websocket for leaderboard updates. The first message is the full leaderboard, every following message a LeaderboardDiff.
// @Tags leaderboard
// @Router /leaderboard/ws [get]
// @Success 200 {object} service.LeaderboardDiff
func (e *LeaderboardController) WebSocketHandler(c *gin.Context) {
	entries, err := e.leaderboardService.GetLeaderboard(c.Request.Context())
	if err != nil {
		app_error.Respond(c, err)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	serialized, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
		return
	}

	e.mu.Lock()
	if len(e.connections) == 0 {
		e.latest = entries
	}
	e.connections[conn] = true
	metrics.LeaderboardSubscribersGauge.Set(float64(len(e.connections)))
	e.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			e.mu.Lock()
			delete(e.connections, conn)
			metrics.LeaderboardSubscribersGauge.Set(float64(len(e.connections)))
			e.mu.Unlock()
			return
		}
	}
}

// broadcast sends the changes since the last poll to every subscriber.
func (e *LeaderboardController) broadcast(ctx context.Context) {
	e.mu.Lock()
	subscribers := len(e.connections)
	e.mu.Unlock()
	if subscribers == 0 {
		return
	}
	entries, err := e.leaderboardService.GetLeaderboard(ctx)
	if err != nil {
		logger.WithService("leaderboard").WithError(err).Warn("failed to load leaderboard")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	diff := service.Diff(e.latest, entries)
	e.latest = entries
	if diff.IsEmpty() {
		return
	}
	serialized, err := json.Marshal(diff)
	if err != nil {
		return
	}
	for conn := range e.connections {
		if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
			conn.Close()
			delete(e.connections, conn)
		}
	}
	metrics.LeaderboardSubscribersGauge.Set(float64(len(e.connections)))
}

func (e *LeaderboardController) StartLeaderboardUpdater() {
	go func() {
		for {
			e.broadcast(context.Background())
			time.Sleep(leaderboardPollInterval)
		}
	}()
}
