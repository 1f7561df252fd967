package main

import (
	"regexp"
	"strings"
	"time"

	"tipovacka/client"
	"tipovacka/config"
	"tipovacka/controller"
	"tipovacka/cron"
	"tipovacka/docs"
	"tipovacka/logger"
	"tipovacka/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Tipovacka Backend API
// @version         1.0
// @description     Backend API for the hockey tournament tipovacka.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()

	cfg := config.Env()
	log := logger.InitLogger(cfg.LogLevel, config.IsDevelopment())
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	publisher := newPublisher(cfg)
	defer publisher.Close()
	rosterCache := newRosterCache(cfg)
	app := service.NewApp(db, cfg.Rules, publisher, rosterCache)

	sched, err := cron.StartDriftCheck(cron.NewDriftCheckJob(app.Points, cfg.DriftAutoRepair), cfg.DriftCheckInterval)
	if err != nil {
		log.WithError(err).Fatal("Failed to start drift check")
	}
	defer sched.Shutdown()

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		log.WithError(err).Error("Failed to set trusted proxies")
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)
	cacheStore := persistence.NewInMemoryStore(60 * time.Second)
	controller.SetRoutes(r, app, cacheStore)
	log.WithField("startup", time.Since(t).String()).Info("Server started")
	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.WithError(err).Error("Failed to start server")
	}
}

func newPublisher(cfg *config.Config) client.EventPublisher {
	if cfg.KafkaBroker == "" {
		return client.NoopPublisher{}
	}
	publisher, err := client.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
	if err != nil {
		logger.GetLogger().WithError(err).Warn("Kafka unavailable, points events are not published")
		return client.NoopPublisher{}
	}
	return publisher
}

func newRosterCache(cfg *config.Config) service.RosterCache {
	if cfg.RedisAddr == "" {
		return service.NoopRosterCache{}
	}
	return client.NewRedisRosterCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RosterTTL)
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
		Skip: func(c *gin.Context) bool {
			return c.Request.URL.Query().Get("token") != ""
		},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	rosterRe := regexp.MustCompile(`rosters/[^/]+(/|$)`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		url = rosterRe.ReplaceAllString(url, "rosters/?$1")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     config.Env().AllowedOrigins,
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// preflights are answered with the config of the method they announce
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				cors.New(corsConfigGetOptions)(c)
			} else {
				cors.New(corsConfigOtherMethods)(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			cors.New(corsConfigGetOptions)(c)
		} else {
			cors.New(corsConfigOtherMethods)(c)
		}
	})
}
