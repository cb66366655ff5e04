package http

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/adapters/signal"
	"github.com/odium-app/signaling/internal/app"
	"github.com/odium-app/signaling/internal/config"
)

func genClientToken() string {
	return uuid.NewString()
}

// ClientTokenMiddleware issues the per-connection id. It is opaque and
// unique per live session; a reconnect gets a fresh one.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_token", genClientToken())
		c.Next()
	}
}

// IdentityMiddleware trusts the odium id the auth layer placed in the
// session, falling back to the userId query param. Verification happened
// upstream; here it is just a routing key.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Query("userId")
		if uid == "" {
			sess := sessions.Default(c)
			if v, ok := sess.Get("odium_id").(string); ok {
				uid = v
			}
		}
		c.Set("odium_id", uid)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, orch *app.Orchestrator) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("OdiumSessions", store))
	r.Use(ClientTokenMiddleware())
	r.Use(IdentityMiddleware())

	log.Info().Str("module", "adapters.http").Msg("router setup")

	ctrl := signal.NewSignalWSController(orch, cfg)
	iceServers := cfg.WebRTCICEServers()

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	api.GET("/ws/signal", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("cid", c.GetString("client_token")).Msg("ws signal endpoint hit")
		ctrl.HandleSignal(ctx, c)
	})

	api.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, orch.Rooms.List())
	})

	api.GET("/ice-config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"iceServers": iceServers})
	})

	return r
}
