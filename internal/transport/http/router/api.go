package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gin-user-rpc/internal/core/config"
	"gin-user-rpc/internal/core/server"
	"gin-user-rpc/internal/feature/user"
	mdw "gin-user-rpc/internal/transport/http/middleware"
	resp "gin-user-rpc/internal/transport/http/response"
	"gin-user-rpc/pkg/contract"
)

func NewAPIEngine(l *zap.Logger, cfg *config.Config, users *user.Service) *gin.Engine {
	r := server.NewRouter(l, server.CORSOptions{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(cfg.Limits.RPS), cfg.Limits.Burst),
		mdw.RateLimitPerIP(rate.Limit(cfg.Limits.PerIPRPS), cfg.Limits.PerIPBurst),
		mdw.ConcurrencyLimit(cfg.Limits.MaxConcurrent),
		mdw.MaxBodyBytes(cfg.Limits.MaxBodyBytes),
		mdw.Timeout(time.Duration(cfg.Limits.TimeoutSec)*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": 1, "contract": contract.Version})
	})
	if cfg.Metrics.Enable {
		r.GET("/metrics", mdw.MetricsHandler())
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, resp.Error(http.StatusNotFound, ""))
	})

	var reg Registry
	reg.Register(NewUsersModule(users))
	reg.MountAll(r)

	return r
}
