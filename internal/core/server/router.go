package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "gin-user-rpc/internal/transport/http/response"
)

type CORSOptions struct {
	AllowOrigins     []string
	AllowCredentials bool
}

// NewRouter returns the base engine: panic recovery logged through zap and
// CORS for the configured browser origins. Preflight requests are answered
// here and never reach later middleware.
func NewRouter(l *zap.Logger, co CORSOptions) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Error(http.StatusInternalServerError, ""))
	}))
	if len(co.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     co.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Contract-Version"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: co.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}))
	}
	return r
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration, errLog *log.Logger) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    rt,
		WriteTimeout:   wt,
		IdleTimeout:    it,
		MaxHeaderBytes: 1 << 20, // 1MB
		ErrorLog:       errLog,
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
