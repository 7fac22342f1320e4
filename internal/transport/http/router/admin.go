package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-shop-api/internal/core/auth"
	"go-shop-api/internal/core/server"
	"go-shop-api/internal/transport/http/handler"
	mdw "go-shop-api/internal/transport/http/middleware"
)

// NewAdminEngine 后台独立部署用：只有商品管理，整组要求 admin
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, products *handler.AdminProductHandler) *gin.Engine {
	r := server.NewEngine(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(100, 200),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products.Mount(r.Group("/admin/products", mdw.AuthJWT(jwter, "admin")))

	return r
}
