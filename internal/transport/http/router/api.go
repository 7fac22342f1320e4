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

type Handlers struct {
	Auth         *handler.AuthHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
}

// NewAPIEngine 用户侧全量路由：公开目录 + 认证 + 购物车/订单 + 管理端商品
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := server.NewEngine(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 公开
	h.Auth.Mount(r.Group("/auth"))
	h.Product.Mount(r.Group("/products"))

	// 需登录
	h.Cart.Mount(r.Group("/cart", mdw.AuthJWT(jwter, "")))
	h.Order.Mount(r.Group("/orders", mdw.AuthJWT(jwter, "")))

	// 需 admin 角色
	h.AdminProduct.Mount(r.Group("/admin/products", mdw.AuthJWT(jwter, "admin")))

	return r
}
