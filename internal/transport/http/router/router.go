package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"barakatfresh/internal/core/auth"
	"barakatfresh/internal/domain"
	"barakatfresh/internal/transport/http/handler"
	mdw "barakatfresh/internal/transport/http/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	User     *handler.UserHandler
}

func New(l *zap.Logger, jwter *auth.JWTer, users domain.UserRepository, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(64<<20), // base64 图片走 JSON，体积给足
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 登录注册
	authGrp := api.Group("/auth")
	{
		authGrp.POST("/register", h.Auth.Register)
		authGrp.POST("/login", h.Auth.Login)
	}

	// 分类：读公开，写管理端
	cats := api.Group("/categories")
	{
		cats.GET("", h.Category.List)
		cats.GET("/:id", h.Category.Get)

		catsAdmin := cats.Group("", mdw.AdminAuth(jwter, users))
		catsAdmin.POST("", h.Category.Create)
		catsAdmin.PUT("/:id", h.Category.Update)
		catsAdmin.PATCH("/:id/toggle-status", h.Category.ToggleStatus)
		catsAdmin.DELETE("/:id", h.Category.Delete)
	}

	// 商品：读公开，写管理端
	prods := api.Group("/products")
	{
		prods.GET("", h.Product.List)

		prodsAdmin := prods.Group("", mdw.AdminAuth(jwter, users))
		prodsAdmin.POST("", h.Product.Create)
		prodsAdmin.PUT("/:id", h.Product.Update)
		prodsAdmin.DELETE("/:id", h.Product.Delete)
	}

	// 订单
	orders := api.Group("/orders")
	{
		ordersUser := orders.Group("", mdw.AuthJWT(jwter))
		ordersUser.POST("", h.Order.Place)
		ordersUser.GET("/my-orders", h.Order.MyOrders)

		ordersAdmin := orders.Group("/admin", mdw.AdminAuth(jwter, users))
		ordersAdmin.GET("/all", h.Order.ListAll)
		ordersAdmin.GET("/:id", h.Order.Get)
		ordersAdmin.PUT("/:id/status", h.Order.UpdateStatus)
		ordersAdmin.DELETE("/:id", h.Order.Delete)
	}

	// 用户管理（全管理端）
	usersAdmin := api.Group("/users/admin", mdw.AdminAuth(jwter, users))
	{
		usersAdmin.GET("/all", h.User.List)
		usersAdmin.GET("/stats", h.User.Stats)
		usersAdmin.GET("/:id", h.User.Get)
		usersAdmin.PUT("/:id/role", h.User.UpdateRole)
		usersAdmin.PUT("/:id/status", h.User.UpdateStatus)
		usersAdmin.DELETE("/:id", h.User.Delete)
	}

	return r
}
