package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/server/http/handlers"
	"github.com/vantran-dev/storefront/internal/server/http/middleware"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, respond *response.Responder, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, respond)
	productHandler := handlers.NewProductHandler(facade, respond)
	categoryHandler := handlers.NewCategoryHandler(facade, respond)
	cartHandler := handlers.NewCartHandler(facade, respond)
	orderHandler := handlers.NewOrderHandler(facade, respond)
	voucherHandler := handlers.NewVoucherHandler(facade, respond)
	reviewHandler := handlers.NewReviewHandler(facade, respond)
	blogHandler := handlers.NewBlogHandler(facade, respond)
	statsHandler := handlers.NewStatsHandler(facade, respond)

	authRequired := middleware.AuthRequired(facade, respond)
	adminRequired := middleware.AdminRequired(respond)

	v1 := engine.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authRequired, authHandler.Profile)

	product := v1.Group("/product")
	product.GET("", productHandler.List)
	product.GET("/:id", productHandler.Detail)
	product.POST("", authRequired, adminRequired, productHandler.Create)
	product.PUT("/:id", authRequired, adminRequired, productHandler.Update)
	product.DELETE("/:id", authRequired, adminRequired, productHandler.Delete)

	category := v1.Group("/category")
	category.GET("", categoryHandler.List)
	category.GET("/:id", categoryHandler.Detail)
	category.POST("", authRequired, adminRequired, categoryHandler.Create)
	category.PUT("/:id", authRequired, adminRequired, categoryHandler.Update)
	category.DELETE("/:id", authRequired, adminRequired, categoryHandler.Delete)

	cart := v1.Group("/cart", authRequired)
	cart.GET("", cartHandler.Get)
	cart.POST("", cartHandler.Add)
	cart.PUT("/:productId", cartHandler.UpdateItem)
	cart.DELETE("/:productId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.Clear)

	order := v1.Group("/order", authRequired)
	order.POST("", orderHandler.Create)
	order.GET("", orderHandler.My)
	order.GET("/admin", adminRequired, orderHandler.List)
	order.GET("/:id", orderHandler.Detail)
	order.PATCH("/:id/status", adminRequired, orderHandler.UpdateStatus)
	order.PUT("/:id/cancel", orderHandler.Cancel)
	order.PUT("/:id/receive", orderHandler.ConfirmReceived)

	voucher := v1.Group("/voucher")
	voucher.GET("/active", voucherHandler.Available)
	voucher.POST("/apply", authRequired, voucherHandler.Apply)
	voucher.GET("", authRequired, adminRequired, voucherHandler.List)
	voucher.GET("/:id", authRequired, adminRequired, voucherHandler.Detail)
	voucher.POST("", authRequired, adminRequired, voucherHandler.Create)
	voucher.PUT("/:id", authRequired, adminRequired, voucherHandler.Update)
	voucher.DELETE("/:id", authRequired, adminRequired, voucherHandler.Delete)

	review := v1.Group("/review")
	review.GET("/product/:id", reviewHandler.ByProduct)
	review.POST("", authRequired, reviewHandler.Create)
	review.PUT("/:id", authRequired, reviewHandler.Update)
	review.DELETE("/:id", authRequired, reviewHandler.Delete)

	blog := v1.Group("/blog")
	blog.GET("", blogHandler.List)
	blog.GET("/:id", blogHandler.Detail)
	blog.POST("", authRequired, adminRequired, blogHandler.Create)
	blog.PUT("/:id", authRequired, adminRequired, blogHandler.Update)
	blog.DELETE("/:id", authRequired, adminRequired, blogHandler.Delete)

	statistic := v1.Group("/statistic", authRequired, adminRequired)
	statistic.GET("/users", statsHandler.NewUsers)
	statistic.GET("/products", statsHandler.NewProducts)
	statistic.GET("/revenue", statsHandler.Revenue)

	return engine
}
