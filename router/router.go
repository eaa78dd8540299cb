package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering/config"
	"github.com/yeremiapane/food-ordering/controllers"
	"github.com/yeremiapane/food-ordering/metrics"
	"github.com/yeremiapane/food-ordering/middlewares"
	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/repository"
	"github.com/yeremiapane/food-ordering/services"
	"github.com/yeremiapane/food-ordering/utils"
)

// Deps are the long-lived collaborators the HTTP layer is built from.
// Sequencer defaults to the table counter, Publisher to no publishing.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Sequencer repository.Sequencer
	Publisher services.OrderEventPublisher
}

func SetupRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	seq := deps.Sequencer
	if seq == nil {
		seq = repository.NewTableSequencer(models.OrderSequenceName)
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, cfg.ServiceName)
	authService := services.NewAuthService(repository.NewUserRepository(deps.DB), tokens)
	catalogService := services.NewCatalogService(
		repository.NewMenuRepository(deps.DB),
		repository.NewRestaurantRepository(deps.DB),
	)
	orderService := services.NewOrderService(
		repository.NewOrderRepository(deps.DB, seq),
		deps.Publisher,
		services.OrderServiceOptions{StrictTransitions: cfg.StrictOrderTransitions},
	)

	userCtrl := controllers.NewUserController(authService)
	menuCtrl := controllers.NewMenuController(catalogService)
	restaurantCtrl := controllers.NewRestaurantController(catalogService)
	orderCtrl := controllers.NewOrderController(orderService)
	healthCtrl := controllers.NewHealthController(cfg.ServiceName)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.MetricsMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowedOrigins))

	r.GET("/health", healthCtrl.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(middlewares.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst).RateLimit())
	{
		auth := api.Group("/auth")
		authLimiter := middlewares.NewStrictRateLimiter(cfg.AuthRateLimitPerMin)
		auth.POST("/register", authLimiter.RateLimit(), userCtrl.Register)
		auth.POST("/login", authLimiter.RateLimit(), userCtrl.Login)
		auth.GET("/verify", middlewares.AuthMiddleware(authService), userCtrl.Verify)

		api.GET("/restaurants", restaurantCtrl.ListRestaurants)
		api.GET("/restaurants/:restaurantId", restaurantCtrl.GetRestaurant)
		api.GET("/menu/:restaurantId", menuCtrl.GetMenu)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:orderId", orderCtrl.GetOrder)
		api.PUT("/orders/:orderId/status", orderCtrl.UpdateOrderStatus)
	}

	return r
}
