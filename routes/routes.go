package routes

import (
	"fmt"
	"net/http"
	"time"

	"bookhouse/handlers"
	"bookhouse/middleware"
	"bookhouse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHealthRoutes registers the greeting and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello From Book House!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterPaymentRoutes registers payment intent creation.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	r.POST("/create-payment-intent", auth, hb.CreatePaymentIntentHandler)
}

// RegisterCatalogRoutes registers the public service catalog and the
// admin-only book catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth, admin gin.HandlerFunc) {
	r.GET("/service", hb.GetServicesHandler)
	r.GET("/service/:id", hb.GetServiceHandler)

	books := r.Group("/book", auth, admin)
	{
		books.GET("", hb.GetBooksHandler)
		books.POST("", hb.AddBookHandler)
		books.DELETE("/:email", hb.DeleteBookHandler)
	}
}

// RegisterBookingRoutes registers the booking gateway. Creating a booking is public.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	r.POST("/booking", hb.CreateBookingHandler)

	protected := r.Group("/booking", auth)
	{
		protected.GET("", hb.GetBookingsHandler)
		protected.GET("/:id", hb.GetBookingHandler)
		protected.PATCH("/:id", hb.ConfirmPaymentHandler)
		protected.GET("/:id/payments", hb.GetPaymentsHandler)
	}
}

// RegisterUserRoutes registers the user/role registry. The profile upsert and
// the admin lookup are public; listing needs a token; promotion needs an admin.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth, admin gin.HandlerFunc) {
	r.GET("/admin/:email", hb.IsAdminHandler)
	r.PUT("/user/:email", hb.UpsertProfileHandler)

	r.GET("/user", auth, hb.GetAllUsersHandler)
	r.PUT("/user/admin/:email", auth, admin, hb.PromoteAdminHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// Protected routes always run the token check before the admin check.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, logger *zap.Logger) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	auth := middleware.JWTAuthMiddleware(hb.Verifier, logger)
	admin := middleware.RequireAdmin(hb.Roles, logger)

	RegisterHealthRoutes(r)
	RegisterPaymentRoutes(r, hb, auth)
	RegisterCatalogRoutes(r, hb, auth, admin)
	RegisterBookingRoutes(r, hb, auth)
	RegisterUserRoutes(r, hb, auth, admin)
}

// NewRouter builds the engine with the global middleware stack and every route.
// Forwarded client IPs are only honored from trustedProxies.
func NewRouter(hb *handlers.HandlerBundle, logger *zap.Logger, maxRequestsPerMin int, trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	if trustedProxies == nil {
		trustedProxies = []string{}
	}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RateLimitMiddleware(maxRequestsPerMin, logger))
	RegisterRoutes(router, hb, logger)
	return router, nil
}
