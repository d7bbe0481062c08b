package routes

import (
	"net/http"
	"os"
	"strings"

	"pavilion-backend/config"
	"pavilion-backend/controllers"
	"pavilion-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())
	r.Use(config.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			sqlDB, err := config.DB.DB()
			if err == nil {
				err = sqlDB.Ping()
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Public booking surface
		reservations := api.Group("/reservations")
		{
			reservations.GET("/locations", controllers.GetLocations)
			reservations.GET("/availability", controllers.GetAvailability)
			reservations.POST("", controllers.CreateReservation)
			reservations.GET("/:number", controllers.GetReservationByNumber)
		}

		api.POST("/newsletter", controllers.Subscribe)

		// Admin console
		admin := api.Group("/admin")
		{
			admin.POST("/login", controllers.Login)
			admin.POST("/logout", controllers.Logout)

			admin.Use(utils.AuthMiddleware())
			admin.GET("/me", controllers.Me)

			admin.GET("/profile", controllers.GetProfile)
			admin.PUT("/profile/name", controllers.UpdateProfileName)
			admin.PUT("/profile/password", controllers.UpdateProfilePassword)

			admin.GET("/reservations", controllers.ListReservations)
			admin.POST("/reservations/create", controllers.AdminCreateReservation)
			admin.PUT("/reservations/:id/details", controllers.UpdateReservation)
			admin.PUT("/reservations/:id/status", controllers.UpdateReservationStatus)
			admin.PUT("/reservations/:id/room", controllers.UpdateReservationRoom)
			admin.DELETE("/reservations/:id", controllers.DeleteReservation)

			admin.GET("/blocks", controllers.ListBlocks)
			admin.POST("/blocks", controllers.CreateBlock)
			admin.DELETE("/blocks/:id", controllers.DeleteBlock)

			admin.GET("/customers", controllers.ListCustomers)
			admin.PUT("/customers/:id", controllers.UpdateCustomer)
			admin.GET("/subscribers", controllers.ListSubscribers)

			admin.GET("/dashboard/stats", controllers.GetDashboardStats)
			admin.GET("/rooms", controllers.ListRooms)
			admin.GET("/audit-log", controllers.GetAuditLog)
		}
	}

	return r
}
