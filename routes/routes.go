package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vjay-git/shivashray/config"
	"github.com/vjay-git/shivashray/controllers"
	"github.com/vjay-git/shivashray/middleware"
)

// SetupRouter wires controllers into the route tree.
func SetupRouter(
	cfg *config.Config,
	log *logrus.Logger,
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	sc *controllers.ServiceController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	origins := cfg.CORSOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// /types must come before /:id
			rooms.GET("/types", rc.GetRoomTypes)
			rooms.GET("/:id", rc.GetRoom)
			rooms.GET("/:id/availability", rc.CheckAvailability)
		}

		hotelServices := api.Group("/services")
		{
			hotelServices.GET("", sc.GetServices)
			hotelServices.GET("/:id", sc.GetService)
		}

		bookings := api.Group("/bookings", middleware.Auth(cfg.JWTSecret))
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.GetMyBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PATCH("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.CancelBooking)
		}

		admin := api.Group("/admin", middleware.Auth(cfg.JWTSecret), middleware.RequireAdmin())
		{
			admin.POST("/rooms", adc.CreateRoom)
			admin.PATCH("/rooms/:id", adc.UpdateRoom)
			admin.DELETE("/rooms/:id", adc.DeactivateRoom)
			admin.POST("/room-types", adc.CreateRoomType)
			admin.POST("/services", adc.CreateService)
			admin.GET("/bookings", adc.GetAllBookings)
			admin.PATCH("/bookings/:id", adc.UpdateBooking)
		}
	}

	return r
}
