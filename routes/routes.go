package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the gin engine. Route groups carry the
// auth middleware: /api/admin requires the admin role, booking mutations
// require an authenticated caller, the room catalog reads are public.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	adc *controllers.AdminController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
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

	authed := middleware.RequireAuth(jwtSecret)
	adminOnly := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/profile", authed, ac.Profile)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", authed, adminOnly, rc.CreateRoom)
			rooms.PUT("/:id", authed, adminOnly, rc.UpdateRoom)
			rooms.DELETE("/:id", authed, adminOnly, rc.DeleteRoom)
		}

		bookings := api.Group("/bookings", authed)
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/my-bookings", bc.MyBookings)
			bookings.PUT("/:id/cancel", bc.CancelBooking)
		}

		admin := api.Group("/admin", authed, adminOnly)
		{
			admin.GET("/stats", adc.GetStats)
			admin.GET("/users", adc.GetUsers)
			admin.GET("/bookings", adc.GetBookings)
			admin.PUT("/bookings/:id/status", adc.UpdateBookingStatus)
		}
	}

	return r
}
