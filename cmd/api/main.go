package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelms/internal/database"
	"hotelms/internal/middleware"
	"hotelms/internal/modules/auth"
	"hotelms/internal/modules/billing"
	"hotelms/internal/modules/booking"
	"hotelms/internal/modules/dashboard"
	"hotelms/internal/modules/profiles"
	"hotelms/internal/modules/public"
	"hotelms/internal/modules/rooms"
	jwtsvc "hotelms/internal/pkg/jwt"
	"hotelms/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	profileRepo := repository.NewProfileRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(profileRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, roomRepo, profileRepo)
	bookingHandler := booking.NewHandler(bookingService)

	billingService := billing.NewService(transactionRepo, bookingRepo, roomRepo)
	billingHandler := billing.NewHandler(billingService)

	roomService := rooms.NewService(roomRepo)
	roomHandler := rooms.NewHandler(roomService)

	profileService := profiles.NewService(profileRepo)
	profileHandler := profiles.NewHandler(profileService)

	publicService := public.NewService(profileRepo, bookingService)
	publicHandler := public.NewHandler(publicService, bookingService, roomService)

	dashboardService := dashboard.NewService(transactionRepo, roomRepo, bookingRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		publicHandler.RegisterRoutes(v1)

		// any authenticated role; USER is scoped to its own rows in handlers
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			billingHandler.RegisterRoutes(protected)

			staff := protected.Group("/")
			staff.Use(middleware.StaffOnly())
			{
				roomHandler.RegisterRoutes(staff)
				profileHandler.RegisterRoutes(staff)
			}

			management := protected.Group("/")
			management.Use(middleware.ManagementOnly())
			{
				dashboardHandler.RegisterRoutes(management)
			}
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
