package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"aeronaa/internal/database"
	"aeronaa/internal/domain"
	"aeronaa/internal/middleware"
	"aeronaa/internal/modules/auth"
	"aeronaa/internal/modules/booking"
	"aeronaa/internal/modules/currency"
	"aeronaa/internal/modules/live"
	"aeronaa/internal/modules/settlement"
	"aeronaa/internal/modules/vendors"
	jwtsvc "aeronaa/internal/pkg/jwt"
	"aeronaa/internal/repository"
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
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := live.NewHub()
	defer hub.Close()

	rateProvider := currency.NewProvider(os.Getenv("EXCHANGE_RATE_API_URL"))

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	vendorService := vendors.NewService(vendorRepo)
	vendorHandler := vendors.NewHandler(vendorService)

	bookingService := booking.NewService(bookingRepo, vendorRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	settlementService := settlement.NewService(bookingRepo, vendorRepo, rateProvider)
	settlementHandler := settlement.NewHandler(settlementService)

	currencyHandler := currency.NewHandler(rateProvider)
	liveHandler := live.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		currencyHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			liveHandler.RegisterRoutes(protected)

			vendorOnly := protected.Group("/")
			vendorOnly.Use(middleware.RequireRole(string(domain.RoleVendor)))
			{
				vendorHandler.RegisterVendorRoutes(vendorOnly)
				settlementHandler.RegisterVendorRoutes(vendorOnly)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(string(domain.RoleAdmin)))
			{
				bookingHandler.RegisterAdminRoutes(admin)
				vendorHandler.RegisterAdminRoutes(admin)
				settlementHandler.RegisterAdminRoutes(admin)
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
