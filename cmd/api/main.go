package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"staybook/internal/database"
	"staybook/internal/geocode"
	"staybook/internal/middleware"
	"staybook/internal/modules/accommodation"
	"staybook/internal/modules/auth"
	"staybook/internal/modules/like"
	"staybook/internal/modules/reservation"
	"staybook/internal/modules/search"
	"staybook/internal/notification"
	jwtsvc "staybook/internal/pkg/jwt"
	"staybook/internal/repository"
)

func main() {
	// Local development keeps its settings in .env; absence is fine in prod.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// Redis is optional; without it geocoding results just are not cached.
	var geocodeCache *geocode.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		geocodeCache = geocode.NewCache(rdb, 24*time.Hour)
		log.Println("Geocode cache enabled:", addr)
	}
	geocoder := geocode.NewClient(os.Getenv("GEOCODER_BASE_URL"), geocodeCache)

	userRepo := repository.NewUserRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := notification.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	accommodationService := accommodation.NewService(accommodationRepo, userRepo, likeRepo, geocoder)
	accommodationHandler := accommodation.NewHandler(accommodationService)

	reservationService := reservation.NewService(reservationRepo)
	reservationHandler := reservation.NewHandler(reservationService)

	searchService := search.NewService(accommodationRepo, reservationService, geocoder)
	searchHandler := search.NewHandler(searchService)

	likeService := like.NewService(likeRepo, accommodationRepo, userRepo, hub)
	likeHandler := like.NewHandler(likeService)

	wsHandler := notification.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			accommodationHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			searchHandler.RegisterRoutes(protected)
			likeHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
