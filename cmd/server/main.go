package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-reservation/internal/config"
	"github.com/iliyamo/hall-reservation/internal/database"
	"github.com/iliyamo/hall-reservation/internal/handler"
	"github.com/iliyamo/hall-reservation/internal/middleware"
	"github.com/iliyamo/hall-reservation/internal/queue"
	"github.com/iliyamo/hall-reservation/internal/repository"
	"github.com/iliyamo/hall-reservation/internal/router"
	"github.com/iliyamo/hall-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	centers := repository.NewCenterRepo(db)
	halls := repository.NewHallRepo(db)
	access := repository.NewHallAccessRepo(db)
	schedules := repository.NewScheduleRepo(db)
	requests := repository.NewRequestRepo(db)

	// Services. The wall clock is the production time source; tests
	// inject fixed clocks.
	scheduleSvc := service.NewScheduleService(schedules, halls, access, nil)
	requestSvc := service.NewRequestService(requests, halls, access)

	// Handlers.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	scheduleH := handler.NewScheduleHandler(scheduleSvc)
	requestH := handler.NewRequestHandler(requestSvc)
	adminH := handler.NewAdminHandler(centers, halls, access, cfg.SeedDays)
	browseH := handler.NewBrowseHandler(centers, halls, scheduleSvc, requestSvc)

	// Redis backs the public response cache and the rate limiter. A nil
	// client disables both; the API stays functional without it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: response cache and rate limiting disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, browseH, cache)
	router.RegisterSchedules(e, scheduleH, requestH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// Background consumer that seeds default availability for new halls.
	go queue.StartSeedConsumer(scheduleSvc)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
