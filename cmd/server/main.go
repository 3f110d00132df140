// Command server runs the LogiTeam workforce API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/logiteam/logiteam-api/internal/api"
	"github.com/logiteam/logiteam-api/internal/cache"
	"github.com/logiteam/logiteam-api/internal/config"
	"github.com/logiteam/logiteam-api/internal/repository"
	"github.com/logiteam/logiteam-api/internal/service/attendance"
	"github.com/logiteam/logiteam-api/internal/service/calendar"
	"github.com/logiteam/logiteam-api/internal/service/identity"
	"github.com/logiteam/logiteam-api/internal/service/lifecycle"
	"github.com/logiteam/logiteam-api/internal/service/reports"
	"github.com/logiteam/logiteam-api/internal/service/teams"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)

	db, err := repository.NewDB(&cfg.Database.Postgres, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.Postgres.MigrationsPath != "" {
		if err := db.Migrate(cfg.Database.Postgres.MigrationsPath, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	} else if err := db.AutoMigrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto-migrate schema")
	}

	redisCache, err := cache.NewRedisCache(&cfg.Database.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}
	defer redisCache.Close()

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	overtimeRepo := repository.NewOvertimeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)

	// Services
	cacheTTL := cfg.Database.Redis.TTL()
	identitySvc := identity.NewService(profileRepo, &cfg.Auth, log)
	lifecycleSvc := lifecycle.NewService(leaveRepo, overtimeRepo, redisCache, cacheTTL, log)
	reportsSvc := reports.NewService(attendanceRepo, leaveRepo, overtimeRepo, profileRepo, redisCache, cacheTTL, log)
	attendanceSvc := attendance.NewService(attendanceRepo, &cfg.Workday, redisCache, log)
	teamsSvc := teams.NewService(teamRepo, profileRepo, log)
	calendarSvc := calendar.NewService(attendanceRepo, leaveRepo, holidayRepo, log)

	ctx := context.Background()
	if err := calendarSvc.SeedHolidays(ctx, cfg.Holidays.SeedFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed holidays")
	}

	handlers := api.Handlers{
		Auth:       api.NewAuthHandler(identitySvc, log),
		Requests:   api.NewRequestsHandler(lifecycleSvc, log),
		Attendance: api.NewAttendanceHandler(attendanceSvc, log),
		Teams:      api.NewTeamsHandler(teamsSvc, log),
		Calendar:   api.NewCalendarHandler(calendarSvc, log),
		Reports:    api.NewReportsHandler(reportsSvc, log),
		Health: api.NewHealthHandler(map[string]api.HealthChecker{
			"postgres": func(context.Context) error { return db.Health() },
			"redis":    redisCache.Health,
		}),
	}

	router := api.NewRouter(cfg, handlers, identitySvc, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}
