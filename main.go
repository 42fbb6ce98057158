package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "tvm-service/http"
	"tvm-service/repository"
	"tvm-service/service"
)

const scheduleCacheTTL = 24 * time.Hour

func main() {
	var calcRepo repository.CalculationRepository
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		pg, err := repository.NewPostgresRepository(dsn)
		if err != nil {
			log.Fatalf("Error connecting to postgres: %v", err)
		}
		defer pg.Close()
		calcRepo = pg
	} else {
		calcRepo = repository.NewCalculationRepositoryMemory()
	}

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr, scheduleCacheTTL)
	} else {
		cache = repository.NewMockCache()
	}

	tvmService := service.NewTVMService(calcRepo)
	tvmHandler := httpLayer.NewTVMHandler(tvmService)

	scheduleService := service.NewScheduleService(cache)
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService)

	scanService := service.NewScanService()
	scanHandler := httpLayer.NewScanHandler(scanService)

	rateLimiter := httpLayer.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/tvm/rate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(tvmHandler.Rate),
		),
	)

	mux.Handle(
		"/tvm/ipmt",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(tvmHandler.InterestPayment),
		),
	)

	mux.Handle(
		"/tvm/ispmt",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(tvmHandler.StraightLineInterest),
		),
	)

	mux.Handle(
		"/tvm/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.BuildSchedule),
		),
	)

	mux.Handle(
		"/tvm/rate/scan",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scanHandler.ScanRoots),
		),
	)

	mux.Handle(
		"/tvm/history",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(tvmHandler.History),
		),
	)

	addr := os.Getenv("TVM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("tvm-service listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
