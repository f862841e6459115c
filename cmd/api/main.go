package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logisafe/internal/core/bus"
	"logisafe/internal/core/cache"
	"logisafe/internal/core/config"
	"logisafe/internal/core/logger"
	"logisafe/internal/core/server"
	"logisafe/internal/core/session"
	assignmentadapters "logisafe/internal/features/assignment/adapters"
	assignmenthandler "logisafe/internal/features/assignment/handler"
	assignmentservice "logisafe/internal/features/assignment/service"
	driverhandler "logisafe/internal/features/drivers/handler"
	driverservice "logisafe/internal/features/drivers/service"
	feeddomain "logisafe/internal/features/feed/domain"
	feedhandler "logisafe/internal/features/feed/handler"
	feedservice "logisafe/internal/features/feed/service"
	geoadapters "logisafe/internal/features/geo/adapters"
	geohandler "logisafe/internal/features/geo/handler"
	geoservice "logisafe/internal/features/geo/service"
	orderadapters "logisafe/internal/features/orders/adapters"
	orderhandler "logisafe/internal/features/orders/handler"
	orderservice "logisafe/internal/features/orders/service"
	riskadapters "logisafe/internal/features/riskzones/adapters"
	riskhandler "logisafe/internal/features/riskzones/handler"
	riskservice "logisafe/internal/features/riskzones/service"
	routeadapters "logisafe/internal/features/routes/adapters"
	routehandler "logisafe/internal/features/routes/handler"
	routeservice "logisafe/internal/features/routes/service"

	"go.uber.org/zap"
)

// @title LogiSafe Dispatch API
// @version 1.0
// @description Theft-aware route planning, risk monitoring and driver assignment for logistics fleets.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	store, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		pingCancel()
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	pingCancel()
	l.Info("Redis connection verified")

	eventBus := bus.New()

	// Geo: external directions with synthetic fallback, plus the maps proxy.
	gomaps := geoadapters.NewGoMapsAdapter(cfg.Maps)
	directionsSvc := geoservice.NewDirectionsService(gomaps)
	directionsHdl := geohandler.NewDirectionsHandler(directionsSvc)
	proxyHdl := geohandler.NewProxyHandler(cfg.Maps)

	// Routes: simulated variant generation.
	variantSource := routeadapters.NewSimulatedSource(nil)
	routeSvc := routeservice.NewRouteService(variantSource)
	routeHdl := routehandler.NewRouteHandler(routeSvc)

	// Risk zones: seeded store plus query-driven generation.
	zoneRepo := riskadapters.NewRedisZoneRepository(store)
	zoneSvc := riskservice.NewRiskZoneService(zoneRepo, eventBus, nil)
	zoneHdl := riskhandler.NewZoneHandler(zoneSvc)

	// Feed: background scheduler over a bounded in-memory log, plus the
	// listener that turns zone events from any producer into warnings.
	feedLog := feeddomain.NewLog(feeddomain.DefaultCapacity)
	scheduler := feedservice.NewScheduler(feedLog, zoneSvc, eventBus,
		time.Duration(cfg.Feed.IntervalSeconds)*time.Second, nil)
	listener := feedservice.NewListener(feedLog, eventBus)
	feedHdl := feedhandler.NewFeedHandler(feedLog)
	go scheduler.Run(ctx)
	go listener.Run(ctx)

	// Drivers: static fleet roster.
	driverSvc := driverservice.NewDriverService()
	driverHdl := driverhandler.NewDriverHandler(driverSvc)

	// Orders: Redis-backed collection, seeded with demo data when empty.
	orderRepo := orderadapters.NewRedisOrderRepository(store)
	orderSvc := orderservice.NewOrderService(orderRepo)
	if err := orderSvc.SeedDefaults(ctx); err != nil {
		l.Warn("Failed to seed default orders", zap.Error(err))
	}
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Assignment: per-session workflow over the services above.
	recordLog := assignmentadapters.NewRedisRecordLog(store)
	workflowMgr := assignmentservice.NewWorkflowManager(routeSvc, driverSvc, orderSvc, zoneSvc, recordLog)
	assignmentHdl := assignmenthandler.NewAssignmentHandler(workflowMgr)

	srv := server.New(cfg)

	api := srv.App.Group("/", session.Middleware())
	admin := session.RequireRole(session.RoleAdmin)

	api.Post("/routes/optimize", routeHdl.Optimize)
	api.Post("/maps/directions", directionsHdl.GetDirections)
	api.Get("/maps/proxy", proxyHdl.Proxy)

	api.Get("/risk-zones", zoneHdl.List)
	api.Post("/risk-zones", zoneHdl.Generate)
	api.Get("/feed", feedHdl.Get)

	api.Get("/drivers", driverHdl.List)
	api.Get("/drivers/locations", driverHdl.Locations)

	api.Get("/orders", orderHdl.List)
	api.Get("/orders/:id", orderHdl.Get)
	api.Post("/orders", admin, orderHdl.Create)
	api.Patch("/orders/:id/status", orderHdl.UpdateStatus)

	api.Get("/assignment", assignmentHdl.Snapshot)
	api.Post("/assignment/generate", assignmentHdl.Generate)
	api.Post("/assignment/select", assignmentHdl.Select)
	api.Post("/assignment/assign", admin, assignmentHdl.Assign)
	api.Post("/assignment/reset", assignmentHdl.Reset)
	api.Get("/assignment/history", admin, assignmentHdl.History)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		l.Info("Shutting down", zap.String("signal", sig.String()))
		cancel()
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}
}
