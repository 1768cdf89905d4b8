package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/client"
	"github.com/nanoink/sistema-inspecao-incendio/internal/config"
	httpapi "github.com/nanoink/sistema-inspecao-incendio/internal/http"
	"github.com/nanoink/sistema-inspecao-incendio/internal/logger"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
	"github.com/nanoink/sistema-inspecao-incendio/internal/service"
	"github.com/nanoink/sistema-inspecao-incendio/internal/store"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "inspecao-server")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Database.MaxConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdle)
	if err := db.Ping(); err != nil {
		zlog.Fatal("failed to ping database", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	kv := store.NewRedisKV(redisClient)

	catalogRepo := repository.NewPostgresCatalogRepository(db)
	requirementsRepo := repository.NewPostgresRequirementsRepository(db)
	companiesRepo := repository.NewPostgresCompaniesRepository(db)
	companyReqRepo := repository.NewPostgresCompanyRequirementsRepository(db)
	checklistsRepo := repository.NewPostgresChecklistsRepository(db)

	cnaeClient := client.NewCNAECatalogClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, zlog)
	lookupClient := client.NewExigenciaLookupClient(cfg.Lookup.BaseURL, cfg.Lookup.Timeout, zlog)
	viaCEPClient := client.NewViaCEPClient(cfg.ViaCEP.BaseURL, cfg.ViaCEP.Timeout, zlog)

	resolver := service.NewResolver(catalogRepo, requirementsRepo, lookupClient, cfg.Sync.CriteriaMatchHeight, zlog)
	synchronizer := service.NewSynchronizer(companyReqRepo, cfg.Sync.PreserveAssessments, zlog)
	companyService := service.NewCompanyService(companiesRepo, catalogRepo, resolver, synchronizer, zlog)
	requirementsService := service.NewRequirementsService(companyReqRepo, resolver, zlog)
	checklistService := service.NewChecklistService(checklistsRepo, zlog)
	catalogService := service.NewCatalogService(catalogRepo, cnaeClient, kv, cfg.Catalog.CacheTTL, zlog)

	requirementsHandler := httpapi.NewRequirementsHandler(requirementsService, zlog)
	checklistsHandler := httpapi.NewChecklistsHandler(checklistService, zlog)
	companiesHandler := httpapi.NewCompaniesHandler(companyService, requirementsHandler, checklistsHandler, zlog)
	catalogHandler := httpapi.NewCatalogHandler(catalogService, viaCEPClient, zlog)

	router := httpapi.NewRouter(zlog)
	router.RegisterCompanyRoutes(companiesHandler)
	router.RegisterCatalogRoutes(catalogHandler)
	router.RegisterRequirementRoutes(requirementsHandler)
	router.RegisterChecklistRoutes(checklistsHandler)
	router.RegisterHealthRoute()

	srv := service.NewServer(cfg.HTTP.Addr, router, zlog)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zlog.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		zlog.Error("server stopped", zap.Error(err))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = redisClient.Close()
	_ = db.Close()
}
