package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/config"
	"github.com/kisanseva/kisanseva/internal/repository/mongodb"
	"github.com/kisanseva/kisanseva/internal/repository/sheets"
	"github.com/kisanseva/kisanseva/internal/scheduler"
	"github.com/kisanseva/kisanseva/internal/server/handlers"
	"github.com/kisanseva/kisanseva/internal/server/router"
	ledgersvc "github.com/kisanseva/kisanseva/internal/service/ledger"
	reportsvc "github.com/kisanseva/kisanseva/internal/service/report"
	schemesvc "github.com/kisanseva/kisanseva/internal/service/schemes"
	weathersvc "github.com/kisanseva/kisanseva/internal/service/weather"
	"github.com/kisanseva/kisanseva/pkg/clients/openweather"
	"github.com/kisanseva/kisanseva/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
	} else {
		baseLogger.Warn("google sheets credentials missing, spreadsheet summaries disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ledgerSvc := ledgersvc.NewService(repo, baseLogger.Named("svc.ledger"))
	go func() {
		if err := ledgerSvc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			baseLogger.Fatal("crop snapshot feed failed", zap.Error(err))
		}
	}()

	reportSvc := reportsvc.NewService(reportsvc.NewHTMLRenderer(cfg.Reporting.ReportDir), baseLogger.Named("svc.report"))
	var sheetExporter *reportsvc.SheetExporter
	if exporter != nil {
		sheetExporter = reportsvc.NewSheetExporter(exporter, cfg.Reporting.ReportRange, baseLogger.Named("svc.report"))
	}
	weatherSvc := weathersvc.NewService(openweather.NewClient(cfg.Weather), repo, baseLogger.Named("svc.weather"))
	schemeSvc := schemesvc.NewService(repo, baseLogger.Named("svc.schemes"))

	cropHandler := handlers.NewCropHandler(ledgerSvc, reportSvc, sheetExporter, baseLogger.Named("handlers.crops"))
	weatherHandler := handlers.NewWeatherHandler(weatherSvc, baseLogger.Named("handlers.weather"))
	infoHandler := handlers.NewInfoHandler(schemeSvc, baseLogger.Named("handlers.info"))
	profileHandler := handlers.NewProfileHandler(repo, baseLogger.Named("handlers.profile"))
	engine := router.New(cropHandler, weatherHandler, infoHandler, profileHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, ledgerSvc, repo, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
