package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"RailEscape-App/internal/config"
	"RailEscape-App/internal/domain/repository"
	"RailEscape-App/internal/domain/service"
	"RailEscape-App/internal/domain/strategy"
	"RailEscape-App/internal/handler"
	"RailEscape-App/internal/infrastructure/database"
	"RailEscape-App/internal/infrastructure/gbfs"
	"RailEscape-App/internal/infrastructure/gtfsrt"
	"RailEscape-App/internal/infrastructure/httpclient"
	"RailEscape-App/internal/infrastructure/maps"
	"RailEscape-App/internal/infrastructure/odpt"
	repoImpl "RailEscape-App/internal/repository"
	"RailEscape-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	busLines, err := config.LoadBusLineTable(cfg.BusHubTablePath)
	if err != nil {
		log.Fatalf("バス拠点表の読み込みに失敗: %v", err)
	}

	// 外部APIへの同時接続数はプロセス全体で制限する
	transport := httpclient.NewLimitedTransport(http.DefaultTransport, cfg.MaxOutboundCalls)
	httpClient := httpclient.NewClient(transport, 10*time.Second)

	odptClient := odpt.NewClient(cfg.ODPTBaseURL, cfg.ODPTConsumerKey, httpClient, odpt.Options{
		StatusTimeout: cfg.StatusTimeout,
		TrainTimeout:  cfg.TrainTimeout,
		LookupTimeout: cfg.LookupTimeout,
	})
	gbfsClient := gbfs.NewClient(cfg.GBFSBaseURL, cfg.GBFSSystemID, cfg.ODPTConsumerKey, httpClient, cfg.LookupTimeout)
	nominatim := maps.NewNominatimProvider(cfg.NominatimBaseURL, cfg.NominatimUserAgent, cfg.CountryCode, httpClient, cfg.LookupTimeout)

	var delaySource repository.TrainDelayRepository = odptClient
	if cfg.GTFSRTTripUpdatesURL != "" {
		log.Printf("🚆 列車遅延はGTFS-RTから取得: %s", cfg.GTFSRTTripUpdatesURL)
		delaySource = gtfsrt.NewTripUpdateDelaySource(cfg.GTFSRTTripUpdatesURL, httpClient, cfg.TrainTimeout, gtfsrt.RouteIDFromLineID)
	}

	lineCatalog := repoImpl.NewStaticLineCatalogRepository()
	var catalogDB handler.DatabaseChecker
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		pgClient, err := database.NewPostgreSQLClient(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Printf("⚠️ PostgreSQLに接続できないため組み込みの路線一覧を使用: %v", err)
		} else {
			defer pgClient.Close()
			catalogDB = pgClient
			lineCatalog = repoImpl.NewFallbackLineCatalogRepository(repoImpl.NewPostgresLineCatalogRepository(pgClient), lineCatalog)
		}
	}

	// Dependency injection
	signals := service.NewTransitSignalService(odptClient, delaySource, odptClient)
	evaluator := service.NewParallelLegEvaluator(signals, int(cfg.MaxOutboundCalls))
	engine := service.NewReRouteEngine(signals, evaluator,
		strategy.NewBikeShareStrategy(gbfsClient),
		strategy.NewBusStopStrategy(nominatim, busLines),
	)

	advisoryUseCase := usecase.NewAdvisoryUseCase(engine, cfg.DefaultOrigin)
	lookupUseCase := usecase.NewTransitLookupUseCase(lineCatalog, odptClient, odptClient, nominatim)

	r := handler.NewRouter(
		handler.NewAdvisoryHandler(advisoryUseCase),
		handler.NewTransitLookupHandler(lookupUseCase),
		handler.NewHealthHandler(catalogDB),
	)

	log.Printf("🚀 %s server starting on :%s...", handler.ServiceName, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
