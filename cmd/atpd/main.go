package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/partflow/atp/pkg/application/services/atp"
	"github.com/partflow/atp/pkg/application/services/shared"
	"github.com/partflow/atp/pkg/domain/services"
	"github.com/partflow/atp/pkg/infrastructure/events"
	"github.com/partflow/atp/pkg/infrastructure/repositories/csv"
	"github.com/partflow/atp/pkg/infrastructure/repositories/memory"
	"github.com/partflow/atp/pkg/infrastructure/seed"
	"github.com/partflow/atp/pkg/interfaces/rest"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := LoadConfig()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("scenario", cfg.ScenarioDir).
		Msg("starting atp service")

	catalog, err := loadCatalog(cfg.ScenarioDir)
	must(err)

	service, ledger, err := buildService(catalog)
	must(err)
	log.Info().
		Int("products", len(catalog.Products)).
		Int("warehouses", len(catalog.Warehouses)).
		Int("customers", len(catalog.Customers)).
		Int("inventory", len(catalog.Inventory)).
		Msg("catalog loaded")

	mux := http.NewServeMux()
	rest.NewHandler(service, ledger).RegisterRoutes(mux)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsHandler.Handler(mux),
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Warn().Msg("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownGrace)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Msg("http listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func loadCatalog(scenarioDir string) (*csv.Scenario, error) {
	if scenarioDir == "" {
		log.Info().Msg("no scenario directory configured, using demo catalog")
		return seed.Demo(), nil
	}
	return csv.NewLoader().LoadScenario(scenarioDir)
}

func buildService(catalog *csv.Scenario) (*atp.ATPService, *memory.StockLedger, error) {
	products := memory.NewProductRepository(len(catalog.Products))
	if err := products.LoadProducts(catalog.Products); err != nil {
		return nil, nil, err
	}
	warehouses := memory.NewWarehouseRepository(len(catalog.Warehouses))
	if err := warehouses.LoadWarehouses(catalog.Warehouses); err != nil {
		return nil, nil, err
	}
	customers := memory.NewCustomerRepository(len(catalog.Customers))
	if err := customers.LoadCustomers(catalog.Customers); err != nil {
		return nil, nil, err
	}
	ledger := memory.NewStockLedger()
	if err := ledger.LoadInventory(catalog.Inventory); err != nil {
		return nil, nil, err
	}

	service := atp.NewATPService(atp.Config{
		Products:      products,
		Warehouses:    warehouses,
		Customers:     customers,
		Ledger:        ledger,
		Rules:         services.NewRuleResolver(catalog.SourcingRules, seed.BackupWarehouseID),
		Substitutions: services.NewSubstitutionResolver(catalog.SubstitutionRules),
		Clock:         shared.SystemClock{},
		AuditLog:      events.NewInMemoryStore(),
	})
	return service, ledger, nil
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
