package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/platform/config"
	"paydesk/internal/platform/db"
	"paydesk/internal/platform/events"
	"paydesk/internal/platform/seed"
	filestore "paydesk/internal/store/file"
	memorystore "paydesk/internal/store/memory"
	postgresstore "paydesk/internal/store/postgres"
	employeeshandler "paydesk/internal/transport/http/handlers/employees"
	payslipshandler "paydesk/internal/transport/http/handlers/payslips"
	"paydesk/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Router http.Handler

	pool    *pgxpool.Pool
	closers []func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{Config: cfg}
	bus := events.NewBus()

	store, err := app.openStore(ctx, cfg, bus)
	if err != nil {
		return nil, err
	}

	if cfg.RunSeed {
		if err := seed.Seed(ctx, store); err != nil {
			app.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	// Both services read-modify-write the same collections; one lock
	// serializes their save cycles.
	lock := &directory.StoreLock{}
	payrollService := payroll.NewService(store, bus, cfg.DuplicatePolicy, lock)
	directoryService := directory.NewService(store, bus, lock)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if app.pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := app.pool.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		payslipshandler.NewHandler(payrollService, bus, cfg.PayslipDir).RegisterRoutes(r)
		employeeshandler.NewHandler(directoryService).RegisterRoutes(r)
	})

	app.Router = router
	return app, nil
}

func (a *App) openStore(ctx context.Context, cfg config.Config, bus *events.Bus) (payroll.StoreAPI, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return memorystore.New(), nil

	case config.BackendFile:
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		stop, err := store.Watch(bus)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, stop)
		return store, nil

	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		a.pool = pool
		a.closers = append(a.closers, pool.Close)
		return postgresstore.New(pool), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func Run() {
	cfg := config.Load()

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("paydesk server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
