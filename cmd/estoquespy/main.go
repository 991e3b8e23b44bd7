package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/estoquespy/internal/application/stocksync"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
	"github.com/jhoicas/estoquespy/internal/infrastructure/memory"
	"github.com/jhoicas/estoquespy/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/estoquespy/internal/infrastructure/pdf"
	"github.com/jhoicas/estoquespy/internal/infrastructure/rest"
	httpRouter "github.com/jhoicas/estoquespy/internal/interfaces/http"
	"github.com/jhoicas/estoquespy/pkg/config"
	"github.com/jhoicas/estoquespy/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.URL).
		Msg("iniciando aplicación")

	repos, err := buildRepositories(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar repositorios")
	}

	feed := notify.NewFeed(notify.DefaultCapacity, log.Named("notify"))
	session := stocksync.NewSession(repos, stocksync.SessionConfig{
		ProductsInterval:  cfg.Poll.ProductsInterval,
		MovementsInterval: cfg.Poll.MovementsInterval,
	}, feed, log)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if err := session.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("iniciar sincronización")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:       session,
		Notifications: feed,
		Reports:       infrapdf.NewMarotoReportGenerator(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	session.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// buildRepositories usa el backend REST si BACKEND_URL está definido; si no,
// un store en memoria con datos de ejemplo e IDs asignados por el cliente.
func buildRepositories(cfg *config.Config, log *logger.Logger) (stocksync.Repositories, error) {
	if cfg.Backend.Offline() {
		log.Warn().Msg("BACKEND_URL vacío: modo offline con datos en memoria")
		store := memory.NewStore(inventory.NewLocalIDGenerator())
		if err := memory.Seed(context.Background(), store); err != nil {
			return stocksync.Repositories{}, err
		}
		return stocksync.Repositories{
			Products:  memory.NewProductRepository(store),
			Movements: memory.NewMovementRepository(store),
			Employees: memory.NewEmployeeRepository(store),
		}, nil
	}

	client, err := rest.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	if err != nil {
		return stocksync.Repositories{}, err
	}
	return stocksync.Repositories{
		Products:  rest.NewProductRepository(client),
		Movements: rest.NewMovementRepository(client),
		Employees: rest.NewEmployeeRepository(client),
	}, nil
}
