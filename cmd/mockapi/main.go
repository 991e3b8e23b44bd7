// mockapi sirve el contrato REST de EstoqueSpy con datos en memoria.
//
// Uso: go run ./cmd/mockapi
// Escucha en MOCKAPI_HOST:MOCKAPI_PORT (por defecto 0.0.0.0:3001).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/estoquespy/internal/application/usecase"
	"github.com/jhoicas/estoquespy/internal/domain/inventory"
	"github.com/jhoicas/estoquespy/internal/infrastructure/memory"
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

	// Los IDs de productos los asigna el caso de uso (UUID); el generador local
	// solo cubre productos que lleguen sin ID por otras vías.
	store := memory.NewStore(inventory.NewLocalIDGenerator())
	if cfg.MockAPI.Seed {
		if err := memory.Seed(context.Background(), store); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de ejemplo")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-mockapi",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("mockapi")))

	httpRouter.BackendRouter(app, httpRouter.BackendDeps{
		ProductUC:  usecase.NewProductUseCase(store),
		MovementUC: usecase.NewMovementUseCase(store, store),
		EmployeeUC: usecase.NewEmployeeUseCase(store),
	})

	go func() {
		log.Info().Str("addr", cfg.MockAPI.Addr()).Bool("seed", cfg.MockAPI.Seed).Msg("backend simulado escuchando")
		if err := app.Listen(cfg.MockAPI.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("backend simulado detenido")
}
