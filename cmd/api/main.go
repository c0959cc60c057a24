package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/restaurantes-api/internal/application/ports"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
	"github.com/jhoicas/restaurantes-api/internal/infrastructure/memory"
	"github.com/jhoicas/restaurantes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurantes-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/restaurantes-api/internal/interfaces/http"
	"github.com/jhoicas/restaurantes-api/pkg/config"
	"github.com/jhoicas/restaurantes-api/pkg/logger"
)

// repositories agrupa la persistencia elegida por DB_DRIVER.
type repositories struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	products    repository.ProductRepository
	txRunner    usecase.TxRunner
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Str("storage_driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer repos.close()

	errs := httpRouter.NewErrorFormatter(cfg.App.Debug, log.Component("http"))
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errs.FiberHandler,
	})
	app.Use(recover.New())

	blobs, err := openBlobStorage(ctx, cfg.Storage, app)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	restaurantUC := usecase.NewRestaurantUseCase(repos.restaurants, repos.categories, repos.products, repos.txRunner, blobs)
	categoryUC := usecase.NewCategoryUseCase(repos.categories, repos.restaurants)
	productUC := usecase.NewProductUseCase(repos.products, repos.restaurants, repos.categories, blobs)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Restaurantes API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("documento swagger no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RestaurantUC: restaurantUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		Errors:       errs,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepositories(ctx context.Context, cfg config.DBConfig) (*repositories, error) {
	if cfg.Driver == config.DBDriverMemory {
		store := memory.NewStore()
		return &repositories{
			restaurants: store.Restaurants(),
			categories:  store.Categories(),
			products:    store.Products(),
			txRunner:    memory.NewTxRunner(store),
			close:       func() {},
		}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &repositories{
		restaurants: postgres.NewRestaurantRepository(pool),
		categories:  postgres.NewCategoryRepository(pool),
		products:    postgres.NewProductRepository(pool),
		txRunner:    postgres.NewTxRunner(pool),
		close:       pool.Close,
	}, nil
}

// openBlobStorage construye el disco de imágenes. En modo local además sirve
// la raíz bajo /storage.
func openBlobStorage(ctx context.Context, cfg config.StorageConfig, app *fiber.App) (ports.BlobStorage, error) {
	if cfg.Driver == config.StorageDriverS3 {
		return storage.NewS3Storage(ctx, cfg.S3)
	}
	local, err := storage.NewLocalStorage(cfg.LocalRoot, cfg.PublicURL)
	if err != nil {
		return nil, err
	}
	app.Static("/storage", local.Root())
	return local, nil
}
