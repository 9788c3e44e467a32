package main

import (
	"fmt"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// AppState holds the three independent collections served by the app.
type AppState struct {
	Users      repositories.UserRepository
	Products   repositories.ProductRepository
	Categories repositories.CategoryRepository
}

// NewMemoryState returns empty in-memory collections.
func NewMemoryState() *AppState {
	return &AppState{
		Users:      repositories.NewMemoryRepository[models.User, models.CreateUser, models.UpdateUser]("User"),
		Products:   repositories.NewMemoryRepository[models.Product, models.CreateProduct, models.UpdateProduct]("Product"),
		Categories: repositories.NewMemoryRepository[models.Category, models.CreateCategory, models.UpdateCategory]("Category"),
	}
}

// NewState builds the collections for the configured store driver.
func NewState(cfg config.Config) (*AppState, error) {
	if cfg.StoreDriver == config.StoreMemory {
		return NewMemoryState(), nil
	}

	db, err := database.Open(cfg.StoreDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	return &AppState{
		Users:      repositories.NewGORMRepository[models.User, models.CreateUser, models.UpdateUser](db, "User"),
		Products:   repositories.NewGORMRepository[models.Product, models.CreateProduct, models.UpdateProduct](db, "Product"),
		Categories: repositories.NewGORMRepository[models.Category, models.CreateCategory, models.UpdateCategory](db, "Category"),
	}, nil
}

// NewApp wires state into a Fiber app. publisher may be nil to disable events.
func NewApp(cfg config.Config, state *AppState, publisher services.EventPublisher) (*fiber.App, error) {
	if state == nil {
		return nil, fmt.Errorf("app state is required")
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: cfg.CORSAllowMethods,
		AllowHeaders: cfg.CORSAllowHeaders,
	}))

	validate := validator.New()

	handlers.NewResourceHandler("/users",
		services.NewResourceService("User", state.Users, publisher), validate).RegisterRoutes(app)
	handlers.NewResourceHandler("/products",
		services.NewResourceService("Product", state.Products, publisher), validate).RegisterRoutes(app)
	handlers.NewResourceHandler("/categories",
		services.NewResourceService("Category", state.Categories, publisher), validate).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  cfg.StoreDriver,
		})
	})

	return app, nil
}
