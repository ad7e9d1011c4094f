package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fintrack/expense-tracker/config"
	"github.com/fintrack/expense-tracker/db"
	authhandler "github.com/fintrack/expense-tracker/internal/auth/handler"
	"github.com/fintrack/expense-tracker/internal/auth/password"
	authrepo "github.com/fintrack/expense-tracker/internal/auth/repository/postgres"
	authservice "github.com/fintrack/expense-tracker/internal/auth/service"
	budgethandler "github.com/fintrack/expense-tracker/internal/budget/handler"
	budgetrepo "github.com/fintrack/expense-tracker/internal/budget/repository/postgres"
	budgetservice "github.com/fintrack/expense-tracker/internal/budget/service"
	categoryhandler "github.com/fintrack/expense-tracker/internal/category/handler"
	categoryrepo "github.com/fintrack/expense-tracker/internal/category/repository/postgres"
	categoryservice "github.com/fintrack/expense-tracker/internal/category/service"
	"github.com/fintrack/expense-tracker/internal/middleware"
	transactionhandler "github.com/fintrack/expense-tracker/internal/transaction/handler"
	transactionrepo "github.com/fintrack/expense-tracker/internal/transaction/repository/postgres"
	transactionservice "github.com/fintrack/expense-tracker/internal/transaction/service"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	categoryRepo := categoryrepo.NewPostgresRepository(dbPool)
	transactionRepo := transactionrepo.NewPostgresRepository(dbPool)
	budgetRepo := budgetrepo.NewPostgresRepository(dbPool)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	userService := authservice.NewUserService(userRepo, tokenService, hasher)
	categoryService := categoryservice.NewCategoryService(categoryRepo)
	transactionService := transactionservice.NewTransactionService(transactionRepo, categoryRepo)
	budgetService := budgetservice.NewBudgetService(budgetRepo, categoryRepo)

	app := fiber.New()

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Every request passes the authenticator; it binds an identity when a
	// valid access token is present and stays silent otherwise.
	app.Use(middleware.Authenticate(tokenService, userRepo))

	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(userService))

	transactionhandler.RegisterRoutes(
		app.Group("/api/v1/transactions", middleware.RequireAuth()),
		transactionhandler.NewTransactionHandler(transactionService))
	categoryhandler.RegisterRoutes(
		app.Group("/api/v1/categories", middleware.RequireAuth()),
		categoryhandler.NewCategoryHandler(categoryService))
	budgethandler.RegisterRoutes(
		app.Group("/api/v1/budgets", middleware.RequireAuth()),
		budgethandler.NewBudgetHandler(budgetService))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
