package main

import (
	"context"
	"os"

	"laundry-service/config"
	"laundry-service/internal/database"
	"laundry-service/internal/logger"
	"laundry-service/internal/migrate"
	"laundry-service/internal/repository"
	"laundry-service/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	db := database.ConnectDBForMigration(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	ctx := context.Background()

	opts := migrate.DefaultMigrateOptions()

	if err := migrate.MigrateLaundryDB(ctx, db, log, opts); err != nil {
		log.Fatal("Ошибка при выполнении миграции", zap.Error(err))
	}

	n, err := repository.New(db).ProductTypes.SeedIfEmpty(ctx, service.DefaultProductTypes)
	if err != nil {
		log.Fatal("Ошибка при заполнении справочника услуг", zap.Error(err))
	}

	log.Info("Миграция успешно завершена", zap.Int64("product_types_seeded", n))
}
