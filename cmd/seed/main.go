// seed creates the superadmin account and a starter menu so a fresh install
// is usable right away. Safe to re-run: existing rows are left alone.
//
// Usage: go run ./cmd/seed
// Reads SEED_SUPERADMIN_EMAIL and SEED_SUPERADMIN_PASSWORD from the
// environment (defaults: superadmin@fng.local / superadmin123).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	appstock "github.com/osvaldosurbakti/fng-admin/internal/application/stock"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/stock"
	"github.com/osvaldosurbakti/fng-admin/internal/infrastructure/postgres"
	"github.com/osvaldosurbakti/fng-admin/pkg/config"
	"github.com/osvaldosurbakti/fng-admin/pkg/logger"
)

type menuItem struct {
	name     string
	price    string
	category string
	unit     string
	sku      string
	stock    int
	minimum  int
}

var starterMenu = []menuItem{
	{name: "Nasi Goreng Spesial", price: "25000", category: entity.CategoryFood, unit: entity.UnitPcs, sku: "FNG-F-NASGOR", stock: 20, minimum: 5},
	{name: "Mie Ayam Bakso", price: "20000", category: entity.CategoryFood, unit: entity.UnitPcs, sku: "FNG-F-MIEAYM", stock: 15, minimum: 5},
	{name: "Ayam Geprek", price: "22000", category: entity.CategoryFood, unit: entity.UnitPcs, sku: "FNG-F-GEPREK", stock: 25, minimum: 8},
	{name: "Es Teh Manis", price: "5000", category: entity.CategoryDrink, unit: entity.UnitPcs, sku: "FNG-D-ESTEH", stock: 50, minimum: 10},
	{name: "Kopi Susu Gula Aren", price: "18000", category: entity.CategoryDrink, unit: entity.UnitPcs, sku: "FNG-D-KOPSUS", stock: 30, minimum: 10},
	{name: "Air Mineral", price: "4000", category: entity.CategoryDrink, unit: entity.UnitBottle, sku: "FNG-D-AQUA", stock: 48, minimum: 12},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	adjuster := appstock.NewAdjustStockUseCase(postgres.NewTxRunner(pool))

	// Superadmin
	email := envOr("SEED_SUPERADMIN_EMAIL", "superadmin@fng.local")
	password := envOr("SEED_SUPERADMIN_PASSWORD", "superadmin123")
	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("check superadmin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		now := time.Now()
		err = userRepo.Create(ctx, &entity.User{
			ID:           uuid.New().String(),
			Name:         "Super Admin",
			Email:        email,
			PasswordHash: string(hash),
			Role:         entity.RoleSuperadmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("create superadmin")
		}
		log.Info().Str("email", email).Msg("superadmin created")
	} else {
		log.Info().Str("email", email).Msg("superadmin already present, skipping")
	}

	// Starter menu, initial stock recorded through the ledger.
	for _, item := range starterMenu {
		existing, err := productRepo.GetByName(ctx, item.name)
		if err != nil {
			log.Fatal().Err(err).Str("product", item.name).Msg("check product")
		}
		if existing != nil {
			log.Info().Str("product", item.name).Msg("product already present, skipping")
			continue
		}
		now := time.Now()
		product := &entity.Product{
			ID:            uuid.New().String(),
			Name:          item.name,
			Price:         decimal.RequireFromString(item.price),
			Category:      item.category,
			IsAvailable:   true,
			SKU:           item.sku,
			Unit:          item.unit,
			CurrentStock:  0,
			MinimumStock:  item.minimum,
			IsTrackStock:  true,
			LowStockAlert: stock.LowStockAlert(true, 0, item.minimum),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			log.Fatal().Err(err).Str("product", item.name).Msg("create product")
		}
		if item.stock > 0 {
			_, err := adjuster.Adjust(ctx, appstock.AdjustInput{
				ProductID: product.ID,
				Target:    item.stock,
				Actor:     "system",
				Type:      entity.MovementTypeInitial,
				Reference: "SEED",
				Notes:     "Seeded initial stock",
			})
			if err != nil {
				log.Fatal().Err(err).Str("product", item.name).Msg("seed initial stock")
			}
		}
		log.Info().Str("product", item.name).Int("stock", item.stock).Msg("product seeded")
	}

	log.Info().Msg("seed finished")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
