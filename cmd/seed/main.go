package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"card-checkout/internal/config"
	"card-checkout/internal/domain"
	"card-checkout/internal/repository"
)

// Demo catalog. Prices are in COP pesos.
var products = []domain.Product{
	{
		Name:          "Wireless Headphones",
		Description:   "Noise-cancelling over-ear headphones",
		Price:         decimal.NewFromInt(299900),
		StockQuantity: 50,
		ImageURL:      "https://images.example.com/products/wireless-headphones.jpg",
	},
	{
		Name:          "Smartwatch",
		Description:   "Smart watch with heart-rate monitor",
		Price:         decimal.NewFromInt(499900),
		StockQuantity: 30,
		ImageURL:      "https://images.example.com/products/smartwatch.jpg",
	},
	{
		Name:          "Digital Camera",
		Description:   "Compact 20MP camera with 10x optical zoom",
		Price:         decimal.NewFromInt(799900),
		StockQuantity: 20,
		ImageURL:      "https://images.example.com/products/digital-camera.jpg",
	},
	{
		Name:          "Ultralight Laptop",
		Description:   "13-inch laptop with 16GB RAM and 512GB SSD",
		Price:         decimal.NewFromInt(2499900),
		StockQuantity: 15,
		ImageURL:      "https://images.example.com/products/ultralight-laptop.jpg",
	},
	{
		Name:          "Smart Speaker",
		Description:   "Speaker with built-in voice assistant",
		Price:         decimal.NewFromInt(199900),
		StockQuantity: 40,
		ImageURL:      "https://images.example.com/products/smart-speaker.jpg",
	},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.GetDBConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	store := repository.NewStore(db, logger)

	err = store.WithTransaction(func(txStore *repository.Store) error {
		for i := range products {
			product := products[i]

			existing, err := txStore.Product().GetProductByName(product.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				logger.Info("Product already seeded", "name", product.Name)
				continue
			}

			product.ID = uuid.New().String()
			if err := txStore.Product().CreateProduct(&product); err != nil {
				return err
			}
			logger.Info("Created product", "name", product.Name, "product_id", product.ID)
		}
		return nil
	})
	if err != nil {
		logger.Error("Error seeding products", "error", err)
		os.Exit(1)
	}

	logger.Info("Seed completed successfully")
}
