package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ProductRepository interface {
	CreateProduct(product *Product) error
	GetProduct(id string) (*Product, error)
	GetProductByName(name string) (*Product, error)
	ListProducts() ([]Product, error)
	// DecrementStock atomically subtracts quantity from the product's stock.
	// It must fail rather than let the stock go negative.
	DecrementStock(id string, quantity int) error
}
