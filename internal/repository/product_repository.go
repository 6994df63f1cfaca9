package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"card-checkout/internal/domain"
	"card-checkout/internal/errors"
)

type productRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewProductRepository(db SQLExecutor, logger *slog.Logger) domain.ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) CreateProduct(product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock_quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	_, err := r.db.Exec(
		query,
		product.ID,
		product.Name,
		product.Description,
		product.Price.String(),
		product.StockQuantity,
		product.ImageURL,
		now,
		now,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				r.logger.Warn("Duplicate product creation attempt", "name", product.Name)
				return errors.ErrDuplicateProduct
			}
		}
		r.logger.Error("Failed to create product", "name", product.Name, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to create product").WithDetails(err.Error())
	}

	product.CreatedAt = now
	product.UpdatedAt = now
	r.logger.Info("Product created successfully", "product_id", product.ID, "name", product.Name)
	return nil
}

func (r *productRepository) GetProduct(id string) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price, stock_quantity, image_url, created_at, updated_at
		FROM products WHERE id = $1
	`

	return r.scanProduct(query, id)
}

func (r *productRepository) GetProductByName(name string) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price, stock_quantity, image_url, created_at, updated_at
		FROM products WHERE name = $1
	`

	return r.scanProduct(query, name)
}

func (r *productRepository) scanProduct(query string, arg interface{}) (*domain.Product, error) {
	var product domain.Product
	var priceStr string

	err := r.db.QueryRow(query, arg).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&priceStr,
		&product.StockQuantity,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get product", "arg", arg, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get product").WithDetails(err.Error())
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to parse price").WithDetails(err.Error())
	}
	product.Price = price

	return &product, nil
}

func (r *productRepository) ListProducts() ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price, stock_quantity, image_url, created_at, updated_at
		FROM products ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to list products", "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to list products").WithDetails(err.Error())
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		var priceStr string

		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&priceStr,
			&product.StockQuantity,
			&product.ImageURL,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to scan product").WithDetails(err.Error())
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to parse price").WithDetails(err.Error())
		}
		product.Price = price
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to iterate products").WithDetails(err.Error())
	}

	return products, nil
}

// DecrementStock subtracts quantity in a single guarded UPDATE so concurrent
// purchases can never drive the stock below zero.
func (r *productRepository) DecrementStock(id string, quantity int) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, updated_at = $3
		WHERE id = $1 AND stock_quantity >= $2
	`

	result, err := r.db.Exec(query, id, quantity, time.Now())
	if err != nil {
		r.logger.Error("Failed to decrement stock", "product_id", id, "quantity", quantity, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to decrement stock").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("Stock decrement rejected", "product_id", id, "quantity", quantity)
		return errors.ErrInsufficientStock
	}

	r.logger.Info("Stock decremented", "product_id", id, "quantity", quantity)
	return nil
}
