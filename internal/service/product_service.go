package service

import (
	"log/slog"

	"github.com/google/uuid"

	"card-checkout/internal/domain"
	"card-checkout/internal/errors"
	"card-checkout/internal/repository"
)

type ProductService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewProductService(store *repository.Store, logger *slog.Logger) *ProductService {
	return &ProductService{
		store:  store,
		logger: logger,
	}
}

func (s *ProductService) GetProduct(id string) (*domain.Product, error) {
	if id == "" {
		return nil, errors.NewAppError(errors.InvalidInput, "product ID is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.NewAppError(errors.InvalidInput, "product ID must be a valid UUID")
	}

	product, err := s.store.Product().GetProduct(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}

	return product, nil
}

func (s *ProductService) ListProducts() ([]domain.Product, error) {
	return s.store.Product().ListProducts()
}
