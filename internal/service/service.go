// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prodstore/product_service/internal/store"
	"github.com/prodstore/product_service/pkg/messaging"
	"github.com/prodstore/product_service/pkg/messaging/events"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*ProductDto, error)

	// FindAll returns all available products ordered by insertion.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context, offset, limit int64) ([]ProductDto, error)

	// Create adds a new product to the system.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update applies the supplied fields to an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id primitive.ObjectID, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	publisher  messaging.Publisher
}

// NewService creates a new instance of ProductService with the provided repository and publisher.
func NewService(repo store.ProductStore, publisher messaging.Publisher) *Service {
	return &Service{
		repository: repo,
		publisher:  publisher,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name        string  `json:"name"                  validate:"required,max=100"`
	Description string  `json:"description,omitempty" validate:"max=1000"`
	Price       float64 `json:"price"                 validate:"required,gt=0"`
}

// ProductUpdateDto represents a partial update: only supplied fields change.
type ProductUpdateDto struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gt=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id primitive.ObjectID) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id.Hex(), err)
	}

	return toDto(product), nil
}

// FindAll retrieves a list of all products and returns them as ProductDTOs.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context, offset, limit int64) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
// Returns an error if the product cannot be created.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, product.Name, product.Description, product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	event := events.ProductCreatedEvent{
		ProductID: p.ID.Hex(),
		Name:      p.Name,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ProductCreatedEvent", "error", err)
	}

	return toDto(p), nil
}

// Update applies the supplied fields to an existing product and returns the updated product as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, product ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, id, store.ProductUpdate{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id.Hex(), err)
	}

	event := events.ProductUpdatedEvent{
		ProductID: updated.ID.Hex(),
		Name:      updated.Name,
		Price:     updated.Price,
		UpdatedAt: updated.UpdatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ProductUpdatedEvent", "error", err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return err
	}

	event := events.ProductDeletedEvent{
		ProductID: id.Hex(),
		DeletedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ProductDeletedEvent", "error", err)
	}
	return nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   product.UpdatedAt.Format(time.RFC3339),
	}
}
