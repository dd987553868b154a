// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the persisted document shape of a product.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ProductUpdate carries a partial update: nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error)

	// FindAll returns all available products ordered by insertion.
	// limit <= 0 means no limit. Returns an empty slice if no products exist.
	FindAll(ctx context.Context, offset, limit int64) ([]Product, error)

	// Create adds a new product to the system.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, name, description string, price float64) (*Product, error)

	// Update applies the supplied fields to an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
