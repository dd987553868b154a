package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	perrors "github.com/prodstore/product_service/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productsCollection = "products"

// MongoStore implements ProductStore using MongoDB as the data store.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new instance of ProductStore backed by the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection(productsCollection),
	}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (m *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var product Product
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all available products ordered by insertion (_id ascending),
// with optional pagination support. A non-positive limit means no limit.
// It returns a slice of products, which may be empty if no products exist.
func (m *MongoStore) FindAll(ctx context.Context, offset, limit int64) ([]Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	products := make([]Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// Create adds a new product to the system.
// Returns an error if the product cannot be created.
func (m *MongoStore) Create(ctx context.Context, name, description string, price float64) (*Product, error) {
	now := time.Now().UTC()
	product := Product{
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	result, err := m.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return &product, nil
}

// Update applies the supplied fields to an existing product and returns the
// post-update document. Returns ErrProductNotFound if no product exists with the given ID.
func (m *MongoStore) Update(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) (*Product, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product Product
	err := m.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (m *MongoStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if result.DeletedCount == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}
