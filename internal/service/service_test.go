package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prodstore/product_service/internal/store"
	"github.com/prodstore/product_service/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products []store.Product
	product  store.Product
	error    error
}

// Simulate finding a product by ID
func (m *mockProductStore) FindByID(_ context.Context, _ primitive.ObjectID) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// Simulate finding all products
func (m *mockProductStore) FindAll(_ context.Context, _, _ int64) ([]store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

// Simulate creating a product
func (m *mockProductStore) Create(_ context.Context, _, _ string, _ float64) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// Simulate updating a product
func (m *mockProductStore) Update(_ context.Context, _ primitive.ObjectID, _ store.ProductUpdate) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// Simulate deleting a product by ID
func (m *mockProductStore) DeleteByID(_ context.Context, _ primitive.ObjectID) error {
	return m.error
}

// mockPublisher records published events
type mockPublisher struct {
	events []messaging.Event
	error  error
}

func (m *mockPublisher) Publish(_ context.Context, event messaging.Event) error {
	m.events = append(m.events, event)
	return m.error
}

func Test_ProductService_FindByID(t *testing.T) {
	ErrProductNotFound := errors.New("product not found")
	mockID, _ := primitive.ObjectIDFromHex("64f0c2aee1382c5c3b8e9a01")
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		productID   primitive.ObjectID
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStore{
				product: store.Product{ID: mockID, Name: "Toy", Price: 9.99, CreatedAt: createdAt, UpdatedAt: createdAt},
				error:   nil,
			},
			productID: mockID,
			expected: &ProductDto{
				ID:        mockID.Hex(),
				Name:      "Toy",
				Price:     9.99,
				CreatedAt: createdAt.Format(time.RFC3339),
				UpdatedAt: createdAt.Format(time.RFC3339),
			},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockProductStore{
				error: ErrProductNotFound,
			},
			productID:   mockID,
			expected:    nil,
			expectError: ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore, &mockPublisher{})
			// when
			found, err := service.FindByID(context.Background(), tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	mockID, _ := primitive.ObjectIDFromHex("64f0c2aee1382c5c3b8e9a01")
	testCases := []struct {
		name         string
		mockStore    *mockProductStore
		expectedList []ProductDto
		expectError  error
	}{
		{
			name: "Success - products found",
			mockStore: &mockProductStore{
				products: []store.Product{{ID: mockID, Name: "Toy", Price: 9.99}},
				error:    nil,
			},
			expectedList: []ProductDto{{
				ID:        mockID.Hex(),
				Name:      "Toy",
				Price:     9.99,
				CreatedAt: time.Time{}.Format(time.RFC3339),
				UpdatedAt: time.Time{}.Format(time.RFC3339),
			}},
			expectError: nil,
		},
		{
			name: "Success - no products",
			mockStore: &mockProductStore{
				products: []store.Product{},
				error:    nil,
			},
			expectedList: []ProductDto{},
			expectError:  nil,
		},
		{
			name: "Error - store error",
			mockStore: &mockProductStore{
				error: ErrStoreError,
			},
			expectedList: nil,
			expectError:  ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore, &mockPublisher{})
			// when
			found, err := service.FindAll(context.Background(), 0, 10)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedList, found)
		})
	}
}

func Test_ProductService_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	mockID, _ := primitive.ObjectIDFromHex("64f0c2aee1382c5c3b8e9a01")
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name           string
		mockStore      *mockProductStore
		createDto      ProductCreateDto
		expected       *ProductDto
		expectedEvents int
		expectError    error
	}{
		{
			name: "Success - product created and event published",
			mockStore: &mockProductStore{
				product: store.Product{ID: mockID, Name: "Toy", Description: "wooden", Price: 9.99, CreatedAt: createdAt, UpdatedAt: createdAt},
			},
			createDto: ProductCreateDto{Name: "Toy", Description: "wooden", Price: 9.99},
			expected: &ProductDto{
				ID:          mockID.Hex(),
				Name:        "Toy",
				Description: "wooden",
				Price:       9.99,
				CreatedAt:   createdAt.Format(time.RFC3339),
				UpdatedAt:   createdAt.Format(time.RFC3339),
			},
			expectedEvents: 1,
		},
		{
			name: "Error - store error, no event",
			mockStore: &mockProductStore{
				error: ErrStoreError,
			},
			createDto:      ProductCreateDto{Name: "Toy", Price: 9.99},
			expectedEvents: 0,
			expectError:    ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			service := NewService(tc.mockStore, publisher)
			// when
			created, err := service.Create(context.Background(), tc.createDto)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				assert.Len(t, publisher.events, tc.expectedEvents)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, created)
			require.Len(t, publisher.events, tc.expectedEvents)
			assert.Equal(t, "products.created", publisher.events[0].Subject())
		})
	}
}

func Test_ProductService_Create_PublishFailureIsNotFatal(t *testing.T) {
	// given
	mockID, _ := primitive.ObjectIDFromHex("64f0c2aee1382c5c3b8e9a01")
	mockStore := &mockProductStore{product: store.Product{ID: mockID, Name: "Toy", Price: 9.99}}
	publisher := &mockPublisher{error: errors.New("nats unavailable")}
	service := NewService(mockStore, publisher)
	// when
	created, err := service.Create(context.Background(), ProductCreateDto{Name: "Toy", Price: 9.99})
	// then
	require.NoError(t, err)
	assert.Equal(t, mockID.Hex(), created.ID)
}

func Test_ProductService_Update(t *testing.T) {
	ErrProductNotFound := errors.New("product not found")
	mockID, _ := primitive.ObjectIDFromHex("64f0c2aee1382c5c3b8e9a01")
	newName := "Updated Toy"
	testCases := []struct {
		name           string
		mockStore      *mockProductStore
		updateDto      ProductUpdateDto
		expectedName   string
		expectedEvents int
		expectError    error
	}{
		{
			name: "Success - product updated and event published",
			mockStore: &mockProductStore{
				product: store.Product{ID: mockID, Name: newName, Price: 9.99},
			},
			updateDto:      ProductUpdateDto{Name: &newName},
			expectedName:   newName,
			expectedEvents: 1,
		},
		{
			name: "Error - product not found, no event",
			mockStore: &mockProductStore{
				error: ErrProductNotFound,
			},
			updateDto:      ProductUpdateDto{Name: &newName},
			expectedEvents: 0,
			expectError:    ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			service := NewService(tc.mockStore, publisher)
			// when
			updated, err := service.Update(context.Background(), mockID, tc.updateDto)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				assert.Len(t, publisher.events, tc.expectedEvents)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, updated.Name)
			require.Len(t, publisher.events, tc.expectedEvents)
			assert.Equal(t, "products.updated", publisher.events[0].Subject())
		})
	}
}

func Test_ProductService_DeleteByID(t *testing.T) {
	ErrProductNotFound := errors.New("product not found")
	mockID, _ := primitive.ObjectIDFromHex("64f0c2aee1382c5c3b8e9a01")
	testCases := []struct {
		name           string
		mockStore      *mockProductStore
		expectedEvents int
		expectError    error
	}{
		{
			name:           "Success - product deleted and event published",
			mockStore:      &mockProductStore{},
			expectedEvents: 1,
		},
		{
			name: "Error - product not found, no event",
			mockStore: &mockProductStore{
				error: ErrProductNotFound,
			},
			expectedEvents: 0,
			expectError:    ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			service := NewService(tc.mockStore, publisher)
			// when
			err := service.DeleteByID(context.Background(), mockID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Len(t, publisher.events, tc.expectedEvents)
				return
			}
			require.NoError(t, err)
			require.Len(t, publisher.events, tc.expectedEvents)
			assert.Equal(t, "products.deleted", publisher.events[0].Subject())
		})
	}
}
