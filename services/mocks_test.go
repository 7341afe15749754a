package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/sender"
)

// --- Mock Repositories ---

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllNewestFirst(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByCredentials(ctx context.Context, username, password string) (*models.AdminCredential, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminCredential), args.Error(1)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*models.AdminCredential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminCredential), args.Error(1)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) RecordCount(ctx context.Context, metricName string, dimensions map[string]string) error {
	args := m.Called(ctx, metricName, dimensions)
	return args.Error(0)
}

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) Name() string { return "mock" }

func (m *MockChannel) Send(ctx context.Context, key, encoded string) (sender.SendResult, error) {
	args := m.Called(ctx, key, encoded)
	return args.Get(0).(sender.SendResult), args.Error(1)
}

func sendResult(link string) sender.SendResult {
	return sender.SendResult{MessageID: "mock-1", Link: link, SentAt: time.Unix(0, 0)}
}

// --- Fixtures ---

var (
	spinachID = uuid.MustParse("8a1f0c1e-5d7b-4f0e-9a43-1c2d3e4f5a01")
	tilapiaID = uuid.MustParse("8a1f0c1e-5d7b-4f0e-9a43-1c2d3e4f5a02")
	nuggetID  = uuid.MustParse("8a1f0c1e-5d7b-4f0e-9a43-1c2d3e4f5a03")
	pepperID  = uuid.MustParse("8a1f0c1e-5d7b-4f0e-9a43-1c2d3e4f5a04")
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: spinachID, Name: "Bayam Segar", Category: models.CategoryVegetables, Price: 5000, Description: "Fresh spinach", InStock: true},
		{ID: tilapiaID, Name: "Ikan Nila", Category: models.CategoryFish, Price: 32000, Description: "Whole tilapia fish", InStock: true},
		{ID: nuggetID, Name: "Fish Nugget", Category: models.CategoryFrozen, Price: 27500, Description: "Frozen nuggets", InStock: false},
		{ID: pepperID, Name: "Lada Hitam", Category: models.CategorySpices, Price: 3000, Description: "Black pepper", InStock: true},
	}
}

func buyerSession(id string) *models.Session {
	return &models.Session{ID: id, Identity: models.Buyer{Name: "Ana", Address: "Jl. Mawar 1"}}
}
