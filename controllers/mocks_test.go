package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wiliafri0-dotcom/sayursegar02/middleware"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

// --- Mock Services ---

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Restore(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) IdentifyBuyer(ctx context.Context, session *models.Session, form models.BuyerForm) (models.Identity, error) {
	args := m.Called(ctx, session, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	identity := args.Get(0).(models.Identity)
	session.Identity = identity
	return identity, args.Error(1)
}

func (m *MockSessionService) IdentifyAdmin(ctx context.Context, session *models.Session, form models.AdminForm) (models.Identity, error) {
	args := m.Called(ctx, session, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	identity := args.Get(0).(models.Identity)
	session.Identity = identity
	return identity, args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Browse(ctx context.Context, search string, category models.Category) ([]models.Product, error) {
	args := m.Called(ctx, search, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogService) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, session *models.Session) (models.Ledger, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(models.Ledger), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, session *models.Session, productID uuid.UUID, quantity int) (models.Ledger, error) {
	args := m.Called(ctx, session, productID, quantity)
	return args.Get(0).(models.Ledger), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, session *models.Session, productID uuid.UUID, quantity int) (models.Ledger, error) {
	args := m.Called(ctx, session, productID, quantity)
	return args.Get(0).(models.Ledger), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, session *models.Session, productID uuid.UUID) (models.Ledger, error) {
	args := m.Called(ctx, session, productID)
	return args.Get(0).(models.Ledger), args.Error(1)
}

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, session *models.Session) (services.CheckoutResult, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(services.CheckoutResult), args.Error(1)
}

type MockAdminCatalogService struct {
	mock.Mock
}

func (m *MockAdminCatalogService) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockAdminCatalogService) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockAdminCatalogService) Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockAdminCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Helpers ---

// withSession stands in for the session cookie middleware.
func withSession(session *models.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionContextKey, session)
		c.Next()
	}
}

var (
	spinach = models.Product{ID: uuid.MustParse("8a1f0c1e-5d7b-4f0e-9a43-1c2d3e4f5a01"), Name: "Bayam Segar", Category: models.CategoryVegetables, Price: 5000, InStock: true}
	pepper  = models.Product{ID: uuid.MustParse("8a1f0c1e-5d7b-4f0e-9a43-1c2d3e4f5a04"), Name: "Lada Hitam", Category: models.CategorySpices, Price: 3000, InStock: true}
)
