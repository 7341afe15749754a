package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/common/logger"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/repository"
)

// FilterProducts keeps the products whose name or description contains
// search, ignoring case, and whose category matches (CategoryAll matches
// any). The input slice is not modified.
func FilterProducts(products []models.Product, search string, category models.Category) []models.Product {
	needle := strings.ToLower(search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
		matchesCategory := category == models.CategoryAll || p.Category == category
		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}
	return out
}

// CategoryOption is one entry of the category filter.
type CategoryOption struct {
	ID    models.Category `json:"id"`
	Label string          `json:"label"`
}

// Categories returns the filter options, "all" first.
func Categories() []CategoryOption {
	options := make([]CategoryOption, 0, len(models.Categories)+1)
	options = append(options, CategoryOption{ID: models.CategoryAll, Label: models.CategoryLabels[models.CategoryAll]})
	for _, c := range models.Categories {
		options = append(options, CategoryOption{ID: c, Label: models.CategoryLabels[c]})
	}
	return options
}

// CatalogService serves the buyer-facing catalog.
type CatalogService interface {
	// Browse returns the filtered catalog. A failing store yields an empty
	// catalog, not an error; only an unknown category is rejected.
	Browse(ctx context.Context, search string, category models.Category) ([]models.Product, error)
	FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type catalogServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repo: repo, logger: logger}
}

func (s *catalogServiceImpl) Browse(ctx context.Context, search string, category models.Category) ([]models.Product, error) {
	if category == "" {
		category = models.CategoryAll
	}
	if category != models.CategoryAll && !category.Valid() {
		return nil, apperrors.FieldErrors{"category": "Unknown category"}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.WithRequest(ctx, s.logger).Error("Error fetching products", zap.Error(err))
		return []models.Product{}, nil
	}
	return FilterProducts(products, search, category), nil
}

func (s *catalogServiceImpl) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProductNotFound
	}
	if err != nil {
		logger.WithRequest(ctx, s.logger).Error("Error fetching product", zap.String("product_id", id.String()), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}
	return product, nil
}

// AdminCatalogService maintains the catalog on behalf of administrators.
// Nothing is cached; callers re-list after a change to see the stored state.
type AdminCatalogService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminCatalogServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewAdminCatalogService(repo repository.ProductRepository, logger *zap.Logger) AdminCatalogService {
	return &adminCatalogServiceImpl{repo: repo, logger: logger}
}

func (s *adminCatalogServiceImpl) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.FindAllNewestFirst(ctx)
	if err != nil {
		logger.WithRequest(ctx, s.logger).Error("Error fetching products", zap.Error(err))
		return []models.Product{}, nil
	}
	return products, nil
}

func (s *adminCatalogServiceImpl) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product := input.Product()
	if err := product.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, &product); err != nil {
		logger.WithRequest(ctx, s.logger).Error("Error saving product", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrSaveProduct, err)
	}

	logger.WithRequest(ctx, s.logger).Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)
	return &product, nil
}

func (s *adminCatalogServiceImpl) Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) error {
	updates := patch.Updates()
	if len(updates) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, errors.New("no fields to update"))
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		logger.WithRequest(ctx, s.logger).Error("Error saving product", zap.String("product_id", id.String()), zap.Error(err))
		return apperrors.Wrap(apperrors.ErrSaveProduct, err)
	}

	logger.WithRequest(ctx, s.logger).Info("Product updated", zap.String("product_id", id.String()))
	return nil
}

func (s *adminCatalogServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		logger.WithRequest(ctx, s.logger).Error("Error deleting product", zap.String("product_id", id.String()), zap.Error(err))
		return apperrors.Wrap(apperrors.ErrDeleteProduct, err)
	}

	logger.WithRequest(ctx, s.logger).Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
