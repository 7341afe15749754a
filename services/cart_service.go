package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/common/logger"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/repository"
)

// CartService applies ledger operations to a session's stored cart.
type CartService interface {
	Get(ctx context.Context, session *models.Session) (models.Ledger, error)
	AddItem(ctx context.Context, session *models.Session, productID uuid.UUID, quantity int) (models.Ledger, error)
	UpdateQuantity(ctx context.Context, session *models.Session, productID uuid.UUID, quantity int) (models.Ledger, error)
	RemoveItem(ctx context.Context, session *models.Session, productID uuid.UUID) (models.Ledger, error)
}

type cartServiceImpl struct {
	store   repository.SessionStore
	catalog CatalogService
	logger  *zap.Logger
}

func NewCartService(store repository.SessionStore, catalog CatalogService, logger *zap.Logger) CartService {
	return &cartServiceImpl{store: store, catalog: catalog, logger: logger}
}

func (s *cartServiceImpl) Get(ctx context.Context, session *models.Session) (models.Ledger, error) {
	if !session.Identified() {
		return models.Ledger{}, apperrors.ErrNotIdentified
	}
	return s.load(ctx, session.ID)
}

// AddItem adds quantity units of an in-stock catalog product. Non-positive
// quantities are rejected here, before the ledger sees them.
func (s *cartServiceImpl) AddItem(ctx context.Context, session *models.Session, productID uuid.UUID, quantity int) (models.Ledger, error) {
	if !session.Identified() {
		return models.Ledger{}, apperrors.ErrNotIdentified
	}
	if quantity < 1 {
		return models.Ledger{}, apperrors.FieldErrors{"quantity": "Quantity must be at least 1"}
	}
	if quantity > models.MaxQuantity {
		return models.Ledger{}, quantityTooLarge()
	}

	product, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return models.Ledger{}, err
	}
	if !product.InStock {
		return models.Ledger{}, apperrors.ErrOutOfStock
	}

	return s.apply(ctx, session.ID, func(l models.Ledger) (models.Ledger, error) {
		if !l.CanAdd(product.ID, quantity) {
			return l, quantityTooLarge()
		}
		return l.Add(*product, quantity), nil
	})
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, session *models.Session, productID uuid.UUID, quantity int) (models.Ledger, error) {
	if !session.Identified() {
		return models.Ledger{}, apperrors.ErrNotIdentified
	}
	if quantity > models.MaxQuantity {
		return models.Ledger{}, quantityTooLarge()
	}
	return s.apply(ctx, session.ID, func(l models.Ledger) (models.Ledger, error) {
		return l.UpdateQuantity(productID, quantity), nil
	})
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, session *models.Session, productID uuid.UUID) (models.Ledger, error) {
	if !session.Identified() {
		return models.Ledger{}, apperrors.ErrNotIdentified
	}
	return s.apply(ctx, session.ID, func(l models.Ledger) (models.Ledger, error) {
		return l.Remove(productID), nil
	})
}

func (s *cartServiceImpl) apply(ctx context.Context, sessionID string, op func(models.Ledger) (models.Ledger, error)) (models.Ledger, error) {
	current, err := s.load(ctx, sessionID)
	if err != nil {
		return models.Ledger{}, err
	}

	next, err := op(current)
	if err != nil {
		return models.Ledger{}, err
	}
	if err := s.store.SaveCart(ctx, sessionID, next); err != nil {
		logger.WithRequest(ctx, s.logger).Error("Failed to save cart", zap.String("session_id", sessionID), zap.Error(err))
		return models.Ledger{}, apperrors.Wrap(apperrors.ErrSessionStorage, err)
	}
	return next, nil
}

func (s *cartServiceImpl) load(ctx context.Context, sessionID string) (models.Ledger, error) {
	ledger, err := s.store.LoadCart(ctx, sessionID)
	if errors.Is(err, repository.ErrCorruptCart) {
		logger.WithRequest(ctx, s.logger).Warn("Discarding unreadable cart", zap.String("session_id", sessionID), zap.Error(err))
		return models.Ledger{}, nil
	}
	if err != nil {
		logger.WithRequest(ctx, s.logger).Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return models.Ledger{}, apperrors.Wrap(apperrors.ErrSessionStorage, err)
	}
	return ledger, nil
}

func quantityTooLarge() apperrors.FieldErrors {
	return apperrors.FieldErrors{"quantity": fmt.Sprintf("Quantity must be at most %d per product", models.MaxQuantity)}
}
