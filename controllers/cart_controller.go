package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/middleware"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartController exposes the session's cart.
type CartController struct {
	carts     services.CartService
	formatter *currency.Formatter
}

func NewCartController(carts services.CartService, formatter *currency.Formatter) *CartController {
	return &CartController{carts: carts, formatter: formatter}
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotIdentified)
		return
	}

	ledger, err := cc.carts.Get(ctx.Request.Context(), session)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCartView(cc.formatter, ledger))
}

// AddItem handles POST /cart/items. Quantity defaults to one.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		apperrors.Respond(ctx, apperrors.FieldErrors{"product_id": "Invalid product ID"})
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotIdentified)
		return
	}

	ledger, err := cc.carts.AddItem(ctx.Request.Context(), session, productID, quantity)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCartView(cc.formatter, ledger))
}

// UpdateQuantity handles PATCH /cart/items/:product_id. A quantity below one
// leaves the cart unchanged.
func (cc *CartController) UpdateQuantity(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.FieldErrors{"product_id": "Invalid product ID"})
		return
	}

	var req updateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotIdentified)
		return
	}

	ledger, err := cc.carts.UpdateQuantity(ctx.Request.Context(), session, productID, req.Quantity)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCartView(cc.formatter, ledger))
}

// RemoveItem handles DELETE /cart/items/:product_id.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.FieldErrors{"product_id": "Invalid product ID"})
		return
	}

	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotIdentified)
		return
	}

	ledger, err := cc.carts.RemoveItem(ctx.Request.Context(), session, productID)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCartView(cc.formatter, ledger))
}
