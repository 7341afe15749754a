package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

// AdminProductController handles catalog maintenance (admin only).
type AdminProductController struct {
	products  services.AdminCatalogService
	formatter *currency.Formatter
}

func NewAdminProductController(products services.AdminCatalogService, formatter *currency.Formatter) *AdminProductController {
	return &AdminProductController{products: products, formatter: formatter}
}

// ListProducts handles GET /admin/products, newest first.
func (pc *AdminProductController) ListProducts(ctx *gin.Context) {
	products, err := pc.products.List(ctx.Request.Context())
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": productViews(pc.formatter, products)})
}

// CreateProduct handles POST /admin/products.
func (pc *AdminProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	product, err := pc.products.Create(ctx.Request.Context(), input)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"product": productView{Product: *product, PriceDisplay: pc.formatter.Format(product.Price)}})
}

// UpdateProduct handles PUT /admin/products/:id. Only the fields present in
// the body change.
func (pc *AdminProductController) UpdateProduct(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var patch models.ProductPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := pc.products.Update(ctx.Request.Context(), id, patch); err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct handles DELETE /admin/products/:id.
func (pc *AdminProductController) DeleteProduct(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := pc.products.Delete(ctx.Request.Context(), id); err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
