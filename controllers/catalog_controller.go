package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

// CatalogController serves the storefront catalog.
type CatalogController struct {
	catalog   services.CatalogService
	formatter *currency.Formatter
}

func NewCatalogController(catalog services.CatalogService, formatter *currency.Formatter) *CatalogController {
	return &CatalogController{catalog: catalog, formatter: formatter}
}

// Browse handles GET /catalog?search=&category=.
func (cc *CatalogController) Browse(ctx *gin.Context) {
	search := ctx.Query("search")
	category := models.Category(ctx.DefaultQuery("category", string(models.CategoryAll)))

	products, err := cc.catalog.Browse(ctx.Request.Context(), search, category)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": productViews(cc.formatter, products),
		"count":    len(products),
	})
}

// Categories handles GET /catalog/categories.
func (cc *CatalogController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"categories": services.Categories()})
}
