package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/middleware"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

type CheckoutController struct {
	checkout  services.CheckoutService
	formatter *currency.Formatter
}

func NewCheckoutController(checkout services.CheckoutService, formatter *currency.Formatter) *CheckoutController {
	return &CheckoutController{checkout: checkout, formatter: formatter}
}

// Checkout handles POST /checkout (buyers only).
func (cc *CheckoutController) Checkout(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotIdentified)
		return
	}

	result, err := cc.checkout.Checkout(ctx.Request.Context(), session)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       result.Message.Text,
		"encoded":       result.Message.Encoded,
		"total":         result.Message.Total,
		"total_display": cc.formatter.Format(result.Message.Total),
		"channel":       result.Channel,
		"link":          result.Link,
	})
}
