package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/middleware"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

// SessionController handles the identity forms.
type SessionController struct {
	sessions services.SessionService
}

func NewSessionController(sessions services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// GetSession handles GET /session.
func (sc *SessionController) GetSession(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	ctx.JSON(http.StatusOK, session.View())
}

// IdentifyBuyer handles POST /session/buyer.
func (sc *SessionController) IdentifyBuyer(ctx *gin.Context) {
	var form models.BuyerForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		respondBindError(ctx, err)
		return
	}

	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	if _, err := sc.sessions.IdentifyBuyer(ctx.Request.Context(), session, form); err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, session.View())
}

// IdentifyAdmin handles POST /session/admin.
func (sc *SessionController) IdentifyAdmin(ctx *gin.Context) {
	var form models.AdminForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		respondBindError(ctx, err)
		return
	}

	session, err := middleware.GetSession(ctx)
	if err != nil {
		apperrors.Respond(ctx, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	if _, err := sc.sessions.IdentifyAdmin(ctx.Request.Context(), session, form); err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, session.View())
}
