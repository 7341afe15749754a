package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

func newCheckoutRouter(svc *MockCheckoutService, session *models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cc := NewCheckoutController(svc, currency.Default())

	router := gin.New()
	router.Use(withSession(session))
	router.POST("/checkout", cc.Checkout)
	return router
}

func TestCheckoutController(t *testing.T) {
	session := &models.Session{ID: "s1", Identity: models.Buyer{Name: "Ana", Address: "Jl. Mawar 1"}}

	t.Run("Success - 200 OK", func(t *testing.T) {
		svc := new(MockCheckoutService)
		svc.On("Checkout", mock.Anything, session).Return(services.CheckoutResult{
			Message: models.OrderMessage{Text: "Hello", Encoded: "Hello", Total: 13000},
			Channel: "whatsapp",
			Link:    "https://api.whatsapp.com/send?text=Hello",
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
		recorder := httptest.NewRecorder()
		newCheckoutRouter(svc, session).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{
			"message": "Hello",
			"encoded": "Hello",
			"total": 13000,
			"total_display": "Rp\u00a013.000",
			"channel": "whatsapp",
			"link": "https://api.whatsapp.com/send?text=Hello"
		}`, recorder.Body.String())
	})

	t.Run("Failure - Empty Cart - 409 Conflict", func(t *testing.T) {
		svc := new(MockCheckoutService)
		svc.On("Checkout", mock.Anything, session).Return(services.CheckoutResult{}, apperrors.ErrCheckoutRefused).Once()

		req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
		recorder := httptest.NewRecorder()
		newCheckoutRouter(svc, session).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}
