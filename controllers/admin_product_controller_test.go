package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/wiliafri0-dotcom/sayursegar02/common/errors"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/models"
)

func newAdminProductRouter(svc *MockAdminCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pc := NewAdminProductController(svc, currency.Default())

	router := gin.New()
	router.GET("/admin/products", pc.ListProducts)
	router.POST("/admin/products", pc.CreateProduct)
	router.PUT("/admin/products/:id", pc.UpdateProduct)
	router.DELETE("/admin/products/:id", pc.DeleteProduct)
	return router
}

func TestAdminProductController_CreateProduct(t *testing.T) {
	t.Run("Success - 201 Created", func(t *testing.T) {
		svc := new(MockAdminCatalogService)
		created := spinach
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in models.ProductInput) bool {
			return in.Name == "Bayam Segar" && in.Price == 5000 && in.InStock == nil
		})).Return(&created, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/admin/products",
			bytes.NewBufferString(`{"name":"Bayam Segar","category":"vegetables","price":5000}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		newAdminProductRouter(svc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "\"price_display\":\"Rp\u00a05.000\"")
		svc.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Category - 400", func(t *testing.T) {
		svc := new(MockAdminCatalogService)

		req, _ := http.NewRequest(http.MethodPost, "/admin/products",
			bytes.NewBufferString(`{"name":"Apel","category":"fruit","price":5000}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		newAdminProductRouter(svc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"Validation error","fields":{"category":"Must be one of: vegetables, fish, frozen, spices"}}`, recorder.Body.String())
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Negative Price - 400", func(t *testing.T) {
		svc := new(MockAdminCatalogService)

		req, _ := http.NewRequest(http.MethodPost, "/admin/products",
			bytes.NewBufferString(`{"name":"Apel","category":"vegetables","price":-1}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		newAdminProductRouter(svc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Failure - Store Error - 500", func(t *testing.T) {
		svc := new(MockAdminCatalogService)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrSaveProduct).Once()

		req, _ := http.NewRequest(http.MethodPost, "/admin/products",
			bytes.NewBufferString(`{"name":"Bayam Segar","category":"vegetables","price":5000}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		newAdminProductRouter(svc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"error":"Failed to save product. Please try again."}`, recorder.Body.String())
	})
}

func TestAdminProductController_UpdateProduct(t *testing.T) {
	t.Run("Success - 200 OK", func(t *testing.T) {
		svc := new(MockAdminCatalogService)
		svc.On("Update", mock.Anything, spinach.ID, mock.MatchedBy(func(p models.ProductPatch) bool {
			return p.InStock != nil && !*p.InStock && p.Name == nil
		})).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodPut, "/admin/products/"+spinach.ID.String(), bytes.NewBufferString(`{"in_stock":false}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		newAdminProductRouter(svc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Failure - Not Found - 404", func(t *testing.T) {
		svc := new(MockAdminCatalogService)
		missing := uuid.New()
		svc.On("Update", mock.Anything, missing, mock.Anything).Return(apperrors.ErrProductNotFound).Once()

		req, _ := http.NewRequest(http.MethodPut, "/admin/products/"+missing.String(), bytes.NewBufferString(`{"price":1000}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		newAdminProductRouter(svc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Failure - Bad ID - 400", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPut, "/admin/products/123", bytes.NewBufferString(`{"price":1000}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		newAdminProductRouter(new(MockAdminCatalogService)).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAdminProductController_ListAndDelete(t *testing.T) {
	svc := new(MockAdminCatalogService)
	svc.On("List", mock.Anything).Return([]models.Product{pepper, spinach}, nil).Once()
	svc.On("Delete", mock.Anything, pepper.ID).Return(nil).Once()
	svc.On("Delete", mock.Anything, spinach.ID).Return(apperrors.ErrDeleteProduct).Once()
	router := newAdminProductRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/admin/products", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Lada Hitam")

	req, _ = http.NewRequest(http.MethodDelete, "/admin/products/"+pepper.ID.String(), nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	req, _ = http.NewRequest(http.MethodDelete, "/admin/products/"+spinach.ID.String(), nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to delete product")

	svc.AssertExpectations(t)
}
