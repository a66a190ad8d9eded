// controller/product_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/andreyques41/lyfter-store/cache"
	"github.com/andreyques41/lyfter-store/controller"
	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/test/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logDir, err := os.MkdirTemp("", "controller-test-logs")
	if err != nil {
		panic(err)
	}
	logger.InitLogger(logDir)
	code := m.Run()
	logger.Sync()
	os.RemoveAll(logDir)
	os.Exit(code)
}

func setupProductRouter(svc *mock.MockProductService) *gin.Engine {
	router := gin.New()
	api := router.Group("/")
	controller.NewProductController(svc).RegisterRoutes(api)
	return router
}

func TestProductController(t *testing.T) {
	mockProductService := new(mock.MockProductService)
	router := setupProductRouter(mockProductService)

	t.Run("CreateProduct_Success", func(t *testing.T) {
		mockProductService.
			On("CreateProduct", tmock.Anything, tmock.Anything, tmock.Anything).
			Return(&model.Product{ID: "p1", Name: "Keyboard"}, nil).Once()

		body := strings.NewReader(`{"name":"Keyboard","price":49.99,"stock":10}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/products", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created model.Product
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.Equal(t, "p1", created.ID)
	})

	t.Run("CreateProduct_Failure_Conflict", func(t *testing.T) {
		mockProductService.
			On("CreateProduct", tmock.Anything, tmock.Anything, tmock.Anything).
			Return(nil, lyfter_errors.ErrProductConflict).Once()

		body := strings.NewReader(`{"name":"Keyboard","price":49.99,"stock":10}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/products", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("UpdateProduct_Success", func(t *testing.T) {
		mockProductService.
			On("UpdateProduct", tmock.Anything, tmock.Anything, tmock.Anything).
			Return(&model.Product{ID: "p1", Name: "Updated Keyboard"}, nil).Once()

		body := strings.NewReader(`{"name":"Updated Keyboard","price":59.99,"stock":5}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/products/p1", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateProduct_Failure_NotFound", func(t *testing.T) {
		mockProductService.
			On("UpdateProduct", tmock.Anything, tmock.Anything, tmock.Anything).
			Return(nil, lyfter_errors.ErrProductNotFound).Once()

		body := strings.NewReader(`{"name":"Ghost","price":1,"stock":1}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/products/missing", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteProduct_Success", func(t *testing.T) {
		mockProductService.
			On("DeleteProduct", tmock.Anything, "p1", tmock.Anything).
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/products/p1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("DeleteProduct_Failure_NotFound", func(t *testing.T) {
		mockProductService.
			On("DeleteProduct", tmock.Anything, "missing", tmock.Anything).
			Return(lyfter_errors.ErrProductNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/products/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetProduct_Success", func(t *testing.T) {
		mockProductService.
			On("GetProduct", tmock.Anything, "p1").
			Return(&model.Product{ID: "p1", Name: "Keyboard"}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/products/p1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.Product
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "Keyboard", got.Name)
	})

	t.Run("GetProduct_Failure_NotFound", func(t *testing.T) {
		mockProductService.
			On("GetProduct", tmock.Anything, "missing").
			Return(nil, lyfter_errors.ErrProductNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/products/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetProduct_Failure_BadIdentifier", func(t *testing.T) {
		mockProductService.
			On("GetProduct", tmock.Anything, "a:b").
			Return(nil, cache.ErrInvalidIdentifier).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/products/a:b", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListProducts_Success", func(t *testing.T) {
		products := []model.Product{
			{ID: "p1", Name: "Keyboard"},
			{ID: "p2", Name: "Mouse"},
		}

		mockProductService.
			On("ListProducts", tmock.Anything, 20, 0).
			Return(products, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/products", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []model.Product
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("ListProducts_CustomPagination", func(t *testing.T) {
		mockProductService.
			On("ListProducts", tmock.Anything, 5, 10).
			Return([]model.Product{}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/products?limit=5&offset=10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SearchProducts_Success", func(t *testing.T) {
		mockProductService.
			On("SearchProducts", tmock.Anything, tmock.Anything).
			Return([]model.Product{{ID: "p1", Name: "Keyboard"}}, nil).Once()

		body := strings.NewReader(`{"name":"Keyboard"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/products/search", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	mockProductService.AssertExpectations(t)
}
