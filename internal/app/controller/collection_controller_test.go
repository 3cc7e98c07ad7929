package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/internal/app/service"
	"github.com/fara3/fara3-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCollectionControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	collectionRepo := repository.NewCollectionRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	collectionService := service.NewCollectionService(collectionRepo, productRepo)
	collectionController := NewCollectionController(collectionService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/collections", collectionController.GetCollections)
	router.GET("/collections/:name", collectionController.GetCollectionByName)

	return router, testDB
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCollectionController_GetCollections(t *testing.T) {
	router, testDB := setupCollectionControllerTest(t)

	hoodies := model.Collection{Name: "minimalist", DisplayName: "HOODIES", Description: "Clean lines", ImageURL: "hoodie.jpg"}
	require.NoError(t, testDB.Create(&hoodies).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Black Hoodie", Price: 35.00, Stock: 25, CollectionID: &hoodies.ID,
	}).Error)

	w := getJSON(t, router, "/collections")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	collections := response["collections"].([]interface{})
	require.Len(t, collections, 1)

	first := collections[0].(map[string]interface{})
	assert.Equal(t, "minimalist", first["name"])
	assert.Equal(t, "HOODIES", first["display_name"])
	assert.Equal(t, float64(1), first["product_count"])
}

func TestCollectionController_GetCollections_Empty(t *testing.T) {
	router, _ := setupCollectionControllerTest(t)

	w := getJSON(t, router, "/collections")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["collections"], 0)
}

func TestCollectionController_GetCollectionByName(t *testing.T) {
	router, testDB := setupCollectionControllerTest(t)

	hoodies := model.Collection{Name: "minimalist", DisplayName: "HOODIES"}
	require.NoError(t, testDB.Create(&hoodies).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Black Hoodie", Description: "Clean minimalist design",
		Price: 35.00, Stock: 25, CollectionID: &hoodies.ID,
	}).Error)

	w := getJSON(t, router, "/collections/minimalist")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	collection := response["collection"].(map[string]interface{})
	assert.Equal(t, "minimalist", collection["name"])
	assert.Equal(t, "HOODIES", collection["display_name"])

	products := response["products"].([]interface{})
	require.Len(t, products, 1)
	product := products[0].(map[string]interface{})
	assert.Equal(t, "Black Hoodie", product["name"])
	assert.Equal(t, 35.00, product["price"])
	assert.Equal(t, float64(25), product["stock"])
}

func TestCollectionController_GetCollectionByName_NotFound(t *testing.T) {
	router, _ := setupCollectionControllerTest(t)

	w := getJSON(t, router, "/collections/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Collection not found", response["error"])
}
