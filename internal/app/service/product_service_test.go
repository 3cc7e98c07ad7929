package service

import (
	"testing"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (ProductService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	return NewProductService(productRepo), testDB
}

func TestProductService_ListProducts(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	require.NoError(t, testDB.Create(&model.Product{
		Name: "Black Hoodie", Price: 35.00, Stock: 25, Category: "hoodies",
	}).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Men Pant", Price: 60.00, Stock: 30, Category: "pants",
	}).Error)

	products, err := productService.ListProducts(repository.ProductFilter{})
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = productService.ListProducts(repository.ProductFilter{Category: "pants"})
	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Men Pant", products[0].Name)
}

func TestProductService_GetFeaturedProducts(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	require.NoError(t, testDB.Create(&model.Product{
		Name: "Classic Tee", Price: 55.00, Stock: 50, IsFeatured: true,
	}).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Black Hoodie", Price: 35.00, Stock: 25,
	}).Error)

	products, err := productService.GetFeaturedProducts()
	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Classic Tee", products[0].Name)
}

func TestProductService_GetProductByID(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product := &model.Product{Name: "Black Hoodie", Price: 35.00, Stock: 25}
	require.NoError(t, testDB.Create(product).Error)

	found, err := productService.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Black Hoodie", found.Name)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	_, err := productService.GetProductByID(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
