package repository

import (
	"testing"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartRepoTest(t *testing.T) (CartRepository, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	user := &model.User{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret123",
		IsActive: true,
	}
	require.NoError(t, testDB.Create(user).Error)

	product := &model.Product{
		Name:  "Black Hoodie",
		Price: 35.00,
		Stock: 25,
	}
	require.NoError(t, testDB.Create(product).Error)

	return NewCartRepository(testDB), user, product
}

func TestCartRepository_CreateAndFindByUserID(t *testing.T) {
	repo, user, product := setupCartRepoTest(t)

	err := repo.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
	})
	assert.NoError(t, err)

	items, err := repo.FindByUserID(user.ID)
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// Product is preloaded for subtotal computation
	assert.Equal(t, "Black Hoodie", items[0].Product.Name)
	assert.Equal(t, 35.00, items[0].Product.Price)
}

func TestCartRepository_FindByUserAndProduct(t *testing.T) {
	repo, user, product := setupCartRepoTest(t)

	require.NoError(t, repo.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  3,
	}))

	item, err := repo.FindByUserAndProduct(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	_, err = repo.FindByUserAndProduct(user.ID, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartRepository_Update(t *testing.T) {
	repo, user, product := setupCartRepoTest(t)

	item := &model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, repo.Create(item))

	item.Quantity = 5
	assert.NoError(t, repo.Update(item))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Quantity)
}

func TestCartRepository_Delete(t *testing.T) {
	repo, user, product := setupCartRepoTest(t)

	item := &model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, repo.Create(item))

	assert.NoError(t, repo.Delete(item.ID))

	_, err := repo.FindByID(item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartRepository_DeleteByUserID(t *testing.T) {
	repo, user, product := setupCartRepoTest(t)

	require.NoError(t, repo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}))
	require.NoError(t, repo.Create(&model.CartItem{UserID: user.ID + 1, ProductID: product.ID, Quantity: 1}))

	assert.NoError(t, repo.DeleteByUserID(user.ID))

	items, err := repo.FindByUserID(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 0)

	// Other users' rows are untouched
	otherItems, err := repo.FindByUserID(user.ID + 1)
	assert.NoError(t, err)
	assert.Len(t, otherItems, 1)
}

func TestCartRepository_DeleteByUserID_EmptyCart(t *testing.T) {
	repo, user, _ := setupCartRepoTest(t)

	assert.NoError(t, repo.DeleteByUserID(user.ID))
}
