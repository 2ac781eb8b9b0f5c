package service

import (
	"testing"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupWishlistServiceTest(t *testing.T) (WishlistService, *model.User, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	wishlistRepo := repository.NewWishlistRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	wishlistService := NewWishlistService(wishlistRepo, productRepo)

	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hash",
		Name:         "Test User",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	product := &model.Product{
		Name:     "Velvet Rose",
		Price:    9499,
		Category: model.CategoryFloral,
	}
	testDB.Create(product)

	return wishlistService, user, product, testDB
}

func TestWishlistService_AddToWishlist(t *testing.T) {
	wishlistService, user, product, _ := setupWishlistServiceTest(t)

	item, err := wishlistService.AddToWishlist(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, item.ProductID)

	items, err := wishlistService.GetUserWishlist(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWishlistService_AddToWishlist_Idempotent(t *testing.T) {
	wishlistService, user, product, _ := setupWishlistServiceTest(t)

	first, err := wishlistService.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)

	// Liking again returns the same entry and creates no duplicate
	second, err := wishlistService.AddToWishlist(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	items, _ := wishlistService.GetUserWishlist(user.ID)
	assert.Len(t, items, 1)
}

func TestWishlistService_AddToWishlist_ProductNotFound(t *testing.T) {
	wishlistService, user, _, _ := setupWishlistServiceTest(t)

	_, err := wishlistService.AddToWishlist(user.ID, 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistService_RemoveFromWishlist(t *testing.T) {
	wishlistService, user, product, _ := setupWishlistServiceTest(t)

	_, err := wishlistService.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)

	err = wishlistService.RemoveFromWishlist(user.ID, product.ID)
	assert.NoError(t, err)

	items, _ := wishlistService.GetUserWishlist(user.ID)
	assert.Len(t, items, 0)
}

func TestWishlistService_RemoveFromWishlist_NotFound(t *testing.T) {
	wishlistService, user, product, _ := setupWishlistServiceTest(t)

	err := wishlistService.RemoveFromWishlist(user.ID, product.ID)
	assert.ErrorIs(t, err, ErrWishlistItemNotFound)
}

func TestWishlistService_WishlistsAreSeparatePerUser(t *testing.T) {
	wishlistService, user, product, testDB := setupWishlistServiceTest(t)

	other := &model.User{
		Email:        "other@example.com",
		PasswordHash: "hash",
		Name:         "Other User",
		Role:         model.RoleUser,
	}
	testDB.Create(other)

	_, err := wishlistService.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)

	items, err := wishlistService.GetUserWishlist(other.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 0)
}
