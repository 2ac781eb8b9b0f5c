package service

import (
	"testing"
	"time"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (CartService, *model.User, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	cartService := NewCartService(cartRepo, productRepo)

	// Create test user
	user := &model.User{
		Email:        "test@example.com",
		PasswordHash: "hash",
		Name:         "Test User",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	// Create test product
	product := &model.Product{
		Name:     "Midnight Bloom",
		Price:    2499,
		Category: model.CategoryFloral,
	}
	testDB.Create(product)

	return cartService, user, product, testDB
}

func TestCartService_GetUserCart(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	// Initially empty
	cart, err := cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 0)
	assert.Equal(t, int64(0), cart.Total)

	// Add item
	_, err = cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	// Get cart
	cart, err = cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, int64(2499), cart.Total)
}

func TestCartService_AddToCart_NewItem(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	item, err := cartService.AddToCart(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_AddToCart_ProductNotFound(t *testing.T) {
	cartService, user, _, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartService_AddToCart_ExistingItemIncrements(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	// Adding again bumps quantity instead of creating a new line
	item, err := cartService.AddToCart(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	cart, _ := cartService.GetUserCart(user.ID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_IncreaseQuantity(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	item, err := cartService.IncreaseQuantity(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_IncreaseQuantity_NotInCart(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	_, err := cartService.IncreaseQuantity(user.ID, product.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_DecreaseQuantity(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)
	_, err = cartService.IncreaseQuantity(user.ID, product.ID)
	require.NoError(t, err)

	item, err := cartService.DecreaseQuantity(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_DecreaseQuantity_FloorsAtOne(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	// Quantity is 1; decreasing is a no-op, not a removal
	item, err := cartService.DecreaseQuantity(user.ID, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	cart, _ := cartService.GetUserCart(user.ID)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	err = cartService.RemoveFromCart(user.ID, product.ID)
	assert.NoError(t, err)

	cart, _ := cartService.GetUserCart(user.ID)
	assert.Len(t, cart.Items, 0)
}

func TestCartService_RemoveFromCart_NotFound(t *testing.T) {
	cartService, user, product, _ := setupCartServiceTest(t)

	err := cartService.RemoveFromCart(user.ID, product.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	cartService, user, product, testDB := setupCartServiceTest(t)

	second := &model.Product{
		Name:     "Amber Oud",
		Price:    12999,
		Category: model.CategoryOriental,
	}
	testDB.Create(second)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)
	_, err = cartService.AddToCart(user.ID, second.ID)
	require.NoError(t, err)

	err = cartService.ClearCart(user.ID)
	assert.NoError(t, err)

	cart, _ := cartService.GetUserCart(user.ID)
	assert.Len(t, cart.Items, 0)
}

func TestCartService_CartTotal(t *testing.T) {
	cartService, user, product, testDB := setupCartServiceTest(t)

	second := &model.Product{
		Name:     "Amber Oud",
		Price:    12999,
		Category: model.CategoryOriental,
	}
	testDB.Create(second)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)
	_, err = cartService.IncreaseQuantity(user.ID, product.ID)
	require.NoError(t, err)
	_, err = cartService.AddToCart(user.ID, second.ID)
	require.NoError(t, err)

	cart, err := cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2499*2+12999), cart.Total)
}

func TestCartService_PurgeStale(t *testing.T) {
	cartService, user, product, testDB := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	// Age the cart line past the cutoff
	old := time.Now().Add(-60 * 24 * time.Hour)
	err = testDB.Model(&model.CartItem{}).
		Where("user_id = ?", user.ID).
		Update("updated_at", old).Error
	require.NoError(t, err)

	deleted, err := cartService.PurgeStale(30 * 24 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	cart, _ := cartService.GetUserCart(user.ID)
	assert.Len(t, cart.Items, 0)
}
