package repository

import (
	"errors"
	"testing"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/db"
	"github.com/scentscape/scentscape-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*gorm.DB, OrderRepository, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	user := &model.User{Email: "shopper@example.com", PasswordHash: "hashed", Name: "Shopper"}
	require.NoError(t, testDB.Create(user).Error)

	product := &model.Product{Name: "Midnight Bloom", Price: 8999, Category: model.CategoryFloral}
	require.NoError(t, testDB.Create(product).Error)

	repo := NewOrderRepository(testDB)
	return testDB, repo, user, product
}

func newTestOrder(user *model.User, product *model.Product, quantity int) *model.Order {
	return &model.Order{
		OrderNumber:  util.GenerateOrderNumber(),
		UserID:       user.ID,
		CustomerName: user.Name,
		Email:        user.Email,
		ProductID:    product.ID,
		ProductName:  product.Name,
		UnitPrice:    product.Price,
		Quantity:     quantity,
		Amount:       product.Price * int64(quantity),
		Status:       model.OrderStatusPending,
	}
}

func TestOrderRepository_Create(t *testing.T) {
	testDB, repo, user, product := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	order := newTestOrder(user, product, 2)

	err := repo.Create(order)
	assert.NoError(t, err)
	assert.NotZero(t, order.ID)
}

func TestOrderRepository_FindAll_FilterByStatus(t *testing.T) {
	testDB, repo, user, product := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	pending := newTestOrder(user, product, 1)
	require.NoError(t, repo.Create(pending))

	shipped := newTestOrder(user, product, 1)
	shipped.Status = model.OrderStatusShipped
	require.NoError(t, repo.Create(shipped))

	status := model.OrderStatusShipped
	found, err := repo.FindAll(OrderFilter{Status: &status})
	assert.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, shipped.OrderNumber, found[0].OrderNumber)

	// Without a filter both come back
	all, err := repo.FindAll(OrderFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	testDB, repo, user, product := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	other := &model.User{Email: "other@example.com", PasswordHash: "hashed", Name: "Other"}
	require.NoError(t, testDB.Create(other).Error)

	require.NoError(t, repo.Create(newTestOrder(user, product, 1)))
	require.NoError(t, repo.Create(newTestOrder(other, product, 1)))

	found, err := repo.FindByUserID(user.ID)
	assert.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, user.ID, found[0].UserID)
}

func TestOrderRepository_Transaction_RollsBackOnError(t *testing.T) {
	testDB, repo, user, product := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	txErr := errors.New("checkout failed")
	err := repo.Transaction(func(tx *gorm.DB) error {
		if err := repo.CreateWithTx(tx, newTestOrder(user, product, 1)); err != nil {
			return err
		}
		return txErr
	})
	assert.ErrorIs(t, err, txErr)

	// Nothing committed
	found, err := repo.FindAll(OrderFilter{})
	assert.NoError(t, err)
	assert.Len(t, found, 0)
}

func TestOrderRepository_Update(t *testing.T) {
	testDB, repo, user, product := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	order := newTestOrder(user, product, 1)
	require.NoError(t, repo.Create(order))

	order.Status = model.OrderStatusDelivered
	err := repo.Update(order)
	assert.NoError(t, err)

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, found.Status)
}
