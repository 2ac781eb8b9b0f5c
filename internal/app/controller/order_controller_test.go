package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/internal/app/service"
	"github.com/scentscape/scentscape-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderControllerTest(t *testing.T) (*OrderController, *gin.Engine, *gorm.DB, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	orderRepo := repository.NewOrderRepository(testDB)
	cartRepo := repository.NewCartRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	orderService := service.NewOrderService(orderRepo, cartRepo, userRepo, nil)
	orderController := NewOrderController(orderService)

	user := &model.User{
		Email:        "shopper@example.com",
		PasswordHash: "hash",
		Name:         "Shopper",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	product := &model.Product{
		Name:     "Midnight Bloom",
		Price:    8999,
		Category: model.CategoryFloral,
	}
	testDB.Create(product)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return orderController, router, testDB, user, product
}

func TestOrderController_Checkout_Success(t *testing.T) {
	controller, router, testDB, user, product := setupOrderControllerTest(t)

	other := &model.Product{Name: "Amber Oud", Price: 12999, Category: model.CategoryOriental}
	testDB.Create(other)

	cartRepo := repository.NewCartRepository(testDB)
	cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: other.ID, Quantity: 1})

	router.POST("/orders/checkout", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.Checkout(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/checkout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	// One order per cart line
	assert.Equal(t, float64(2), response["count"])

	// Cart is now empty
	items, _ := cartRepo.FindByUserID(user.ID)
	assert.Len(t, items, 0)
}

func TestOrderController_Checkout_EmptyCart(t *testing.T) {
	controller, router, _, user, _ := setupOrderControllerTest(t)

	router.POST("/orders/checkout", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.Checkout(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/checkout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Your cart is empty", response["message"])
}

func TestOrderController_Checkout_Unauthorized(t *testing.T) {
	controller, router, _, _, _ := setupOrderControllerTest(t)

	router.POST("/orders/checkout", controller.Checkout)

	req := httptest.NewRequest(http.MethodPost, "/orders/checkout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderController_GetMyOrders(t *testing.T) {
	controller, router, testDB, user, product := setupOrderControllerTest(t)

	cartRepo := repository.NewCartRepository(testDB)
	cartRepo.Create(&model.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1})

	orderRepo := repository.NewOrderRepository(testDB)
	orderService := service.NewOrderService(orderRepo, cartRepo, repository.NewUserRepository(testDB), nil)
	_, err := orderService.Checkout(user.ID)
	require.NoError(t, err)

	router.GET("/orders", func(c *gin.Context) {
		setUserIDInContext(c, user.ID)
		controller.GetMyOrders(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(1), response["count"])

	orders := response["orders"].([]interface{})
	order := orders[0].(map[string]interface{})
	assert.Equal(t, "Midnight Bloom", order["product"])
	assert.Equal(t, "pending", order["status"])
}

func TestOrderController_GetOrders_FilterByStatus(t *testing.T) {
	controller, router, testDB, user, product := setupOrderControllerTest(t)

	orderRepo := repository.NewOrderRepository(testDB)
	pending := &model.Order{
		OrderNumber: "ORD-AAAA0001", UserID: user.ID, CustomerName: user.Name, Email: user.Email,
		ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price,
		Quantity: 1, Amount: product.Price, Status: model.OrderStatusPending,
	}
	require.NoError(t, orderRepo.Create(pending))
	shipped := &model.Order{
		OrderNumber: "ORD-AAAA0002", UserID: user.ID, CustomerName: user.Name, Email: user.Email,
		ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price,
		Quantity: 1, Amount: product.Price, Status: model.OrderStatusShipped,
	}
	require.NoError(t, orderRepo.Create(shipped))

	router.GET("/admin/orders", controller.GetOrders)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=shipped", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(1), response["count"])
}

func TestOrderController_GetOrders_UnknownStatus(t *testing.T) {
	controller, router, _, _, _ := setupOrderControllerTest(t)

	router.GET("/admin/orders", controller.GetOrders)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=cancelled", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Unknown order status", response["message"])
}

func TestOrderController_UpdateOrderStatus_Success(t *testing.T) {
	controller, router, testDB, user, product := setupOrderControllerTest(t)

	orderRepo := repository.NewOrderRepository(testDB)
	order := &model.Order{
		OrderNumber: "ORD-AAAA0001", UserID: user.ID, CustomerName: user.Name, Email: user.Email,
		ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price,
		Quantity: 1, Amount: product.Price, Status: model.OrderStatusPending,
	}
	require.NoError(t, orderRepo.Create(order))

	router.PUT("/admin/orders/:id/status", controller.UpdateOrderStatus)

	reqBody := UpdateOrderStatusRequest{Status: "shipped"}
	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/1/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Order status updated", response["message"])

	found, err := orderRepo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, found.Status)
}

func TestOrderController_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	controller, router, testDB, user, product := setupOrderControllerTest(t)

	orderRepo := repository.NewOrderRepository(testDB)
	order := &model.Order{
		OrderNumber: "ORD-AAAA0001", UserID: user.ID, CustomerName: user.Name, Email: user.Email,
		ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price,
		Quantity: 1, Amount: product.Price, Status: model.OrderStatusPending,
	}
	require.NoError(t, orderRepo.Create(order))

	router.PUT("/admin/orders/:id/status", controller.UpdateOrderStatus)

	reqBody := UpdateOrderStatusRequest{Status: "cancelled"}
	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/1/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderController_UpdateOrderStatus_NotFound(t *testing.T) {
	controller, router, _, _, _ := setupOrderControllerTest(t)

	router.PUT("/admin/orders/:id/status", controller.UpdateOrderStatus)

	reqBody := UpdateOrderStatusRequest{Status: "shipped"}
	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/9999/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Order not found", response["message"])
}

func TestOrderController_UpdateOrderStatus_InvalidID(t *testing.T) {
	controller, router, _, _, _ := setupOrderControllerTest(t)

	router.PUT("/admin/orders/:id/status", controller.UpdateOrderStatus)

	reqBody := UpdateOrderStatusRequest{Status: "shipped"}
	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/invalid/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Invalid order ID", response["message"])
}
