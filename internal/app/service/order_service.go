package service

import (
	"errors"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/internal/ws"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"github.com/scentscape/scentscape-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type OrderService interface {
	Checkout(userID uint) ([]model.Order, error)
	GetOrders(filter repository.OrderFilter) ([]model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
	GetOrderByID(id uint) (*model.Order, error)
	UpdateOrderStatus(orderID uint, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
	hub       *ws.Hub
}

// NewOrderService builds the order service. The hub may be nil when no
// live feed is wanted, e.g. in tests.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		hub:       hub,
	}
}

// Checkout converts every cart line into its own order and empties the
// cart, all in one transaction. Each order snapshots the product name
// and unit price so later catalog edits leave history alone.
func (s *orderService) Checkout(userID uint) ([]model.Order, error) {
	logger.Info("Processing checkout", map[string]interface{}{
		"user_id": userID,
	})

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cartItems, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to load cart for checkout", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if len(cartItems) == 0 {
		logger.Warn("Checkout rejected: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrCartEmpty
	}

	orders := make([]model.Order, 0, len(cartItems))
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		for _, item := range cartItems {
			order := model.Order{
				OrderNumber:  util.GenerateOrderNumber(),
				UserID:       userID,
				CustomerName: user.Name,
				Email:        user.Email,
				ProductID:    item.ProductID,
				ProductName:  item.Product.Name,
				UnitPrice:    item.Product.Price,
				Quantity:     item.Quantity,
				Amount:       item.Product.Price * int64(item.Quantity),
				Status:       model.OrderStatusPending,
			}
			if err := s.orderRepo.CreateWithTx(tx, &order); err != nil {
				return err
			}
			orders = append(orders, order)
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error; err != nil {
			logger.Error("Failed to clear cart during checkout", err, map[string]interface{}{
				"user_id": userID,
			})
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error("Checkout transaction failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if s.hub != nil {
		for i := range orders {
			s.hub.Broadcast(ws.EventOrderCreated, orders[i])
		}
	}

	logger.Info("Checkout completed successfully", map[string]interface{}{
		"user_id":     userID,
		"order_count": len(orders),
	})
	return orders, nil
}

func (s *orderService) GetOrders(filter repository.OrderFilter) ([]model.Order, error) {
	logger.Debug("Fetching orders", map[string]interface{}{
		"status": filter.Status,
	})

	orders, err := s.orderRepo.FindAll(filter)
	if err != nil {
		logger.Error("Failed to fetch orders", err)
		return nil, err
	}

	logger.Info("Orders fetched successfully", map[string]interface{}{
		"count": len(orders),
	})
	return orders, nil
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	logger.Debug("Fetching user orders", map[string]interface{}{
		"user_id": userID,
	})

	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	logger.Debug("Fetching order", map[string]interface{}{
		"order_id": id,
	})

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus overwrites the status with any of the four valid
// states. The back office may move orders backwards as well as
// forwards, so there is no transition graph to enforce.
func (s *orderService) UpdateOrderStatus(orderID uint, status model.OrderStatus) (*model.Order, error) {
	logger.Info("Updating order status", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})

	if !model.ValidOrderStatus(status) {
		logger.Warn("Order status update rejected: invalid status", map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update status: order not found", map[string]interface{}{
				"order_id": orderID,
			})
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(ws.EventOrderStatusUpdated, order)
	}

	logger.Info("Order status updated successfully", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       order.Status,
	})
	return order, nil
}
