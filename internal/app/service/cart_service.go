package service

import (
	"errors"
	"time"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)

// Cart is a user's cart with the running total, in minor units.
type Cart struct {
	Items []model.CartItem `json:"items"`
	Total int64            `json:"total"`
}

type CartService interface {
	GetUserCart(userID uint) (*Cart, error)
	AddToCart(userID, productID uint) (*model.CartItem, error)
	IncreaseQuantity(userID, productID uint) (*model.CartItem, error)
	DecreaseQuantity(userID, productID uint) (*model.CartItem, error)
	RemoveFromCart(userID, productID uint) error
	ClearCart(userID uint) error
	PurgeStale(olderThan time.Duration) (int64, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) GetUserCart(userID uint) (*Cart, error) {
	logger.Debug("Fetching user cart", map[string]interface{}{
		"user_id": userID,
	})

	cartItems, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	var total int64
	for _, item := range cartItems {
		total += item.Product.Price * int64(item.Quantity)
	}

	logger.Info("User cart fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(cartItems),
		"total":   total,
	})
	return &Cart{Items: cartItems, Total: total}, nil
}

// AddToCart puts a product in the cart. A product already in the cart
// gets its quantity bumped by one; a new product starts at one.
func (s *cartService) AddToCart(userID, productID uint) (*model.CartItem, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing cart item", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return nil, err
	}

	if existing != nil {
		existing.Quantity++
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, err
		}
		logger.Info("Cart item quantity incremented", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
			"quantity":   existing.Quantity,
		})
		return existing, nil
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}

	logger.Info("Item added to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	return item, nil
}

func (s *cartService) IncreaseQuantity(userID, productID uint) (*model.CartItem, error) {
	logger.Info("Increasing cart item quantity", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})

	item, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot increase quantity: cart item not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	item.Quantity++
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DecreaseQuantity lowers the line quantity by one but never below
// one. At one it is a no-op; removing the line entirely takes an
// explicit remove.
func (s *cartService) DecreaseQuantity(userID, productID uint) (*model.CartItem, error) {
	logger.Info("Decreasing cart item quantity", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})

	item, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot decrease quantity: cart item not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if item.Quantity <= 1 {
		logger.Debug("Quantity already at floor, leaving unchanged", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return item, nil
	}

	item.Quantity--
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) RemoveFromCart(userID, productID uint) error {
	logger.Info("Removing item from cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})

	item, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot remove from cart: cart item not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return ErrCartItemNotFound
		}
		return err
	}

	if err := s.cartRepo.Delete(item.ID); err != nil {
		return err
	}

	logger.Info("Item removed from cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	return nil
}

func (s *cartService) ClearCart(userID uint) error {
	logger.Info("Clearing cart", map[string]interface{}{
		"user_id": userID,
	})

	if err := s.cartRepo.DeleteByUserID(userID); err != nil {
		return err
	}

	logger.Info("Cart cleared successfully", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}

// PurgeStale removes cart lines untouched for longer than olderThan.
// Invoked by the scheduled cleanup job.
func (s *cartService) PurgeStale(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	logger.Info("Purging stale cart items", map[string]interface{}{
		"cutoff": cutoff,
	})

	deleted, err := s.cartRepo.DeleteStale(cutoff)
	if err != nil {
		logger.Error("Failed to purge stale cart items", err)
		return 0, err
	}

	logger.Info("Stale cart items purged", map[string]interface{}{
		"deleted_count": deleted,
	})
	return deleted, nil
}
