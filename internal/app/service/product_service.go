package service

import (
	"errors"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductNotDeleted = errors.New("product is not deleted")
	ErrInvalidCategory   = errors.New("invalid product category")
)

type CreateProductInput struct {
	Name          string
	Description   string
	Price         int64
	OriginalPrice *int64
	Category      model.ProductCategory
	ImageURL      string
	Rating        float64
	IsNew         bool
	TopNotes      []string
	HeartNotes    []string
	BaseNotes     []string
}

type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *int64
	OriginalPrice *int64
	Category      *model.ProductCategory
	ImageURL      *string
	Rating        *float64
	IsNew         *bool
	TopNotes      []string
	HeartNotes    []string
	BaseNotes     []string
}

type ProductService interface {
	GetProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetDeletedProducts() ([]model.Product, error)
	CreateProduct(input CreateProductInput) (*model.Product, error)
	UpdateProduct(id uint, input UpdateProductInput) (*model.Product, error)
	DeleteProduct(id uint) error
	RestoreProduct(id uint) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetProducts(filter repository.ProductFilter) ([]model.Product, error) {
	logger.Debug("Fetching products", map[string]interface{}{
		"category": filter.Category,
		"search":   filter.Search,
		"sort_by":  filter.SortBy,
	})

	products, err := s.productRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to fetch products", err)
		return nil, err
	}

	logger.Info("Products fetched successfully", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	logger.Debug("Fetching product", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetDeletedProducts() ([]model.Product, error) {
	logger.Debug("Fetching soft-deleted products")

	products, err := s.productRepo.FindDeleted()
	if err != nil {
		logger.Error("Failed to fetch soft-deleted products", err)
		return nil, err
	}
	return products, nil
}

func (s *productService) CreateProduct(input CreateProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":     input.Name,
		"category": input.Category,
		"price":    input.Price,
	})

	if !model.ValidCategory(input.Category) {
		logger.Warn("Product creation rejected: invalid category", map[string]interface{}{
			"category": input.Category,
		})
		return nil, ErrInvalidCategory
	}

	product := &model.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      input.Category,
		ImageURL:      input.ImageURL,
		Rating:        input.Rating,
		IsNew:         input.IsNew,
		Builtin:       false,
		TopNotes:      input.TopNotes,
		HeartNotes:    input.HeartNotes,
		BaseNotes:     input.BaseNotes,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return product, nil
}

// UpdateProduct applies a partial edit. Builtin rows are editable like
// any other; the flag only records provenance, not mutability.
func (s *productService) UpdateProduct(id uint, input UpdateProductInput) (*model.Product, error) {
	logger.Info("Updating product", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if input.Category != nil {
		if !model.ValidCategory(*input.Category) {
			logger.Warn("Product update rejected: invalid category", map[string]interface{}{
				"product_id": id,
				"category":   *input.Category,
			})
			return nil, ErrInvalidCategory
		}
		product.Category = *input.Category
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}
	if input.TopNotes != nil {
		product.TopNotes = input.TopNotes
	}
	if input.HeartNotes != nil {
		product.HeartNotes = input.HeartNotes
	}
	if input.BaseNotes != nil {
		product.BaseNotes = input.BaseNotes
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	logger.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

// DeleteProduct soft-deletes a product. The row stays behind the
// delete marker, so past orders keep their references and the product
// can be restored later. Builtin and back-office products are treated
// identically.
func (s *productService) DeleteProduct(id uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete product: not found", map[string]interface{}{
				"product_id": id,
			})
			return ErrProductNotFound
		}
		return err
	}

	logger.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func (s *productService) RestoreProduct(id uint) (*model.Product, error) {
	logger.Info("Restoring product", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByIDIncludingDeleted(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if !product.DeletedAt.Valid {
		logger.Warn("Cannot restore product: not deleted", map[string]interface{}{
			"product_id": id,
		})
		return nil, ErrProductNotDeleted
	}

	if err := s.productRepo.Restore(id); err != nil {
		return nil, err
	}

	restored, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	logger.Info("Product restored successfully", map[string]interface{}{
		"product_id": id,
	})
	return restored, nil
}
