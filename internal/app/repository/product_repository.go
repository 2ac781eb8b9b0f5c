package repository

import (
	"fmt"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductSort string

const (
	ProductSortName      ProductSort = "name"
	ProductSortPriceLow  ProductSort = "price-low"
	ProductSortPriceHigh ProductSort = "price-high"
	ProductSortRating    ProductSort = "rating"
)

type ProductFilter struct {
	Category *model.ProductCategory
	Search   string
	SortBy   ProductSort
	Limit    int
	Offset   int
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByIDIncludingDeleted(id uint) (*model.Product, error)
	FindDeleted() ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	Restore(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name":     product.Name,
			"category": product.Category,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	return r.FindWithFilter(ProductFilter{})
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"category": filter.Category,
		"search":   filter.Search,
		"sort_by":  filter.SortBy,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})

	query := r.db.Model(&model.Product{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	switch filter.SortBy {
	case ProductSortName:
		query = query.Order("name ASC")
	case ProductSortPriceLow:
		query = query.Order("price ASC")
	case ProductSortPriceHigh:
		query = query.Order("price DESC")
	case ProductSortRating:
		query = query.Order("rating DESC")
	default:
		query = query.Order("id ASC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"category": filter.Category,
			"search":   filter.Search,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	logger.Debug("Finding product by ID in database", map[string]interface{}{
		"product_id": id,
	})

	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	return &product, nil
}

// FindByIDIncludingDeleted looks a product up regardless of soft-delete
// state. Used by the restore path and by order history lookups.
func (r *productRepository) FindByIDIncludingDeleted(id uint) (*model.Product, error) {
	logger.Debug("Finding product by ID including deleted in database", map[string]interface{}{
		"product_id": id,
	})

	var product model.Product
	if err := r.db.Unscoped().First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID including deleted in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) FindDeleted() ([]model.Product, error) {
	logger.Debug("Finding soft-deleted products in database")

	var products []model.Product
	err := r.db.Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to find soft-deleted products in database", err)
		return nil, err
	}

	logger.Debug("Soft-deleted products found in database", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}

	logger.Debug("Product updated in database", map[string]interface{}{
		"product_id": product.ID,
	})
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product in database", map[string]interface{}{
		"product_id": id,
	})

	result := r.db.Delete(&model.Product{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete product in database", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Product deleted in database", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// Restore clears the soft-delete marker, putting the product back in
// the catalog with its original identity and fields intact.
func (r *productRepository) Restore(id uint) error {
	logger.Debug("Restoring product in database", map[string]interface{}{
		"product_id": id,
	})

	result := r.db.Unscoped().
		Model(&model.Product{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		logger.Error("Failed to restore product in database", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Product restored in database", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
