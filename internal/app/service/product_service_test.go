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

func setupProductServiceTest(t *testing.T) (ProductService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	return NewProductService(productRepo), testDB
}

func TestProductService_CreateProduct(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Name:       "Citrus Sunrise",
		Price:      5999,
		Category:   model.CategoryCitrus,
		TopNotes:   []string{"Lemon", "Mandarin"},
		HeartNotes: []string{"Neroli"},
		BaseNotes:  []string{"Cedar"},
	})
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.False(t, product.Builtin)

	found, err := productService.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Citrus Sunrise", found.Name)
}

func TestProductService_CreateProduct_InvalidCategory(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	_, err := productService.CreateProduct(CreateProductInput{
		Name:     "Mystery",
		Price:    1000,
		Category: model.ProductCategory("Gourmand"),
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestProductService_GetProducts_FilterByCategory(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	testDB.Create(&model.Product{Name: "A", Price: 100, Category: model.CategoryFloral})
	testDB.Create(&model.Product{Name: "B", Price: 200, Category: model.CategoryWoody})

	floral := model.CategoryFloral
	products, err := productService.GetProducts(repository.ProductFilter{Category: &floral})
	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].Name)
}

func TestProductService_GetProducts_SortByPrice(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	testDB.Create(&model.Product{Name: "Pricey", Price: 9000, Category: model.CategoryFloral})
	testDB.Create(&model.Product{Name: "Cheap", Price: 1000, Category: model.CategoryFloral})

	products, err := productService.GetProducts(repository.ProductFilter{SortBy: repository.ProductSortPriceLow})
	assert.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Cheap", products[0].Name)

	products, err = productService.GetProducts(repository.ProductFilter{SortBy: repository.ProductSortPriceHigh})
	assert.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pricey", products[0].Name)
}

func TestProductService_GetProducts_Search(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	testDB.Create(&model.Product{Name: "Velvet Rose", Price: 100, Category: model.CategoryFloral})
	testDB.Create(&model.Product{Name: "Ocean Breeze", Price: 200, Category: model.CategoryFresh, Description: "a rose-free marine scent"})

	products, err := productService.GetProducts(repository.ProductFilter{Search: "Velvet"})
	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Velvet Rose", products[0].Name)

	// Search also matches descriptions
	products, err = productService.GetProducts(repository.ProductFilter{Search: "marine"})
	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ocean Breeze", products[0].Name)
}

func TestProductService_UpdateProduct(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product := &model.Product{Name: "Old Name", Price: 100, Category: model.CategoryFloral}
	testDB.Create(product)

	newName := "New Name"
	newPrice := int64(250)
	updated, err := productService.UpdateProduct(product.ID, UpdateProductInput{
		Name:  &newName,
		Price: &newPrice,
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, int64(250), updated.Price)
	assert.Equal(t, model.CategoryFloral, updated.Category)
}

func TestProductService_DeleteAndRestore(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product := &model.Product{Name: "Cedar & Sage", Price: 7499, Category: model.CategoryWoody, Builtin: true}
	testDB.Create(product)

	err := productService.DeleteProduct(product.ID)
	assert.NoError(t, err)

	// Gone from the catalog
	_, err = productService.GetProductByID(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// But listed among deleted
	deleted, err := productService.GetDeletedProducts()
	assert.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, product.ID, deleted[0].ID)

	// Restore brings it back with identity intact
	restored, err := productService.RestoreProduct(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, restored.ID)
	assert.Equal(t, "Cedar & Sage", restored.Name)
	assert.True(t, restored.Builtin)

	found, err := productService.GetProductByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
}

func TestProductService_RestoreProduct_NotDeleted(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product := &model.Product{Name: "Live", Price: 100, Category: model.CategoryFresh}
	testDB.Create(product)

	_, err := productService.RestoreProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductNotDeleted)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	err := productService.DeleteProduct(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
