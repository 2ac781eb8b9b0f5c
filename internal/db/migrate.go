package db

import (
	"time"

	"github.com/scentscape/scentscape-backend/config"
	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"github.com/scentscape/scentscape-backend/pkg/util"
	"gorm.io/gorm"
)

// Migrate runs database migrations and seeds the baseline data the
// storefront expects on first boot.
func Migrate(adminCfg *config.AdminConfig) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.BrandContent{},
		&model.Subscriber{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(DB, adminCfg); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

func seedInitialData(db *gorm.DB, adminCfg *config.AdminConfig) error {
	logger.Info("Seeding initial data...")

	if err := seedAdminUser(db, adminCfg); err != nil {
		logger.Error("Failed to seed admin user", err)
		return err
	}

	if err := SeedCatalog(db); err != nil {
		logger.Error("Failed to seed catalog", err)
		return err
	}

	if err := seedBrandContent(db); err != nil {
		logger.Error("Failed to seed brand content", err)
		return err
	}

	if err := seedDemoOrders(db); err != nil {
		logger.Error("Failed to seed demo orders", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedAdminUser guarantees the back-office account exists. The password
// only applies on first creation; existing accounts are left untouched.
func seedAdminUser(db *gorm.DB, adminCfg *config.AdminConfig) error {
	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Admin user already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	hash, err := util.HashPassword(adminCfg.Password)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        adminCfg.Email,
		PasswordHash: hash,
		Name:         "Store Admin",
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Admin user seeded successfully", map[string]interface{}{
		"email": adminCfg.Email,
	})
	return nil
}

// SeedCatalog inserts the builtin catalog when the products table is
// empty. Builtin rows are flagged so the storefront can tell shipped
// products from back-office additions.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Catalog already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding builtin catalog...")

	products := BuiltinCatalog()

	totalInserted := 0
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			logger.Error("Failed to create product", err, map[string]interface{}{
				"product": products[i].Name,
			})
			return err
		}
		totalInserted++
	}

	logger.Info("Catalog seeded successfully", map[string]interface{}{
		"total_records": totalInserted,
	})
	return nil
}

// BuiltinCatalog returns the products that ship with the store.
func BuiltinCatalog() []model.Product {
	original := func(v int64) *int64 { return &v }

	return []model.Product{
		{
			Name:        "Midnight Bloom",
			Description: "A seductive evening fragrance where dark florals meet warm amber.",
			Price:       8999,
			Category:    model.CategoryFloral,
			ImageURL:    "/images/products/midnight-bloom.jpg",
			Rating:      4.8,
			IsNew:       true,
			Builtin:     true,
			TopNotes:    []string{"Bergamot", "Black Currant"},
			HeartNotes:  []string{"Jasmine", "Tuberose"},
			BaseNotes:   []string{"Amber", "Musk"},
		},
		{
			Name:          "Amber Oud",
			Description:   "Rich oud wood wrapped in golden amber and a whisper of rose.",
			Price:         12999,
			OriginalPrice: original(14999),
			Category:      model.CategoryOriental,
			ImageURL:      "/images/products/amber-oud.jpg",
			Rating:        4.9,
			Builtin:       true,
			TopNotes:      []string{"Saffron", "Rose"},
			HeartNotes:    []string{"Oud", "Patchouli"},
			BaseNotes:     []string{"Amber", "Vanilla"},
		},
		{
			Name:        "Ocean Breeze",
			Description: "Crisp marine notes that capture a morning walk along the coast.",
			Price:       6499,
			Category:    model.CategoryFresh,
			ImageURL:    "/images/products/ocean-breeze.jpg",
			Rating:      4.5,
			Builtin:     true,
			TopNotes:    []string{"Sea Salt", "Mint"},
			HeartNotes:  []string{"Water Lily", "Sage"},
			BaseNotes:   []string{"Driftwood", "White Musk"},
		},
		{
			Name:        "Cedar & Sage",
			Description: "An earthy, grounding blend of forest woods and aromatic herbs.",
			Price:       7499,
			Category:    model.CategoryWoody,
			ImageURL:    "/images/products/cedar-sage.jpg",
			Rating:      4.6,
			Builtin:     true,
			TopNotes:    []string{"Sage", "Pink Pepper"},
			HeartNotes:  []string{"Cedarwood", "Vetiver"},
			BaseNotes:   []string{"Sandalwood", "Moss"},
		},
		{
			Name:          "Citrus Sunrise",
			Description:   "Sparkling citrus zest with a honeyed warmth, bright as daybreak.",
			Price:         5999,
			OriginalPrice: original(6999),
			Category:      model.CategoryCitrus,
			ImageURL:      "/images/products/citrus-sunrise.jpg",
			Rating:        4.4,
			IsNew:         true,
			Builtin:       true,
			TopNotes:      []string{"Sicilian Lemon", "Mandarin"},
			HeartNotes:    []string{"Neroli", "Honey"},
			BaseNotes:     []string{"Cedar", "Amber"},
		},
		{
			Name:        "Velvet Rose",
			Description: "A modern rose, velvety and deep, softened by creamy sandalwood.",
			Price:       9499,
			Category:    model.CategoryFloral,
			ImageURL:    "/images/products/velvet-rose.jpg",
			Rating:      4.7,
			Builtin:     true,
			TopNotes:    []string{"Damask Rose", "Litchi"},
			HeartNotes:  []string{"Peony", "Violet"},
			BaseNotes:   []string{"Sandalwood", "Musk"},
		},
		{
			Name:        "Spiced Vanilla",
			Description: "Warm bourbon vanilla laced with cinnamon and smoked tonka.",
			Price:       8499,
			Category:    model.CategoryOriental,
			ImageURL:    "/images/products/spiced-vanilla.jpg",
			Rating:      4.6,
			Builtin:     true,
			TopNotes:    []string{"Cinnamon", "Cardamom"},
			HeartNotes:  []string{"Bourbon Vanilla", "Heliotrope"},
			BaseNotes:   []string{"Tonka Bean", "Benzoin"},
		},
		{
			Name:        "Green Vetiver",
			Description: "Cool vetiver and cut grass, a clean signature for every day.",
			Price:       6999,
			Category:    model.CategoryWoody,
			ImageURL:    "/images/products/green-vetiver.jpg",
			Rating:      4.3,
			IsNew:       true,
			Builtin:     true,
			TopNotes:    []string{"Grapefruit", "Green Leaves"},
			HeartNotes:  []string{"Vetiver", "Geranium"},
			BaseNotes:   []string{"Oakmoss", "Musk"},
		},
	}
}

// seedBrandContent creates the singleton marketing copy row if missing.
func seedBrandContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.BrandContent{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Brand content already seeded, skipping...")
		return nil
	}

	content := model.DefaultBrandContent()
	if err := db.Create(&content).Error; err != nil {
		return err
	}

	logger.Info("Brand content seeded successfully")
	return nil
}

// seedDemoOrders gives the back office something to look at on a fresh
// install. Only runs when the orders table is completely empty.
func seedDemoOrders(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Order{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Orders already present, skipping demo seed...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	var admin model.User
	if err := db.Where("role = ?", model.RoleAdmin).First(&admin).Error; err != nil {
		return err
	}

	var products []model.Product
	if err := db.Order("id asc").Limit(4).Find(&products).Error; err != nil {
		return err
	}
	if len(products) < 4 {
		logger.Warn("Not enough products for demo orders, skipping...", map[string]interface{}{
			"product_count": len(products),
		})
		return nil
	}

	now := time.Now()
	demos := []struct {
		customer string
		email    string
		product  model.Product
		quantity int
		status   model.OrderStatus
		age      time.Duration
	}{
		{"Sophia Laurent", "sophia.laurent@example.com", products[0], 1, model.OrderStatusDelivered, 96 * time.Hour},
		{"Marcus Webb", "marcus.webb@example.com", products[1], 2, model.OrderStatusShipped, 48 * time.Hour},
		{"Elena Petrova", "elena.petrova@example.com", products[2], 1, model.OrderStatusProcessing, 24 * time.Hour},
		{"James O'Connor", "james.oconnor@example.com", products[3], 3, model.OrderStatusPending, 2 * time.Hour},
	}

	for _, d := range demos {
		order := model.Order{
			OrderNumber:  util.GenerateOrderNumber(),
			UserID:       admin.ID,
			CustomerName: d.customer,
			Email:        d.email,
			ProductID:    d.product.ID,
			ProductName:  d.product.Name,
			UnitPrice:    d.product.Price,
			Quantity:     d.quantity,
			Amount:       d.product.Price * int64(d.quantity),
			Status:       d.status,
			CreatedAt:    now.Add(-d.age),
		}
		if err := db.Create(&order).Error; err != nil {
			logger.Error("Failed to create demo order", err, map[string]interface{}{
				"customer": d.customer,
			})
			return err
		}
	}

	logger.Info("Demo orders seeded successfully", map[string]interface{}{
		"total_records": len(demos),
	})
	return nil
}
