package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryFloral   ProductCategory = "Floral"
	CategoryOriental ProductCategory = "Oriental"
	CategoryFresh    ProductCategory = "Fresh"
	CategoryWoody    ProductCategory = "Woody"
	CategoryCitrus   ProductCategory = "Citrus"
)

// ValidCategory reports whether c is one of the storefront categories.
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryFloral, CategoryOriental, CategoryFresh, CategoryWoody, CategoryCitrus:
		return true
	}
	return false
}

// Product is a catalog entry. Builtin rows ship with the catalog seed;
// the rest are added through the back office. Prices are in minor units.
// Deletion is a soft delete: the row is retained and can be restored,
// which replaces the old tombstone-list overlay with a single
// authoritative record per product.
type Product struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         int64           `gorm:"not null" json:"price"`
	OriginalPrice *int64          `json:"original_price,omitempty"`
	Category      ProductCategory `gorm:"type:varchar(50);index" json:"category"`
	ImageURL      string          `json:"image_url"`
	Rating        float64         `gorm:"default:0" json:"rating"`
	IsNew         bool            `gorm:"default:false" json:"is_new"`
	Builtin       bool            `gorm:"default:false" json:"builtin"`
	// Fragrance pyramid. Stored through pq's array literal encoding so
	// the same column works on both the production and test drivers.
	TopNotes   pq.StringArray `gorm:"type:text" json:"top_notes"`
	HeartNotes pq.StringArray `gorm:"type:text" json:"heart_notes"`
	BaseNotes  pq.StringArray `gorm:"type:text" json:"base_notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	CartItems     []CartItem     `gorm:"foreignKey:ProductID" json:"-"`
	WishlistItems []WishlistItem `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
