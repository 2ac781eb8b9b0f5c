package model

import (
	"time"
)

// BrandContent is the singleton block of editable marketing copy shown
// on the storefront. Exactly one row exists; updates overwrite it.
type BrandContent struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	HeroTitle   string    `gorm:"not null" json:"hero_title"`
	HeroTagline string    `gorm:"not null" json:"hero_tagline"`
	AboutTitle  string    `gorm:"not null" json:"about_title"`
	AboutStory  string    `gorm:"type:text;not null" json:"about_story"`
	FounderName string    `gorm:"not null" json:"founder_name"`
	FounderBio  string    `gorm:"type:text;not null" json:"founder_bio"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (BrandContent) TableName() string {
	return "brand_content"
}

// DefaultBrandContent is what the storefront shows before an admin has
// ever saved custom copy.
func DefaultBrandContent() BrandContent {
	return BrandContent{
		HeroTitle:   "Discover Your Signature Scent",
		HeroTagline: "Handcrafted perfumes that tell your unique story",
		AboutTitle:  "Our Fragrance Journey",
		AboutStory:  "ScentScape was founded with a passion for creating unique, memorable fragrances that capture emotions and experiences.",
		FounderName: "Alexandra Chen",
		FounderBio:  "With over 15 years of experience in perfumery, Alexandra has trained with master perfumers across France and Italy before establishing ScentScape.",
	}
}
