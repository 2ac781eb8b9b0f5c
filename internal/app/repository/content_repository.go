package repository

import (
	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"gorm.io/gorm"
)

type ContentRepository interface {
	Get() (*model.BrandContent, error)
	Save(content *model.BrandContent) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Get returns the single brand content row, ordered by ID so the seed
// row wins if duplicates ever slip in.
func (r *contentRepository) Get() (*model.BrandContent, error) {
	logger.Debug("Finding brand content in database")

	var content model.BrandContent
	if err := r.db.Order("id ASC").First(&content).Error; err != nil {
		logger.Error("Failed to find brand content in database", err)
		return nil, err
	}

	return &content, nil
}

func (r *contentRepository) Save(content *model.BrandContent) error {
	logger.Debug("Saving brand content in database", map[string]interface{}{
		"content_id": content.ID,
	})

	if err := r.db.Save(content).Error; err != nil {
		logger.Error("Failed to save brand content in database", err, map[string]interface{}{
			"content_id": content.ID,
		})
		return err
	}

	logger.Debug("Brand content saved in database", map[string]interface{}{
		"content_id": content.ID,
	})
	return nil
}
