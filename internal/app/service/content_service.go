package service

import (
	"errors"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"gorm.io/gorm"
)

type UpdateContentInput struct {
	HeroTitle   *string
	HeroTagline *string
	AboutTitle  *string
	AboutStory  *string
	FounderName *string
	FounderBio  *string
}

type ContentService interface {
	GetContent() (*model.BrandContent, error)
	UpdateContent(input UpdateContentInput) (*model.BrandContent, error)
}

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

// GetContent returns the brand copy, falling back to the defaults if
// the row has somehow gone missing.
func (s *contentService) GetContent() (*model.BrandContent, error) {
	logger.Debug("Fetching brand content")

	content, err := s.contentRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Brand content missing, returning defaults")
			defaults := model.DefaultBrandContent()
			return &defaults, nil
		}
		return nil, err
	}
	return content, nil
}

func (s *contentService) UpdateContent(input UpdateContentInput) (*model.BrandContent, error) {
	logger.Info("Updating brand content")

	content, err := s.contentRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := model.DefaultBrandContent()
			content = &defaults
		} else {
			return nil, err
		}
	}

	if input.HeroTitle != nil {
		content.HeroTitle = *input.HeroTitle
	}
	if input.HeroTagline != nil {
		content.HeroTagline = *input.HeroTagline
	}
	if input.AboutTitle != nil {
		content.AboutTitle = *input.AboutTitle
	}
	if input.AboutStory != nil {
		content.AboutStory = *input.AboutStory
	}
	if input.FounderName != nil {
		content.FounderName = *input.FounderName
	}
	if input.FounderBio != nil {
		content.FounderBio = *input.FounderBio
	}

	if err := s.contentRepo.Save(content); err != nil {
		return nil, err
	}

	logger.Info("Brand content updated successfully")
	return content, nil
}
