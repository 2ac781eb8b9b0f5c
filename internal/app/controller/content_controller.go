package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentscape/scentscape-backend/internal/app/service"
	apperrors "github.com/scentscape/scentscape-backend/internal/errors"
	"github.com/scentscape/scentscape-backend/internal/middleware"
)

type ContentController struct {
	contentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

type UpdateContentRequest struct {
	HeroTitle   *string `json:"hero_title"`
	HeroTagline *string `json:"hero_tagline"`
	AboutTitle  *string `json:"about_title"`
	AboutStory  *string `json:"about_story"`
	FounderName *string `json:"founder_name"`
	FounderBio  *string `json:"founder_bio"`
}

// GetContent returns the storefront brand copy
// GET /api/v1/content
func (ctrl *ContentController) GetContent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	content, err := ctrl.contentService.GetContent()
	if err != nil {
		log.Error("Failed to fetch brand content", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": content,
	})
}

// UpdateContent edits the storefront brand copy
// PUT /api/v1/admin/content
func (ctrl *ContentController) UpdateContent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid content data")
		return
	}

	content, err := ctrl.contentService.UpdateContent(service.UpdateContentInput{
		HeroTitle:   req.HeroTitle,
		HeroTagline: req.HeroTagline,
		AboutTitle:  req.AboutTitle,
		AboutStory:  req.AboutStory,
		FounderName: req.FounderName,
		FounderBio:  req.FounderBio,
	})
	if err != nil {
		log.Error("Failed to update brand content", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update content")
		return
	}

	log.Info("Brand content updated")

	c.JSON(http.StatusOK, gin.H{
		"message": "Content updated successfully",
		"content": content,
	})
}
