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

func setupContentServiceTest(t *testing.T) (ContentService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewContentService(repository.NewContentRepository(testDB)), testDB
}

func TestContentService_GetContent_DefaultsWhenMissing(t *testing.T) {
	contentService, _ := setupContentServiceTest(t)

	content, err := contentService.GetContent()
	assert.NoError(t, err)
	assert.Equal(t, model.DefaultBrandContent().HeroTitle, content.HeroTitle)
}

func TestContentService_UpdateContent_PartialEdit(t *testing.T) {
	contentService, testDB := setupContentServiceTest(t)

	seed := model.DefaultBrandContent()
	testDB.Create(&seed)

	newTitle := "A New Chapter"
	content, err := contentService.UpdateContent(UpdateContentInput{HeroTitle: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "A New Chapter", content.HeroTitle)

	// Untouched fields survive
	assert.Equal(t, seed.FounderName, content.FounderName)

	// And the edit persists
	found, err := contentService.GetContent()
	assert.NoError(t, err)
	assert.Equal(t, "A New Chapter", found.HeroTitle)
}
