package repository

import (
	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"gorm.io/gorm"
)

type SubscriberRepository interface {
	Create(subscriber *model.Subscriber) error
	FindAll() ([]model.Subscriber, error)
	FindByEmail(email string) (*model.Subscriber, error)
	Delete(id uint) error
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(subscriber *model.Subscriber) error {
	logger.Debug("Creating subscriber in database", map[string]interface{}{
		"email": subscriber.Email,
	})

	if err := r.db.Create(subscriber).Error; err != nil {
		logger.Error("Failed to create subscriber in database", err, map[string]interface{}{
			"email": subscriber.Email,
		})
		return err
	}

	logger.Debug("Subscriber created in database", map[string]interface{}{
		"subscriber_id": subscriber.ID,
		"email":         subscriber.Email,
	})
	return nil
}

func (r *subscriberRepository) FindAll() ([]model.Subscriber, error) {
	logger.Debug("Finding all subscribers in database")

	var subscribers []model.Subscriber
	if err := r.db.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		logger.Error("Failed to find subscribers in database", err)
		return nil, err
	}

	logger.Debug("Subscribers found in database", map[string]interface{}{
		"count": len(subscribers),
	})
	return subscribers, nil
}

func (r *subscriberRepository) FindByEmail(email string) (*model.Subscriber, error) {
	logger.Debug("Finding subscriber by email in database", map[string]interface{}{
		"email": email,
	})

	var subscriber model.Subscriber
	if err := r.db.Where("email = ?", email).First(&subscriber).Error; err != nil {
		return nil, err
	}

	return &subscriber, nil
}

func (r *subscriberRepository) Delete(id uint) error {
	logger.Debug("Deleting subscriber in database", map[string]interface{}{
		"subscriber_id": id,
	})

	result := r.db.Delete(&model.Subscriber{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete subscriber in database", result.Error, map[string]interface{}{
			"subscriber_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Subscriber deleted in database", map[string]interface{}{
		"subscriber_id": id,
	})
	return nil
}
