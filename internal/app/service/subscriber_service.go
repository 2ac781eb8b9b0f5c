package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/scentscape/scentscape-backend/internal/app/model"
	"github.com/scentscape/scentscape-backend/internal/app/repository"
	"github.com/scentscape/scentscape-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

type SubscriberService interface {
	Subscribe(email, name string) (*model.Subscriber, error)
	GetSubscribers() ([]model.Subscriber, error)
	DeleteSubscriber(id uint) error
	ExportSubscribers() ([]byte, error)
}

type subscriberService struct {
	subscriberRepo repository.SubscriberRepository
}

func NewSubscriberService(subscriberRepo repository.SubscriberRepository) SubscriberService {
	return &subscriberService{subscriberRepo: subscriberRepo}
}

func (s *subscriberService) Subscribe(email, name string) (*model.Subscriber, error) {
	logger.Info("Subscribing email", map[string]interface{}{
		"email": email,
	})

	existing, err := s.subscriberRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing subscriber", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Subscription rejected: email already subscribed", map[string]interface{}{
			"email": email,
		})
		return nil, ErrAlreadySubscribed
	}

	subscriber := &model.Subscriber{
		Email: email,
		Name:  name,
	}
	if err := s.subscriberRepo.Create(subscriber); err != nil {
		return nil, err
	}

	logger.Info("Email subscribed successfully", map[string]interface{}{
		"subscriber_id": subscriber.ID,
		"email":         subscriber.Email,
	})
	return subscriber, nil
}

func (s *subscriberService) GetSubscribers() ([]model.Subscriber, error) {
	logger.Debug("Fetching subscribers")

	subscribers, err := s.subscriberRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch subscribers", err)
		return nil, err
	}
	return subscribers, nil
}

func (s *subscriberService) DeleteSubscriber(id uint) error {
	logger.Info("Deleting subscriber", map[string]interface{}{
		"subscriber_id": id,
	})

	if err := s.subscriberRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubscriberNotFound
		}
		return err
	}

	logger.Info("Subscriber deleted successfully", map[string]interface{}{
		"subscriber_id": id,
	})
	return nil
}

// ExportSubscribers renders the subscriber list as an XLSX workbook for
// mailing-list tooling.
func (s *subscriberService) ExportSubscribers() ([]byte, error) {
	logger.Info("Exporting subscribers to spreadsheet")

	subscribers, err := s.subscriberRepo.FindAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Subscribers"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Email", "Name", "Subscribed At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, sub := range subscribers {
		values := []interface{}{
			sub.ID,
			sub.Email,
			sub.Name,
			sub.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	logger.Info("Subscribers exported successfully", map[string]interface{}{
		"count": len(subscribers),
	})
	return buf.Bytes(), nil
}
