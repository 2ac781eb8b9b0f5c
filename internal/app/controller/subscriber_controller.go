package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scentscape/scentscape-backend/internal/app/service"
	apperrors "github.com/scentscape/scentscape-backend/internal/errors"
	"github.com/scentscape/scentscape-backend/internal/middleware"
)

type SubscriberController struct {
	subscriberService service.SubscriberService
}

func NewSubscriberController(subscriberService service.SubscriberService) *SubscriberController {
	return &SubscriberController{
		subscriberService: subscriberService,
	}
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// Subscribe signs an email up for the newsletter
// POST /api/v1/subscribers
func (ctrl *SubscriberController) Subscribe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid subscribe request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please provide a valid email address")
		return
	}

	subscriber, err := ctrl.subscriberService.Subscribe(req.Email, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			apperrors.Conflict(c, apperrors.SubscriberAlreadyExists, "This email is already subscribed")
			return
		}
		log.Error("Failed to subscribe email", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "subscribe")
		return
	}

	log.Info("Email subscribed", map[string]interface{}{
		"subscriber_id": subscriber.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Subscribed successfully",
		"subscriber": subscriber,
	})
}

// GetSubscribers lists all subscribers for the back office
// GET /api/v1/admin/subscribers
func (ctrl *SubscriberController) GetSubscribers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	subscribers, err := ctrl.subscriberService.GetSubscribers()
	if err != nil {
		log.Error("Failed to fetch subscribers", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscribers": subscribers,
		"count":       len(subscribers),
	})
}

// DeleteSubscriber removes a subscriber
// DELETE /api/v1/admin/subscribers/:id
func (ctrl *SubscriberController) DeleteSubscriber(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid subscriber ID")
		return
	}

	if err := ctrl.subscriberService.DeleteSubscriber(uint(id)); err != nil {
		if errors.Is(err, service.ErrSubscriberNotFound) {
			apperrors.NotFound(c, apperrors.SubscriberNotFound, "Subscriber not found")
			return
		}
		log.Error("Failed to delete subscriber", err, map[string]interface{}{
			"subscriber_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Subscriber deleted", map[string]interface{}{
		"subscriber_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscriber deleted successfully",
	})
}

// ExportSubscribers downloads the subscriber list as a spreadsheet
// GET /api/v1/admin/subscribers/export
func (ctrl *SubscriberController) ExportSubscribers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.subscriberService.ExportSubscribers()
	if err != nil {
		log.Error("Failed to export subscribers", err)
		apperrors.InternalError(c, "Failed to export subscribers")
		return
	}

	filename := fmt.Sprintf("subscribers-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
