package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"savanna/dto"
	"savanna/errors"
	"savanna/models"
	"savanna/response"
	"savanna/services/notification"
	"savanna/storage"
	"savanna/validator"
)

type MessageController struct {
	store    *storage.Store
	notifier notification.Service
}

func NewMessageController(store *storage.Store, notifier notification.Service) *MessageController {
	return &MessageController{store: store, notifier: notifier}
}

// CreateMessage receives a public contact-form submission.
func (mc *MessageController) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, email and body are required")
		return
	}

	message := models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := validator.ValidateMessage(&message); err != nil {
		response.FromError(c, err)
		return
	}

	if err := mc.store.CreateMessage(&message); err != nil {
		response.FromError(c, err)
		return
	}

	if mc.notifier != nil {
		_ = mc.notifier.SendMessage(notification.NewContactEvent(message.Name, message.Subject).Build())
	}

	response.Created(c, message)
}

func (mc *MessageController) GetMessages(c *gin.Context) {
	messages, err := mc.store.ListMessages()
	if err != nil {
		response.FromError(c, err)
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Message, 0, len(messages))
		for _, m := range messages {
			if m.Status == status {
				filtered = append(filtered, m)
			}
		}
		messages = filtered
	}

	response.Success(c, messages)
}

func (mc *MessageController) GetMessageDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	message, err := mc.store.GetMessage(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, message)
}

func (mc *MessageController) ChangeMessageStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	var req dto.MessageStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}
	if !validator.IsKnownMessageStatus(req.Status) {
		response.FromError(c, errors.NewValidationError("unknown message status"))
		return
	}

	message, err := mc.store.GetMessage(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	message.Status = req.Status
	if err := mc.store.UpdateMessage(message); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, message)
}

func (mc *MessageController) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	if err := mc.store.DeleteMessage(uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "deleted"})
}
