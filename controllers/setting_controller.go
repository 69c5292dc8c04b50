package controllers

import (
	"github.com/gin-gonic/gin"

	"savanna/dto"
	"savanna/errors"
	"savanna/models"
	"savanna/response"
	"savanna/storage"
)

type SettingController struct {
	store *storage.Store
}

func NewSettingController(store *storage.Store) *SettingController {
	return &SettingController{store: store}
}

// GetSettings lists settings, optionally one category.
func (sc *SettingController) GetSettings(c *gin.Context) {
	settings, err := sc.store.ListSettings(c.Query("category"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, settings)
}

// UpsertSettings writes a batch of key/value pairs, inserting or updating
// each by key.
func (sc *SettingController) UpsertSettings(c *gin.Context) {
	var req dto.SettingsUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "settings array is required")
		return
	}
	if len(req.Settings) == 0 {
		response.FromError(c, errors.NewValidationError("settings must not be empty"))
		return
	}

	saved := make([]models.Setting, 0, len(req.Settings))
	for _, item := range req.Settings {
		if item.Key == "" {
			response.FromError(c, errors.NewValidationError("setting key is required"))
			return
		}
		setting := models.Setting{
			Category: item.Category,
			Key:      item.Key,
			Value:    item.Value,
		}
		if err := sc.store.UpsertSetting(&setting); err != nil {
			response.FromError(c, err)
			return
		}
		saved = append(saved, setting)
	}

	response.Success(c, saved)
}
