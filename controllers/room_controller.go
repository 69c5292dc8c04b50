package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"savanna/dto"
	"savanna/errors"
	"savanna/models"
	"savanna/response"
	"savanna/storage"
)

type RoomController struct {
	store *storage.Store
}

func NewRoomController(store *storage.Store) *RoomController {
	return &RoomController{store: store}
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "propertyId and name are required")
		return
	}

	if _, err := rc.store.GetProperty(req.PropertyID); err != nil {
		response.FromError(c, err)
		return
	}

	room := models.Room{
		PropertyID:   req.PropertyID,
		Name:         req.Name,
		RoomType:     req.RoomType,
		BasePrice:    req.BasePrice,
		MaxOccupancy: req.MaxOccupancy,
		Size:         req.Size,
		Amenities:    req.Amenities,
		Photos:       req.Photos,
		Available:    true,
	}
	if req.MaxOccupancy < 1 {
		room.MaxOccupancy = 1
	}
	if req.Available != nil {
		room.Available = *req.Available
	}
	if err := room.Validate(); err != nil {
		response.FromError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := rc.store.CreateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, toRoomResponse(room))
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	room, err := rc.store.GetRoom(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "propertyId and name are required")
		return
	}

	room.Name = req.Name
	room.RoomType = req.RoomType
	room.BasePrice = req.BasePrice
	room.Size = req.Size
	room.Amenities = req.Amenities
	room.Photos = req.Photos
	if req.MaxOccupancy >= 1 {
		room.MaxOccupancy = req.MaxOccupancy
	}
	if req.Available != nil {
		room.Available = *req.Available
	}
	if err := room.Validate(); err != nil {
		response.FromError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := rc.store.UpdateRoom(room); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toRoomResponse(*room))
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	if err := rc.store.DeleteRoom(uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "room deleted"})
}
