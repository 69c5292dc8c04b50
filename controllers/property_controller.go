package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"savanna/config"
	"savanna/constants"
	"savanna/dto"
	"savanna/models"
	"savanna/response"
	"savanna/services"
	"savanna/storage"
)

const propertiesCacheKey = "properties:all"

type PropertyController struct {
	store *storage.Store
	rdb   *redis.Client
}

func NewPropertyController(store *storage.Store, rdb *redis.Client) *PropertyController {
	return &PropertyController{store: store, rdb: rdb}
}

func toPropertyResponse(p models.Property) dto.PropertyResponse {
	resp := dto.PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		Description: p.Description,
		Amenities:   p.Amenities,
		Images:      p.Images,
		RoomCount:   len(p.Rooms),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, room := range p.Rooms {
		if resp.MinPrice == 0 || room.BasePrice < resp.MinPrice {
			resp.MinPrice = room.BasePrice
		}
	}
	return resp
}

func toRoomResponse(r models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:           r.ID,
		PropertyID:   r.PropertyID,
		Name:         r.Name,
		RoomType:     r.RoomType,
		BasePrice:    r.BasePrice,
		MaxOccupancy: r.MaxOccupancy,
		Size:         r.Size,
		Amenities:    r.Amenities,
		Photos:       r.Photos,
		Available:    r.Available,
	}
}

func (pc *PropertyController) invalidateCache() {
	if pc.rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, pc.rdb, propertiesCacheKey)
}

func (pc *PropertyController) loadProperties() ([]models.Property, error) {
	var properties []models.Property
	if pc.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, pc.rdb, propertiesCacheKey, &properties); err == nil && len(properties) > 0 {
			return properties, nil
		}
	}
	properties, err := pc.store.ListProperties()
	if err != nil {
		return nil, err
	}
	if pc.rdb != nil {
		_ = services.SetToRedis(config.Ctx, pc.rdb, propertiesCacheKey, properties, 10*time.Minute)
	}
	return properties, nil
}

// GetProperties lists properties, optionally ranked by a fuzzy search query
// and filtered by city.
func (pc *PropertyController) GetProperties(c *gin.Context) {
	properties, err := pc.loadProperties()
	if err != nil {
		response.FromError(c, err)
		return
	}

	if city := c.Query("city"); city != "" {
		normalized := services.NormalizeInput(city)
		filtered := make([]models.Property, 0, len(properties))
		for _, p := range properties {
			if services.NormalizeInput(p.City) == normalized {
				filtered = append(filtered, p)
			}
		}
		properties = filtered
	}

	properties = services.RankProperties(c.Query("search"), properties)

	propertyResponses := make([]dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		propertyResponses = append(propertyResponses, toPropertyResponse(p))
	}

	response.Success(c, propertyResponses)
}

func (pc *PropertyController) GetPropertyDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	property, err := pc.store.GetProperty(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	resp := toPropertyResponse(*property)
	rooms := make([]dto.RoomResponse, 0, len(property.Rooms))
	for _, r := range property.Rooms {
		rooms = append(rooms, toRoomResponse(r))
	}

	response.Success(c, gin.H{"property": resp, "rooms": rooms})
}

// GetPropertyRooms lists a property's rooms. When check_in and check_out are
// given, rooms with an overlapping active booking are excluded.
func (pc *PropertyController) GetPropertyRooms(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	rooms, err := pc.store.ListRoomsByProperty(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	checkInStr := c.Query("check_in")
	checkOutStr := c.Query("check_out")
	if checkInStr != "" && checkOutStr != "" {
		checkIn, errIn := time.Parse("2006-01-02", checkInStr)
		checkOut, errOut := time.Parse("2006-01-02", checkOutStr)
		if errIn != nil || errOut != nil || !checkOut.After(checkIn) {
			response.BadRequest(c, "check_in and check_out must be valid dates with check_out after check_in")
			return
		}
		rooms, err = pc.filterAvailable(rooms, checkIn, checkOut)
		if err != nil {
			response.FromError(c, err)
			return
		}
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(r))
	}

	response.Success(c, roomResponses)
}

// filterAvailable drops rooms that have a non-cancelled booking overlapping
// the [checkIn, checkOut) window.
func (pc *PropertyController) filterAvailable(rooms []models.Room, checkIn, checkOut time.Time) ([]models.Room, error) {
	if len(rooms) == 0 {
		return rooms, nil
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}

	var busyIDs []uint
	err := pc.store.DB().
		Model(&models.Booking{}).
		Where("room_id IN ?", roomIDs).
		Where("status <> ?", constants.BookingStatusCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Distinct().
		Pluck("room_id", &busyIDs).Error
	if err != nil {
		return nil, err
	}

	busy := make(map[uint]bool, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = true
	}

	available := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if !busy[r.ID] && r.Available {
			available = append(available, r)
		}
	}
	return available, nil
}

func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	property := models.Property{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		Amenities:   req.Amenities,
		Images:      req.Images,
	}
	if err := pc.store.CreateProperty(&property); err != nil {
		response.FromError(c, err)
		return
	}

	pc.invalidateCache()
	response.Created(c, toPropertyResponse(property))
}

func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	property, err := pc.store.GetProperty(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	property.Name = req.Name
	property.Address = req.Address
	property.City = req.City
	property.Description = req.Description
	property.Amenities = req.Amenities
	property.Images = req.Images
	if err := pc.store.UpdateProperty(property); err != nil {
		response.FromError(c, err)
		return
	}

	pc.invalidateCache()
	response.Success(c, toPropertyResponse(*property))
}
