package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"
)

type RoomController struct {
	rooms        *services.RoomService
	availability *services.AvailabilityService
}

func NewRoomController(db *gorm.DB, rdb *redis.Client) *RoomController {
	return &RoomController{
		rooms:        services.NewRoomService(db, rdb),
		availability: services.NewAvailabilityService(db),
	}
}

func toRoomResponse(room models.Room) dto.RoomResponse {
	amenities := []string(room.Amenities)
	if amenities == nil {
		amenities = []string{}
	}
	return dto.RoomResponse{
		ID:          room.ID,
		Type:        room.Type,
		Price:       room.Price,
		Status:      room.Status,
		Description: room.Description,
		Amenities:   amenities,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

func toRoomResponses(rooms []models.Room) []dto.RoomResponse {
	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}
	return out
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetAllRooms returns the whole catalog.
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := rc.rooms.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, toRoomResponses(rooms))
}

// GetAvailableRooms lists rooms free for the requested [start, end).
// Without the range it falls back to the status filter only.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	var query dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var iv *services.Interval
	if query.Start != "" || query.End != "" {
		parsed, err := services.ParseInterval(query.Start, query.End)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		iv = &parsed
	}

	rooms, err := rc.availability.AvailableRooms(iv)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toRoomResponses(rooms))
}

// SearchRooms ranks rooms against a free-text query.
func (rc *RoomController) SearchRooms(c *gin.Context) {
	rooms, err := rc.rooms.Search(c.Query("q"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, toRoomResponses(rooms))
}

// GetRoomDetail returns one room or 404.
func (rc *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := rc.rooms.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, toRoomResponse(*room))
}

// CreateRoom handles admin room creation.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	room, err := rc.rooms.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, toRoomResponse(*room))
}

// UpdateRoom handles admin room updates.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	room, err := rc.rooms.Update(id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, toRoomResponse(*room))
}

// DeleteRoom removes a room and cascades to its reservations.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rc.rooms.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
