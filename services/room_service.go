package services

import (
	stderrors "errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelbooking/config"
	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/validator"
)

const (
	roomCacheKey = "rooms:all"
	roomCacheTTL = 10 * time.Minute
)

// RoomService owns the room catalog. Reads go through the Redis cache
// when a client is configured; writes invalidate it.
type RoomService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRoomService(db *gorm.DB, rdb *redis.Client) *RoomService {
	return &RoomService{db: db, rdb: rdb}
}

// GetAll lists the whole catalog, cache first.
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room

	if s.rdb != nil {
		if err := GetFromRedis(config.Ctx, s.rdb, roomCacheKey, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	if err := s.db.Order("id").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms", err)
	}

	for i := range rooms {
		normalizeRoom(&rooms[i])
	}

	if s.rdb != nil {
		if err := SetToRedis(config.Ctx, s.rdb, roomCacheKey, rooms, roomCacheTTL); err != nil {
			log.Printf("failed to cache room list: %v", err)
		}
	}
	return rooms, nil
}

// GetByID loads one room.
func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "room not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}
	normalizeRoom(&room)
	return &room, nil
}

// Create inserts a room from an admin request.
func (s *RoomService) Create(req dto.RoomRequest) (*models.Room, error) {
	room := models.Room{
		Type:        req.Type,
		Price:       req.Price,
		Status:      strings.ToLower(req.Status),
		Description: req.Description,
		Amenities:   req.Amenities,
	}
	if room.Status == "" {
		room.Status = constants.RoomStatusAvailable
	}
	if err := validator.ValidateRoom(&room); err != nil {
		return nil, err
	}

	if err := s.db.Create(&room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create room", err)
	}

	s.invalidateCache()
	return &room, nil
}

// Update overwrites a room's fields.
func (s *RoomService) Update(id uint, req dto.RoomRequest) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(req.Status)
	if status == "" {
		status = room.Status
	}

	room.Type = req.Type
	room.Price = req.Price
	room.Status = status
	room.Description = req.Description
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}
	if err := validator.ValidateRoom(room); err != nil {
		return nil, err
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update room", err)
	}

	s.invalidateCache()
	return room, nil
}

// Delete removes a room and its reservations. The two deletes are an
// explicit cascade inside one transaction.
func (s *RoomService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete room", err)
	}

	s.invalidateCache()
	return nil
}

func (s *RoomService) invalidateCache() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, s.rdb, roomCacheKey); err != nil {
		log.Printf("failed to invalidate room cache: %v", err)
	}
}

// normalizeRoom coerces stored fields into the wire shape: lowercased
// status, empty strings for missing text.
func normalizeRoom(room *models.Room) {
	room.Status = strings.ToLower(strings.TrimSpace(room.Status))
	if room.Status == "" {
		room.Status = constants.RoomStatusAvailable
	}
	room.Type = strings.TrimSpace(room.Type)
	room.Description = strings.TrimSpace(room.Description)
}
