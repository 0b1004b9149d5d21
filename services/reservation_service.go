package services

import (
	stderrors "errors"
	"sync"

	"gorm.io/gorm"

	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/errors"
	"hotelbooking/models"
)

// roomLocks serializes check-then-insert per room so two concurrent
// bookings for the same room and overlapping dates cannot both pass
// the conflict check.
var roomLocks sync.Map

func lockRoom(roomID uint) *sync.Mutex {
	mu, _ := roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ReservationService owns reservation lifecycle and the non-overlap invariant.
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// Create books a room for [start, end). The conflict check and the insert
// run inside one transaction, under a per-room lock.
func (s *ReservationService) Create(req dto.ReservationRequest) (*models.Reservation, error) {
	iv, err := ParseInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.db.First(&room, req.RoomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "room not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}

	var user models.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "user not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}

	mu := lockRoom(req.RoomID)
	mu.Lock()
	defer mu.Unlock()

	reservation := models.Reservation{
		RoomID:    req.RoomID,
		UserID:    req.UserID,
		StartDate: iv.Start,
		EndDate:   iv.End,
		Status:    constants.ReservationStatusConfirmed,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		conflict, err := HasConflict(tx, req.RoomID, iv)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to check availability", err)
		}
		if conflict {
			return errors.NewAppError(errors.ErrCodeBookingConflict,
				"room is already reserved for the selected dates", nil)
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create reservation", err)
	}

	return &reservation, nil
}

// GetByID loads a reservation.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "reservation not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load reservation", err)
	}
	return &reservation, nil
}

// Cancel flips a confirmed reservation to cancelled, freeing its interval.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation.Status == constants.ReservationStatusCancelled {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus,
			"reservation already cancelled", nil)
	}

	reservation.Status = constants.ReservationStatusCancelled
	if err := s.db.Save(reservation).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to cancel reservation", err)
	}
	return reservation, nil
}

// List returns reservations joined with user name and room type, newest
// check-in first. A positive limit pages the result; limit <= 0 returns
// everything.
func (s *ReservationService) List(page, limit int) ([]dto.ReservationListItem, int64, error) {
	var total int64
	if err := s.db.Model(&models.Reservation{}).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to count reservations", err)
	}

	query := s.db.
		Preload("User").
		Preload("Room").
		Order("start_date DESC")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to list reservations", err)
	}

	items := make([]dto.ReservationListItem, 0, len(reservations))
	for _, r := range reservations {
		item := dto.ReservationListItem{
			ID:     r.ID,
			UserID: r.UserID,
			RoomID: r.RoomID,
			Start:  r.StartDate,
			End:    r.EndDate,
			Status: r.Status,
		}
		if r.User != nil {
			item.UserName = r.User.Name
		}
		if r.Room != nil {
			item.RoomType = r.Room.Type
		}
		items = append(items, item)
	}
	return items, total, nil
}

// ListByUser returns one user's reservation history.
func (s *ReservationService) ListByUser(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.
		Preload("Room").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list reservations", err)
	}
	return reservations, nil
}
