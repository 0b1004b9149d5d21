package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"hotelbooking/constants"
	"hotelbooking/errors"
	"hotelbooking/models"
)

// Date layouts accepted on the wire. Plain dates are the common case,
// full RFC3339 timestamps come from the frontend date pickers.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate converts an ISO-8601 string into the internal representation.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid date: "+s, nil)
}

// Interval is a half-open date range [Start, End). Adjacent bookings may
// share a boundary date without conflicting.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval, rejecting degenerate ranges.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, errors.NewAppError(errors.ErrCodeInvalidInterval,
			"check-out date must be after check-in date", nil)
	}
	return Interval{Start: start, End: end}, nil
}

// ParseInterval parses both bounds and validates the range.
func ParseInterval(startStr, endStr string) (Interval, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

// Overlaps reports whether two half-open intervals conflict:
// a.Start < b.End AND a.End > b.Start. Touching endpoints do not.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// FilterAvailableRooms returns the rooms with status "available" that have
// no confirmed reservation overlapping the interval. Catalog order is kept.
func FilterAvailableRooms(rooms []models.Room, reservations []models.Reservation, iv Interval) []models.Room {
	booked := make(map[uint]bool)
	for _, r := range reservations {
		if r.Status != constants.ReservationStatusConfirmed {
			continue
		}
		if iv.Overlaps(Interval{Start: r.StartDate, End: r.EndDate}) {
			booked[r.RoomID] = true
		}
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if strings.ToLower(room.Status) != constants.RoomStatusAvailable {
			continue
		}
		if booked[room.ID] {
			continue
		}
		available = append(available, room)
	}
	return available
}

// AvailabilityService answers date-range availability questions.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// AvailableRooms lists rooms free over the interval. A nil interval means
// no date filtering: every room whose status is "available".
func (s *AvailabilityService) AvailableRooms(iv *Interval) ([]models.Room, error) {
	var rooms []models.Room

	if iv == nil {
		if err := s.db.Where("LOWER(status) = ?", constants.RoomStatusAvailable).Find(&rooms).Error; err != nil {
			return nil, err
		}
		for i := range rooms {
			normalizeRoom(&rooms[i])
		}
		return rooms, nil
	}

	// Exclude every room with a confirmed reservation overlapping [start, end).
	err := s.db.
		Where("LOWER(status) = ?", constants.RoomStatusAvailable).
		Where("id NOT IN (?)", s.db.Model(&models.Reservation{}).
			Select("room_id").
			Where("status = ?", constants.ReservationStatusConfirmed).
			Where("start_date < ? AND end_date > ?", iv.End, iv.Start)).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		normalizeRoom(&rooms[i])
	}
	return rooms, nil
}

// HasConflict counts confirmed reservations for the room overlapping the
// interval. Runs against the caller's handle so it can share a transaction.
func HasConflict(db *gorm.DB, roomID uint, iv Interval) (bool, error) {
	var count int64
	err := db.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status = ?", constants.ReservationStatusConfirmed).
		Where("start_date < ? AND end_date > ?", iv.End, iv.Start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
