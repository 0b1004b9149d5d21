package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"
	"hotelbooking/services/notification"
)

type ReservationController struct {
	reservations *services.ReservationService
	notifier     *notification.Service
}

func NewReservationController(db *gorm.DB, notifier *notification.Service) *ReservationController {
	return &ReservationController{
		reservations: services.NewReservationService(db),
		notifier:     notifier,
	}
}

func toReservationResponse(r models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		RoomID:    r.RoomID,
		Start:     r.StartDate,
		End:       r.EndDate,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

// CreateReservation books a room. 409 when the dates overlap an existing
// confirmed reservation for the same room.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	reservation, err := rc.reservations.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.notifier.Broadcast(notification.Event{
		Type:          notification.EventReservationCreated,
		ReservationID: reservation.ID,
		RoomID:        reservation.RoomID,
		Message:       "reservation created",
	})

	response.Created(c, toReservationResponse(*reservation))
}

// GetReservations returns the joined list for display. Optional page and
// limit query params page the result.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, total, err := rc.reservations.List(page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if limit > 0 {
		response.SuccessWithPagination(c, items, page, limit, int(total))
		return
	}
	response.Success(c, items)
}

// GetReservationDetail returns one reservation or 404.
func (rc *ReservationController) GetReservationDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := rc.reservations.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, toReservationResponse(*reservation))
}

// CancelReservation flips confirmed to cancelled.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := rc.reservations.Cancel(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.notifier.Broadcast(notification.Event{
		Type:          notification.EventReservationCancelled,
		ReservationID: reservation.ID,
		RoomID:        reservation.RoomID,
		Message:       "reservation cancelled",
	})

	response.Success(c, toReservationResponse(*reservation))
}

// GetReservationsByUser returns the caller's booking history.
func (rc *ReservationController) GetReservationsByUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	reservations, err := rc.reservations.ListByUser(userID.(uint))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	response.Success(c, out)
}
