package constants

// Room status
const (
	RoomStatusAvailable = "available"
	RoomStatusReserved  = "reserved"
)

// Reservation status
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// User roles
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// ValidRoomStatus reports whether s is a known room status.
func ValidRoomStatus(s string) bool {
	return s == RoomStatusAvailable || s == RoomStatusReserved
}

// ValidReservationStatus reports whether s is a known reservation status.
func ValidReservationStatus(s string) bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCancelled
}
