package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/constants"
	"hotelbooking/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			"identical intervals",
			Interval{date("2024-01-10"), date("2024-01-12")},
			Interval{date("2024-01-10"), date("2024-01-12")},
			true,
		},
		{
			"partial overlap at end",
			Interval{date("2024-01-10"), date("2024-01-12")},
			Interval{date("2024-01-11"), date("2024-01-13")},
			true,
		},
		{
			"contained interval",
			Interval{date("2024-01-10"), date("2024-01-20")},
			Interval{date("2024-01-12"), date("2024-01-14")},
			true,
		},
		{
			"touching boundary does not conflict",
			Interval{date("2024-01-10"), date("2024-01-12")},
			Interval{date("2024-01-12"), date("2024-01-14")},
			false,
		},
		{
			"touching boundary reversed",
			Interval{date("2024-01-12"), date("2024-01-14")},
			Interval{date("2024-01-10"), date("2024-01-12")},
			false,
		},
		{
			"disjoint intervals",
			Interval{date("2024-01-01"), date("2024-01-05")},
			Interval{date("2024-02-01"), date("2024-02-05")},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, date("2024-01-10"), got)

	got, err = ParseDate("2024-01-10T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, date("2024-01-10"), got)

	_, err = ParseDate("10/01/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseInterval_RejectsDegenerateRanges(t *testing.T) {
	_, err := ParseInterval("2024-01-12", "2024-01-10")
	assert.Error(t, err)

	_, err = ParseInterval("2024-01-10", "2024-01-10")
	assert.Error(t, err)

	iv, err := ParseInterval("2024-01-10", "2024-01-12")
	require.NoError(t, err)
	assert.Equal(t, date("2024-01-10"), iv.Start)
	assert.Equal(t, date("2024-01-12"), iv.End)
}

func TestFilterAvailableRooms(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Type: "single", Status: constants.RoomStatusAvailable},
		{ID: 2, Type: "double", Status: constants.RoomStatusAvailable},
		{ID: 3, Type: "suite", Status: constants.RoomStatusReserved},
	}
	reservations := []models.Reservation{
		{RoomID: 1, StartDate: date("2024-01-11"), EndDate: date("2024-01-13"), Status: constants.ReservationStatusConfirmed},
		{RoomID: 2, StartDate: date("2024-01-11"), EndDate: date("2024-01-13"), Status: constants.ReservationStatusCancelled},
	}

	iv := Interval{date("2024-01-10"), date("2024-01-12")}

	available := FilterAvailableRooms(rooms, reservations, iv)
	require.Len(t, available, 1)
	// Room 1 is booked, room 3 is flagged reserved, only room 2 remains:
	// its reservation is cancelled and does not count.
	assert.Equal(t, uint(2), available[0].ID)
}

func TestFilterAvailableRooms_TouchingBoundary(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Type: "single", Status: constants.RoomStatusAvailable},
	}
	reservations := []models.Reservation{
		{RoomID: 1, StartDate: date("2024-01-12"), EndDate: date("2024-01-14"), Status: constants.ReservationStatusConfirmed},
	}

	available := FilterAvailableRooms(rooms, reservations, Interval{date("2024-01-10"), date("2024-01-12")})
	assert.Len(t, available, 1, "a reservation starting on the requested end date must not conflict")
}

func TestFilterAvailableRooms_KeepsCatalogOrder(t *testing.T) {
	rooms := []models.Room{
		{ID: 5, Status: constants.RoomStatusAvailable},
		{ID: 2, Status: constants.RoomStatusAvailable},
		{ID: 9, Status: constants.RoomStatusAvailable},
	}

	available := FilterAvailableRooms(rooms, nil, Interval{date("2024-01-10"), date("2024-01-12")})
	require.Len(t, available, 3)
	assert.Equal(t, uint(5), available[0].ID)
	assert.Equal(t, uint(2), available[1].ID)
	assert.Equal(t, uint(9), available[2].ID)
}
