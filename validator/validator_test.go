package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelbooking/constants"
	"hotelbooking/errors"
	"hotelbooking/models"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     models.User
		wantCode errors.ErrorCode
	}{
		{
			"valid user",
			models.User{Name: "Ana", Email: "ana@example.com", Password: "secret123"},
			"",
		},
		{
			"missing name",
			models.User{Email: "ana@example.com", Password: "secret123"},
			errors.ErrCodeRequiredField,
		},
		{
			"missing email",
			models.User{Name: "Ana", Password: "secret123"},
			errors.ErrCodeRequiredField,
		},
		{
			"malformed email",
			models.User{Name: "Ana", Email: "not-an-email", Password: "secret123"},
			errors.ErrCodeInvalidEmail,
		},
		{
			"short password",
			models.User{Name: "Ana", Email: "ana@example.com", Password: "12345"},
			errors.ErrCodeValidation,
		},
		{
			"unknown role",
			models.User{Name: "Ana", Email: "ana@example.com", Password: "secret123", Role: "owner"},
			errors.ErrCodeInvalidRole,
		},
		{
			"admin role accepted",
			models.User{Name: "Ana", Email: "ana@example.com", Password: "secret123", Role: constants.RoleAdmin},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(&tt.user)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			appErr := errors.GetAppError(err)
			if assert.NotNil(t, appErr) {
				assert.Equal(t, tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestValidateRoom(t *testing.T) {
	tests := []struct {
		name    string
		room    models.Room
		wantErr bool
	}{
		{"valid room", models.Room{Type: "double", Price: 100, Status: constants.RoomStatusAvailable}, false},
		{"empty status allowed", models.Room{Type: "double", Price: 100}, false},
		{"missing type", models.Room{Price: 100}, true},
		{"negative price", models.Room{Type: "double", Price: -5}, true},
		{"bad status", models.Room{Type: "double", Price: 100, Status: "occupied"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoom(&tt.room)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
