package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"hotelbooking/constants"
	"hotelbooking/errors"
	"hotelbooking/models"
)

var validate = validatorv10.New()

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// ValidateUser checks a user record before it is persisted.
func ValidateUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name must not be empty", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email must not be empty", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password must not be empty", nil)
	}

	if len(user.Password) < MinPasswordLength {
		return errors.NewAppError(errors.ErrCodeValidation, "password must have at least 6 characters", nil)
	}

	if user.Role != "" && user.Role != constants.RoleClient && user.Role != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil)
	}

	return nil
}

// ValidateRoom checks an incoming room payload.
func ValidateRoom(room *models.Room) error {
	if room.Type == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room type must not be empty", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "price must not be negative", nil)
	}

	if room.Status != "" && !constants.ValidRoomStatus(room.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "invalid room status: "+room.Status, nil)
	}

	return nil
}

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
