package services

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"hotelbooking/config"
	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/validator"
)

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetUserByEmail looks a user up by case-insensitive, trimmed email.
func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", NormalizeEmail(email)).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, errors.NewAppError(errors.ErrCodeUserNotFound, "no user with email "+email, result.Error)
	}
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword compares a stored hash against a submitted password.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// CreateUser registers a new account. Email is stored lowercase; the
// password is stored only as a bcrypt hash.
func CreateUser(db *gorm.DB, input models.User) (models.User, error) {
	input.Email = NormalizeEmail(input.Email)

	if err := validator.ValidateUser(&input); err != nil {
		return models.User{}, err
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     constants.RoleClient,
	}
	if err := db.Create(&user).Error; err != nil {
		// The unique index on email is the authority on duplicates; a
		// read-then-insert check would race with concurrent registrations.
		if _, lookupErr := GetUserByEmail(db, user.Email); lookupErr == nil {
			return models.User{}, errors.NewAppError(errors.ErrCodeUserExists,
				"email already registered", err)
		}
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}
	return user, nil
}

// CreateGoogleUser provisions an account for a first-time Google sign-in.
// No usable password is stored; such accounts authenticate via Google only.
func CreateGoogleUser(db *gorm.DB, name, email string) (models.User, error) {
	user := models.User{
		Name:  name,
		Email: NormalizeEmail(email),
		Role:  constants.RoleClient,
	}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}
	return user, nil
}

// GoogleUserFromClaims extracts the identity from verified ID token claims.
// Tokens issued without the profile scope carry no name, and email_verified
// may be absent, so every claim is read with the two-value assertion.
func GoogleUserFromClaims(claims map[string]interface{}) (dto.GoogleUser, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return dto.GoogleUser{}, errors.NewAppError(errors.ErrCodeValidation,
			"token carries no email claim", nil)
	}
	name, _ := claims["name"].(string)
	verified, _ := claims["email_verified"].(bool)
	return dto.GoogleUser{Name: name, Email: email, VerifiedEmail: verified}, nil
}

// VerifyGoogleIDToken validates a Google ID token against our client id.
func VerifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, tokenID, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid Google token", err)
	}
	return payload, nil
}
