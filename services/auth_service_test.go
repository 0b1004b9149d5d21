package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/errors"
	"hotelbooking/models"
)

func TestGoogleUserFromClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  map[string]interface{}
		want    string
		wantErr bool
	}{
		{
			"full claims",
			map[string]interface{}{"name": "Ana", "email": "ana@example.com", "email_verified": true},
			"Ana",
			false,
		},
		{
			"no profile scope omits name",
			map[string]interface{}{"email": "ana@example.com", "email_verified": true},
			"",
			false,
		},
		{
			"email_verified absent",
			map[string]interface{}{"email": "ana@example.com"},
			"",
			false,
		},
		{
			"email claim missing",
			map[string]interface{}{"name": "Ana"},
			"",
			true,
		},
		{
			"claims of unexpected types",
			map[string]interface{}{"name": 7, "email": "ana@example.com", "email_verified": "yes"},
			"",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GoogleUserFromClaims(tt.claims)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, "ana@example.com", got.Email)
		})
	}
}

func TestGoogleUserFromClaims_UnverifiedEmail(t *testing.T) {
	got, err := GoogleUserFromClaims(map[string]interface{}{
		"email":          "ana@example.com",
		"email_verified": false,
	})
	require.NoError(t, err)
	assert.False(t, got.VerifiedEmail)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateUser(db, models.User{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	// The unique index rejects the insert; the failure must surface as a
	// duplicate, not a generic database error.
	_, err = CreateUser(db, models.User{Name: "Other", Email: "Ana@Example.com", Password: "secret456"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUserExists, errors.GetAppError(err).Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
