package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"petsit_backend/internal/auth"
	"petsit_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a user directly, hashing the raw password placed in
// PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	hash, err := auth.HashPassword(user.PasswordHash)
	require.NoError(t, err)
	user.PasswordHash = hash

	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	require.NoError(t, db.Create(user).Error)
}

// CreateAndLoginUser inserts a user and logs in through the API, returning
// the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, firstName, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: password,
		FirstName:    firstName,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateOwnerWithPet provisions a logged-in owner plus one pet.
func CreateOwnerWithPet(t *testing.T, ts *TestServer, petType string) (string, *models.User, *models.Pet) {
	t.Helper()

	email := fmt.Sprintf("owner_%d@test.com", time.Now().UnixNano())
	token, owner := CreateAndLoginUser(t, ts, "Owner", email, "password123", models.UserRoleUser)

	pet := &models.Pet{
		OwnerID:    owner.ID,
		Name:       "Rex",
		AnimalType: petType,
	}
	require.NoError(t, ts.DB.Create(pet).Error)

	return token, owner, pet
}

// CreateSitterWithSlot provisions a logged-in sitter with one availability
// slot covering the given UTC date and times.
func CreateSitterWithSlot(t *testing.T, ts *TestServer, date, startTime, endTime string, petTypes []string) (string, *models.User, *models.AvailabilitySlot) {
	t.Helper()

	email := fmt.Sprintf("sitter_%d@test.com", time.Now().UnixNano())
	token, sitter := CreateAndLoginUser(t, ts, "Sitter", email, "password123", models.UserRoleUser)

	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)

	slot := &models.AvailabilitySlot{
		UserID:    sitter.ID,
		Date:      d,
		StartTime: startTime,
		EndTime:   endTime,
		MaxPets:   1,
	}
	require.NoError(t, slot.SetAcceptedPetTypes(petTypes))
	require.NoError(t, ts.DB.Create(slot).Error)

	return token, sitter, slot
}

// CreateSittingRequest inserts a pending request directly.
func CreateSittingRequest(t *testing.T, ts *TestServer, owner *models.User, pet *models.Pet, start, end string) *models.SittingRequest {
	t.Helper()

	startTime, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	endTime, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)

	request := &models.SittingRequest{
		RequesterID:   owner.ID,
		PetID:         pet.ID,
		StartDatetime: startTime,
		EndDatetime:   endTime,
		Status:        models.RequestStatusPending,
	}
	require.NoError(t, ts.DB.Create(request).Error)
	return request
}
