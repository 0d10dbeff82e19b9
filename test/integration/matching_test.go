package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"petsit_backend/internal/models"
	"petsit_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availableRequests(t *testing.T, ts *helpers.TestServer, token string) []models.SittingRequest {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/requests/available", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var requests []models.SittingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &requests))
	return requests
}

func TestMatchingFiltersByCoverage(t *testing.T) {
	ts := GetTestServer(t)

	_, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	covered := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-05-10T09:00:00Z", "2026-05-10T17:00:00Z")
	tooEarly := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-05-10T07:00:00Z", "2026-05-10T12:00:00Z")
	wrongDay := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-05-11T09:00:00Z", "2026-05-11T12:00:00Z")

	sitterToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-05-10", "08:00", "18:00", []string{"dog"})

	matched := availableRequests(t, ts, sitterToken)

	ids := make(map[string]bool, len(matched))
	for _, r := range matched {
		ids[r.ID] = true
	}
	assert.True(t, ids[covered.ID], "request inside the slot window should match")
	assert.False(t, ids[tooEarly.ID], "request starting before the slot should not match")
	assert.False(t, ids[wrongDay.ID], "request on another day should not match")
}

func TestMatchingFiltersByPetType(t *testing.T) {
	ts := GetTestServer(t)

	_, owner, cat := helpers.CreateOwnerWithPet(t, ts, "cat")
	catRequest := helpers.CreateSittingRequest(t, ts, owner, cat, "2026-05-12T09:00:00Z", "2026-05-12T17:00:00Z")

	dogOnlyToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-05-12", "08:00", "18:00", []string{"dog"})

	matched := availableRequests(t, ts, dogOnlyToken)
	for _, r := range matched {
		assert.NotEqual(t, catRequest.ID, r.ID, "cat request should be invisible to a dog-only sitter")
	}
}

func TestMatchingExcludesOwnRequests(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	ownRequest := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-05-13T09:00:00Z", "2026-05-13T17:00:00Z")

	// The owner also has a slot covering their own request.
	slotRes, slotBody := ts.SendRequest(t, http.MethodPost, "/api/v1/availability", ownerToken, map[string]interface{}{
		"date":               "2026-05-13",
		"start_time":         "08:00",
		"end_time":           "18:00",
		"accepted_pet_types": []string{"dog"},
	})
	require.Equal(t, http.StatusCreated, slotRes.StatusCode, slotBody)

	matched := availableRequests(t, ts, ownerToken)
	for _, r := range matched {
		assert.NotEqual(t, ownRequest.ID, r.ID, "own requests never show up in the open pool")
	}
}

func TestMatchingExcludesNonPending(t *testing.T) {
	ts := GetTestServer(t)

	_, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	request := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-05-14T09:00:00Z", "2026-05-14T17:00:00Z")
	require.NoError(t, ts.DB.Model(&models.SittingRequest{}).Where("id = ?", request.ID).Update("status", models.RequestStatusAccepted).Error)

	sitterToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-05-14", "08:00", "18:00", []string{"dog"})

	matched := availableRequests(t, ts, sitterToken)
	for _, r := range matched {
		assert.NotEqual(t, request.ID, r.ID)
	}
}
