package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"petsit_backend/internal/models"
	"petsit_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAcceptsFirstSitter(t *testing.T) {
	ts := GetTestServer(t)

	_, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	request := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-06-10T09:00:00Z", "2026-06-10T17:00:00Z")

	sitterToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-06-10", "08:00", "18:00", []string{"dog"})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/apply", sitterToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var assignment models.SittingAssignment
	require.NoError(t, json.Unmarshal([]byte(body), &assignment))
	assert.Equal(t, models.AssignmentStatusAccepted, assignment.Status)

	// Request has left the pending pool.
	var reloaded models.SittingRequest
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusAccepted, reloaded.Status)

	// A second sitter is turned away.
	secondToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-06-10", "08:00", "18:00", []string{"dog"})
	res2, body2 := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/apply", secondToken, nil)
	assert.Equal(t, http.StatusConflict, res2.StatusCode, body2)
	assert.Contains(t, body2, "no longer available")
}

func TestApplyConcurrentSittersOnlyOneWins(t *testing.T) {
	ts := GetTestServer(t)

	_, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	request := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-06-14T09:00:00Z", "2026-06-14T17:00:00Z")

	tokenA, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-06-14", "08:00", "18:00", []string{"dog"})
	tokenB, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-06-14", "08:00", "18:00", []string{"dog"})

	start := make(chan struct{})
	statuses := make(chan int, 2)
	var wg sync.WaitGroup
	for _, token := range []string{tokenA, tokenB} {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			<-start
			res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/apply", token, nil)
			statuses <- res.StatusCode
		}(token)
	}
	close(start)
	wg.Wait()
	close(statuses)

	var got []int
	for s := range statuses {
		got = append(got, s)
	}
	sort.Ints(got)
	assert.Equal(t, []int{http.StatusCreated, http.StatusConflict}, got)

	// Exactly one assignment made it through.
	var count int64
	require.NoError(t, ts.DB.Model(&models.SittingAssignment{}).Where("request_id = ?", request.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var reloaded models.SittingRequest
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusAccepted, reloaded.Status)
}

func TestApplyToOwnRequest(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	request := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-06-11T09:00:00Z", "2026-06-11T17:00:00Z")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/apply", ownerToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "your own request")
}

func TestCompleteAndReviewFlow(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	request := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-06-12T09:00:00Z", "2026-06-12T17:00:00Z")

	sitterToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-06-12", "08:00", "18:00", []string{"dog"})

	applyRes, applyBody := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/apply", sitterToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode, applyBody)

	var assignment models.SittingAssignment
	require.NoError(t, json.Unmarshal([]byte(applyBody), &assignment))

	// Reviewing before completion is a conflict.
	earlyRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/assignments/"+assignment.ID+"/review", ownerToken, map[string]interface{}{
		"rating": 5,
	})
	assert.Equal(t, http.StatusConflict, earlyRes.StatusCode)

	// Only the assigned sitter may complete.
	ownerCompleteRes, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/requests/assignments/"+assignment.ID+"/complete", ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, ownerCompleteRes.StatusCode)

	completeRes, completeBody := ts.SendRequest(t, http.MethodPut, "/api/v1/requests/assignments/"+assignment.ID+"/complete", sitterToken, nil)
	require.Equal(t, http.StatusOK, completeRes.StatusCode, completeBody)

	// Completing twice is a conflict.
	againRes, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/requests/assignments/"+assignment.ID+"/complete", sitterToken, nil)
	assert.Equal(t, http.StatusConflict, againRes.StatusCode)

	// The sitter cannot review their own work.
	sitterReviewRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/assignments/"+assignment.ID+"/review", sitterToken, map[string]interface{}{
		"rating": 5,
	})
	assert.Equal(t, http.StatusForbidden, sitterReviewRes.StatusCode)

	reviewRes, reviewBody := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/assignments/"+assignment.ID+"/review", ownerToken, map[string]interface{}{
		"rating":  5,
		"comment": "Rex came back happy",
	})
	require.Equal(t, http.StatusOK, reviewRes.StatusCode, reviewBody)
	assert.Contains(t, reviewBody, "Rex came back happy")

	// Rating bounds are enforced.
	badRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/assignments/"+assignment.ID+"/review", ownerToken, map[string]interface{}{
		"rating": 6,
	})
	assert.Equal(t, http.StatusBadRequest, badRes.StatusCode)
}

func TestRejectRequest(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	request := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-06-13T09:00:00Z", "2026-06-13T17:00:00Z")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/requests/"+request.ID+"/reject", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, string(models.RequestStatusRejected))

	// A rejected request cannot be applied to.
	sitterToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-06-13", "08:00", "18:00", []string{"dog"})
	applyRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/apply", sitterToken, nil)
	assert.Equal(t, http.StatusConflict, applyRes.StatusCode)
}

func TestMyRequestsAndAssignments(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner, dog := helpers.CreateOwnerWithPet(t, ts, "dog")
	request := helpers.CreateSittingRequest(t, ts, owner, dog, "2026-06-14T09:00:00Z", "2026-06-14T17:00:00Z")

	sitterToken, _, _ := helpers.CreateSitterWithSlot(t, ts, "2026-06-14", "08:00", "18:00", []string{"dog"})
	applyRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/apply", sitterToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	mineRes, mineBody := ts.SendRequest(t, http.MethodGet, "/api/v1/requests", ownerToken, nil)
	require.Equal(t, http.StatusOK, mineRes.StatusCode)
	assert.Contains(t, mineBody, request.ID)

	asgRes, asgBody := ts.SendRequest(t, http.MethodGet, "/api/v1/requests/my-assignments", sitterToken, nil)
	require.Equal(t, http.StatusOK, asgRes.StatusCode)
	assert.Contains(t, asgBody, request.ID)
}

func TestCreateRequestViaAPI(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, _, dog := helpers.CreateOwnerWithPet(t, ts, "dog")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/requests", ownerToken, map[string]interface{}{
		"pet_id":         dog.ID,
		"start_datetime": "2026-06-15T09:00:00Z",
		"end_datetime":   "2026-06-15T17:00:00Z",
		"notes":          "Feed at noon",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, "pending")

	// Inverted window is rejected.
	badRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests", ownerToken, map[string]interface{}{
		"pet_id":         dog.ID,
		"start_datetime": "2026-06-15T17:00:00Z",
		"end_datetime":   "2026-06-15T09:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, badRes.StatusCode)

	// Someone else's pet is off limits.
	otherEmail := fmt.Sprintf("otherreq_%d@test.com", time.Now().UnixNano())
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, "Other", otherEmail, "password123", models.UserRoleUser)
	foreignRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests", otherToken, map[string]interface{}{
		"pet_id":         dog.ID,
		"start_datetime": "2026-06-15T09:00:00Z",
		"end_datetime":   "2026-06-15T17:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, foreignRes.StatusCode)
}
