package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"petsit_backend/internal/models"
	"petsit_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	ts := GetTestServer(t)

	userEmail := fmt.Sprintf("plain_%d@test.com", time.Now().UnixNano())
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "Plain", userEmail, "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	assert.Contains(t, body, "Admin access required")
}

func TestAdminStats(t *testing.T) {
	ts := GetTestServer(t)

	adminEmail := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", adminEmail, "password123", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "userCount")
	assert.Contains(t, body, "petCount")
	assert.Contains(t, body, "requestCount")
}

func TestAdminCertificateVerification(t *testing.T) {
	ts := GetTestServer(t)

	// An owner with an unverified certificate inserted directly.
	ownerEmail := fmt.Sprintf("certowner_%d@test.com", time.Now().UnixNano())
	_, owner := helpers.CreateAndLoginUser(t, ts, "CertOwner", ownerEmail, "password123", models.UserRoleUser)

	cert := &models.Certificate{
		UserID:    owner.ID,
		Name:      "Pet First Aid",
		IssueDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, ts.DB.Create(cert).Error)

	adminEmail := fmt.Sprintf("certadmin_%d@test.com", time.Now().UnixNano())
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "CertAdmin", adminEmail, "password123", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/certificates/"+cert.ID+"/verify", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"verified":true`)

	// Verifying again is idempotent.
	res2, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/certificates/"+cert.ID+"/verify", adminToken, nil)
	assert.Equal(t, http.StatusOK, res2.StatusCode)

	// Public profile now shows the certificate.
	pubRes, pubBody := ts.SendRequest(t, http.MethodGet, "/api/v1/users/"+owner.ID, "", nil)
	require.Equal(t, http.StatusOK, pubRes.StatusCode)
	assert.Contains(t, pubBody, "Pet First Aid")
	// But never contact details.
	assert.NotContains(t, pubBody, ownerEmail)
}

func TestPublicProfileHidesUnverifiedCertificates(t *testing.T) {
	ts := GetTestServer(t)

	ownerEmail := fmt.Sprintf("unvcert_%d@test.com", time.Now().UnixNano())
	_, owner := helpers.CreateAndLoginUser(t, ts, "Unv", ownerEmail, "password123", models.UserRoleUser)

	cert := &models.Certificate{
		UserID:    owner.ID,
		Name:      "Unverified Diploma",
		IssueDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, ts.DB.Create(cert).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users/"+owner.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "Unverified Diploma")
}
