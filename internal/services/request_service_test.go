package services

import (
	"testing"

	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/services/dto"
	"petsit_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memRequestRepo keeps requests and assignments in maps, enough for the
// non-transactional lifecycle paths.
type memRequestRepo struct {
	requests    map[string]*models.SittingRequest
	assignments map[string]*models.SittingAssignment
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{
		requests:    map[string]*models.SittingRequest{},
		assignments: map[string]*models.SittingAssignment{},
	}
}

func (m *memRequestRepo) FindByID(_ *gorm.DB, id string) (*models.SittingRequest, error) {
	if r, ok := m.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, repositories.ErrRequestNotFound
}

func (m *memRequestRepo) FindByRequester(_ *gorm.DB, requesterID string) ([]models.SittingRequest, error) {
	var out []models.SittingRequest
	for _, r := range m.requests {
		if r.RequesterID == requesterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) FindPendingForSitter(_ *gorm.DB, sitterID string) ([]models.SittingRequest, error) {
	var out []models.SittingRequest
	for _, r := range m.requests {
		if r.Status == models.RequestStatusPending && r.RequesterID != sitterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) Create(_ *gorm.DB, req *models.SittingRequest) error {
	m.requests[req.ID] = req
	return nil
}

func (m *memRequestRepo) Update(_ *gorm.DB, req *models.SittingRequest) error {
	if _, ok := m.requests[req.ID]; !ok {
		return repositories.ErrRequestNotFound
	}
	m.requests[req.ID] = req
	return nil
}

func (m *memRequestRepo) TransitionStatus(_ *gorm.DB, id string, from, to models.RequestStatus) error {
	r, ok := m.requests[id]
	if !ok || r.Status != from {
		return repositories.ErrStatusConflict
	}
	r.Status = to
	return nil
}

func (m *memRequestRepo) Delete(_ *gorm.DB, id string) error {
	delete(m.requests, id)
	return nil
}

func (m *memRequestRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(m.requests)), nil
}

func (m *memRequestRepo) CreateAssignment(_ *gorm.DB, a *models.SittingAssignment) error {
	m.assignments[a.ID] = a
	return nil
}

func (m *memRequestRepo) FindAssignmentByID(_ *gorm.DB, id string) (*models.SittingAssignment, error) {
	a, ok := m.assignments[id]
	if !ok {
		return nil, repositories.ErrAssignmentNotFound
	}
	copied := *a
	if r, ok := m.requests[a.RequestID]; ok {
		reqCopy := *r
		copied.Request = &reqCopy
	}
	return &copied, nil
}

func (m *memRequestRepo) FindAssignmentsBySitter(_ *gorm.DB, sitterID string) ([]models.SittingAssignment, error) {
	var out []models.SittingAssignment
	for _, a := range m.assignments {
		if a.SitterID == sitterID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memRequestRepo) FindAssignment(_ *gorm.DB, requestID, sitterID string) (*models.SittingAssignment, error) {
	for _, a := range m.assignments {
		if a.RequestID == requestID && a.SitterID == sitterID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrAssignmentNotFound
}

func (m *memRequestRepo) UpdateAssignmentStatus(_ *gorm.DB, id string, status models.AssignmentStatus) error {
	a, ok := m.assignments[id]
	if !ok {
		return repositories.ErrAssignmentNotFound
	}
	a.Status = status
	return nil
}

func (m *memRequestRepo) UpdateAssignmentReview(_ *gorm.DB, id string, rating int, comment string) error {
	a, ok := m.assignments[id]
	if !ok {
		return repositories.ErrAssignmentNotFound
	}
	a.ReviewRating = &rating
	a.ReviewComment = &comment
	return nil
}

// memPetRepo serves a fixed pet set.
type memPetRepo struct {
	pets map[string]*models.Pet
}

func (m *memPetRepo) FindByID(_ *gorm.DB, id string) (*models.Pet, error) {
	if p, ok := m.pets[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrPetNotFound
}
func (m *memPetRepo) FindByOwner(_ *gorm.DB, ownerID string) ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range m.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (m *memPetRepo) Create(_ *gorm.DB, pet *models.Pet) error {
	m.pets[pet.ID] = pet
	return nil
}
func (m *memPetRepo) Update(_ *gorm.DB, _ *models.Pet) error { return nil }
func (m *memPetRepo) Delete(_ *gorm.DB, id string) error {
	delete(m.pets, id)
	return nil
}
func (m *memPetRepo) CountAll(_ *gorm.DB) (int64, error) { return int64(len(m.pets)), nil }

// memUserRepo only needs FindByID for notifications.
type memUserRepo struct {
	repositories.UserRepository
	users map[string]*models.User
}

func (m *memUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

// silentEmail drops every message.
type silentEmail struct{}

func (silentEmail) SendWelcome(_, _ string) error             { return nil }
func (silentEmail) SendRequestAccepted(_, _, _ string) error  { return nil }
func (silentEmail) SendRequestCompleted(_, _, _ string) error { return nil }

type lifecycleFixture struct {
	svc     RequestService
	repo    *memRequestRepo
	owner   *models.User
	sitter  *models.User
	pet     *models.Pet
	request *models.SittingRequest
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	owner := &models.User{BaseModel: models.BaseModel{ID: "owner-1"}, Email: "owner@test.com", FirstName: "Olga"}
	sitter := &models.User{BaseModel: models.BaseModel{ID: "sitter-1"}, Email: "sitter@test.com", FirstName: "Sam"}
	pet := &models.Pet{BaseModel: models.BaseModel{ID: "pet-1"}, OwnerID: owner.ID, Name: "Rex", AnimalType: "dog"}

	repo := newMemRequestRepo()
	request := &models.SittingRequest{
		BaseModel:     models.BaseModel{ID: "req-1"},
		RequesterID:   owner.ID,
		PetID:         pet.ID,
		StartDatetime: mustTime(t, "2026-03-10T09:00:00Z"),
		EndDatetime:   mustTime(t, "2026-03-10T17:00:00Z"),
		Status:        models.RequestStatusPending,
		Pet:           pet,
	}
	repo.requests[request.ID] = request

	svc := NewRequestService(
		repo,
		&memPetRepo{pets: map[string]*models.Pet{pet.ID: pet}},
		&memUserRepo{users: map[string]*models.User{owner.ID: owner, sitter.ID: sitter}},
		silentEmail{},
	)

	return &lifecycleFixture{svc: svc, repo: repo, owner: owner, sitter: sitter, pet: pet, request: request}
}

func assertHTTPCode(t *testing.T, err error, want int) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, want, appErr.HTTPCode)
}

func TestCreateRequestRejectsForeignPet(t *testing.T) {
	f := newLifecycleFixture(t)

	stranger := &models.User{BaseModel: models.BaseModel{ID: "stranger-1"}}
	_, err := f.svc.Create(nil, stranger, &dto.CreateRequestRequest{
		PetID:         f.pet.ID,
		StartDatetime: "2026-03-10T09:00:00Z",
		EndDatetime:   "2026-03-10T17:00:00Z",
	})
	require.Error(t, err)
	assertHTTPCode(t, err, 403)
}

func TestCreateRequestRejectsEmptyWindow(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.svc.Create(nil, f.owner, &dto.CreateRequestRequest{
		PetID:         f.pet.ID,
		StartDatetime: "2026-03-10T17:00:00Z",
		EndDatetime:   "2026-03-10T09:00:00Z",
	})
	require.Error(t, err)
	assertHTTPCode(t, err, 400)
}

func TestUpdateOnlyPending(t *testing.T) {
	f := newLifecycleFixture(t)
	f.request.Status = models.RequestStatusAccepted

	_, err := f.svc.Update(nil, f.owner, f.request.ID, &dto.UpdateRequestRequest{Notes: "changed"})
	require.Error(t, err)
	assertHTTPCode(t, err, 409)
}

func TestDeleteOnlyOwnerAndPending(t *testing.T) {
	f := newLifecycleFixture(t)

	err := f.svc.Delete(nil, f.sitter, f.request.ID)
	require.Error(t, err)
	assertHTTPCode(t, err, 403)

	f.request.Status = models.RequestStatusCompleted
	err = f.svc.Delete(nil, f.owner, f.request.ID)
	require.Error(t, err)
	assertHTTPCode(t, err, 409)
}

func TestRejectClosesPendingRequest(t *testing.T) {
	f := newLifecycleFixture(t)

	got, err := f.svc.Reject(nil, f.owner, f.request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, got.Status)

	// Rejecting twice is a conflict.
	_, err = f.svc.Reject(nil, f.owner, f.request.ID)
	require.Error(t, err)
	assertHTTPCode(t, err, 409)
}

// conflictRequestRepo loses every status flip, as if another writer
// committed between the read and the update.
type conflictRequestRepo struct {
	*memRequestRepo
}

func (c *conflictRequestRepo) TransitionStatus(_ *gorm.DB, _ string, _, _ models.RequestStatus) error {
	return repositories.ErrStatusConflict
}

func TestRejectLosingConcurrentFlipIsConflict(t *testing.T) {
	f := newLifecycleFixture(t)

	svc := NewRequestService(
		&conflictRequestRepo{memRequestRepo: f.repo},
		&memPetRepo{pets: map[string]*models.Pet{f.pet.ID: f.pet}},
		&memUserRepo{users: map[string]*models.User{f.owner.ID: f.owner, f.sitter.ID: f.sitter}},
		silentEmail{},
	)

	// The request still reads as pending, but the conditional update
	// matches zero rows.
	_, err := svc.Reject(nil, f.owner, f.request.ID)
	require.Error(t, err)
	assertHTTPCode(t, err, 409)
	assert.Equal(t, models.RequestStatusPending, f.repo.requests[f.request.ID].Status)
}

func TestReviewChecksInOrder(t *testing.T) {
	f := newLifecycleFixture(t)

	review := &dto.ReviewRequest{Rating: 5, Comment: "great"}

	// Unknown assignment is a 404 before any permission check.
	_, err := f.svc.Review(nil, f.owner, "missing", review)
	require.Error(t, err)
	assertHTTPCode(t, err, 404)

	assignment := &models.SittingAssignment{
		BaseModel: models.BaseModel{ID: "asg-1"},
		RequestID: f.request.ID,
		SitterID:  f.sitter.ID,
		Status:    models.AssignmentStatusAccepted,
	}
	f.repo.assignments[assignment.ID] = assignment

	// Not the requester: 403 even though the status is also wrong.
	_, err = f.svc.Review(nil, f.sitter, assignment.ID, review)
	require.Error(t, err)
	assertHTTPCode(t, err, 403)

	// Requester but not completed yet: 409.
	_, err = f.svc.Review(nil, f.owner, assignment.ID, review)
	require.Error(t, err)
	assertHTTPCode(t, err, 409)

	// Completed: review lands.
	assignment.Status = models.AssignmentStatusCompleted
	got, err := f.svc.Review(nil, f.owner, assignment.ID, review)
	require.NoError(t, err)
	require.NotNil(t, got.ReviewRating)
	assert.Equal(t, 5, *got.ReviewRating)
}
