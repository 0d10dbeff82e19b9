package auth

import (
	"testing"

	"petsit_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	owner := &models.User{BaseModel: models.BaseModel{ID: "u1"}, Role: models.UserRoleUser}
	other := &models.User{BaseModel: models.BaseModel{ID: "u2"}, Role: models.UserRoleUser}
	admin := &models.User{BaseModel: models.BaseModel{ID: "a1"}, Role: models.UserRoleAdmin}

	pet := &models.Pet{BaseModel: models.BaseModel{ID: "p1"}, OwnerID: owner.ID}

	assert.True(t, Can(owner, ActionUpdate, pet))
	assert.False(t, Can(other, ActionUpdate, pet))
	assert.True(t, Can(admin, ActionUpdate, pet))

	// Verification is admin-only, owning the resource is not enough.
	assert.False(t, Can(owner, ActionVerify, pet))
	assert.True(t, Can(admin, ActionVerify, pet))

	assert.False(t, Can(nil, ActionRead, pet))
	assert.False(t, Can(owner, ActionRead, nil))
}

func TestOwnedBy(t *testing.T) {
	actor := &models.User{BaseModel: models.BaseModel{ID: "u1"}, Role: models.UserRoleUser}
	assert.True(t, Can(actor, ActionRead, OwnedBy("u1")))
	assert.False(t, Can(actor, ActionRead, OwnedBy("u2")))
}
