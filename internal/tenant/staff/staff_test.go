package staff

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawprint/internal/tenant/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	svc := NewTokenService("test-signing-key", time.Hour)
	principal := models.Principal{
		OrgID:    id.OrgID(uuid.New()),
		TenantID: id.TenantID(uuid.New()),
		Role:     models.RoleOrgStaff,
	}

	token, err := svc.Generate(principal, time.Now())
	require.NoError(t, err)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, principal.OrgID, got.OrgID)
	assert.Equal(t, principal.TenantID, got.TenantID)
	assert.Equal(t, principal.Role, got.Role)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-signing-key", time.Minute)
	principal := models.Principal{
		OrgID:    id.OrgID(uuid.New()),
		TenantID: id.TenantID(uuid.New()),
		Role:     models.RolePlatformAdmin,
	}

	token, err := svc.Generate(principal, time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer := NewTokenService("key-one", time.Hour)
	verifier := NewTokenService("key-two", time.Hour)

	token, err := issuer.Generate(models.Principal{
		OrgID:    id.OrgID(uuid.New()),
		TenantID: id.TenantID(uuid.New()),
		Role:     models.RoleOrgStaff,
	}, time.Now())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}
