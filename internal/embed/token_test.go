package embed

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

const testSecret = "test-embed-secret"

func testIDs(t *testing.T) (id.OrgID, id.TenantID) {
	t.Helper()
	return id.OrgID(uuid.New()), id.TenantID(uuid.New())
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	orgID, tenantID := testIDs(t)

	token, err := issuer.Issue(orgID, tenantID, Filters{Species: models.SpeciesDog}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	capability, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, orgID, capability.OrgID)
	assert.Equal(t, tenantID, capability.TenantID)
	assert.Equal(t, models.SpeciesDog, capability.Filters.Species)
}

func TestIssueWithoutFilters(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	orgID, tenantID := testIDs(t)

	token, err := issuer.Issue(orgID, tenantID, Filters{}, 0)
	require.NoError(t, err)

	capability, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Empty(t, capability.Filters.Species)
}

func TestIssueRejectsUnknownSpecies(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	orgID, tenantID := testIDs(t)

	_, err := issuer.Issue(orgID, tenantID, Filters{Species: "Dragon"}, time.Hour)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
}

func TestIssueRequiresTenant(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	_, err := issuer.Issue(id.OrgID(uuid.New()), id.TenantID{}, Filters{}, time.Hour)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	orgID, tenantID := testIDs(t)

	token, err := issuer.Issue(orgID, tenantID, Filters{}, time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	_, err = issuer.Verify(token)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeTokenExpired, dErrors.CodeOf(err))
}

func TestVerifyTamperedPayload(t *testing.T) {
	// Payload bytes altered after issuance while the signature is left as
	// originally computed: a widened scope must not verify.
	issuer := NewIssuer(testSecret, time.Hour)
	orgID, tenantID := testIDs(t)

	token, err := issuer.Issue(orgID, tenantID, Filters{Species: models.SpeciesDog}, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	widened, err := issuer.Issue(orgID, tenantID, Filters{}, time.Hour)
	require.NoError(t, err)
	widenedParts := strings.Split(widened, ".")
	require.Len(t, widenedParts, 3)

	tampered := parts[0] + "." + widenedParts[1] + "." + parts[2]

	_, err = issuer.Verify(tampered)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeTokenTampered, dErrors.CodeOf(err))
}

func TestVerifyTamperedSignature(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	orgID, tenantID := testIDs(t)

	token, err := issuer.Issue(orgID, tenantID, Filters{Species: models.SpeciesDog}, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = issuer.Verify(tampered)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeTokenTampered, dErrors.CodeOf(err))
}

func TestVerifyWrongKey(t *testing.T) {
	orgID, tenantID := testIDs(t)
	token, err := NewIssuer(testSecret, time.Hour).Issue(orgID, tenantID, Filters{}, time.Hour)
	require.NoError(t, err)

	_, err = NewIssuer("rotated-secret", time.Hour).Verify(token)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeTokenTampered, dErrors.CodeOf(err))
}

func TestVerifyMissingToken(t *testing.T) {
	_, err := NewIssuer(testSecret, time.Hour).Verify("")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeTokenMissing, dErrors.CodeOf(err))
}
