package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	raw, err := Issue(testSecret, "account-123", true, time.Hour)
	require.NoError(t, err)

	claims, err := Verify(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, "account-123", claims.AccountID)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyKeepsNonAdminClaim(t *testing.T) {
	t.Parallel()

	raw, err := Issue(testSecret, "account-456", false, time.Hour)
	require.NoError(t, err)

	claims, err := Verify(testSecret, raw)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	raw, err := Issue(testSecret, "account-123", true, -time.Minute)
	require.NoError(t, err)

	_, err = Verify(testSecret, raw)
	assert.Error(t, err)
}

func TestVerifyWrongKey(t *testing.T) {
	t.Parallel()

	raw, err := Issue(testSecret, "account-123", true, time.Hour)
	require.NoError(t, err)

	otherSecret := []byte("ffffffffffffffffffffffffffffffff")
	_, err = Verify(otherSecret, raw)
	assert.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	_, err := Verify(testSecret, "not-a-token")
	assert.Error(t, err)
}
