package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueDevToken(t *testing.T) {
	token, err := IssueDevToken("user-1", "secret", "vetclinic", time.Hour)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "vetclinic", claims.Issuer)
}

func TestIssueDevToken_RequiresSubjectAndSecret(t *testing.T) {
	_, err := IssueDevToken("", "secret", "", time.Hour)
	assert.Error(t, err)
	_, err = IssueDevToken("user-1", "", "", time.Hour)
	assert.Error(t, err)
}
