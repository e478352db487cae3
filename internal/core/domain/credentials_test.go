package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_IsComplete(t *testing.T) {
	var nilCred *Credential
	assert.False(t, nilCred.IsComplete())
	assert.False(t, (&Credential{AccessToken: "a"}).IsComplete())
	assert.False(t, (&Credential{RefreshToken: "r"}).IsComplete())
	assert.True(t, (&Credential{AccessToken: "a", RefreshToken: "r"}).IsComplete())
}

func TestCredential_Clone(t *testing.T) {
	var nilCred *Credential
	assert.Nil(t, nilCred.Clone())

	orig := &Credential{AccessToken: "a", RefreshToken: "r", Name: "Ana"}
	cp := orig.Clone()
	cp.AccessToken = "b"

	assert.Equal(t, "a", orig.AccessToken)
	assert.Equal(t, "r", cp.RefreshToken)
}

// The persisted layout uses the login response's field names.
func TestCredential_PersistedLayout(t *testing.T) {
	data, err := json.Marshal(Credential{AccessToken: "T1", RefreshToken: "R1", Name: "Ana"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"token":"T1","refreshToken":"R1","name":"Ana"}`, string(data))
}

func TestSessionState(t *testing.T) {
	assert.False(t, SessionLoggedOut.IsLoggedIn())
	assert.True(t, SessionValid.IsLoggedIn())
	assert.True(t, SessionExpired.IsLoggedIn())
	assert.Equal(t, "Logged out", SessionLoggedOut.Description())
	assert.Equal(t, "Unknown", SessionState("x").Description())
}
