package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := NewService(StaticVerifier{Username: "admin", Password: "hunter2"})

	token, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.Valid(token))
}

func TestLoginRejected(t *testing.T) {
	svc := NewService(StaticVerifier{Username: "admin", Password: "hunter2"})

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("someone", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidUnknownToken(t *testing.T) {
	svc := NewService(StaticVerifier{Username: "a", Password: "b"})
	assert.False(t, svc.Valid("nope"))
	assert.False(t, svc.Valid(""))
}

func TestLogout(t *testing.T) {
	svc := NewService(StaticVerifier{Username: "a", Password: "b"})
	token, err := svc.Login("a", "b")
	require.NoError(t, err)

	svc.Logout(token)
	assert.False(t, svc.Valid(token))

	// Unknown token logout is a no-op.
	svc.Logout("nope")
}

// The verifier is pluggable: any implementation can replace the static
// pair without changing the session logic.
type allowAll struct{}

func (allowAll) Verify(string, string) bool { return true }

func TestCustomVerifier(t *testing.T) {
	svc := NewService(allowAll{})
	token, err := svc.Login("anyone", "anything")
	require.NoError(t, err)
	assert.True(t, svc.Valid(token))
}
