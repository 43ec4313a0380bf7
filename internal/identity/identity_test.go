package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer, err := NewIssuer("s3cret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-42", "Ada")
	require.NoError(t, err)

	user, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "user-42", Name: "Ada"}, user)
}

func TestVerifyRejects(t *testing.T) {
	issuer, err := NewIssuer("s3cret", time.Hour)
	require.NoError(t, err)

	other, err := NewIssuer("another", time.Hour)
	require.NoError(t, err)

	forged, err := other.Issue("user-42", "")
	require.NoError(t, err)

	_, err = issuer.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	expired, err := issuer.Issue("user-42", "")
	require.NoError(t, err)

	issuer.now = time.Now

	_, err = issuer.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour)
	assert.ErrorIs(t, err, errMissingSecret)
}

func TestStatic(t *testing.T) {
	issuer, err := NewIssuer("s3cret", 0)
	require.NoError(t, err)

	token, err := issuer.Issue("user-42", "Ada")
	require.NoError(t, err)

	user, ok := NewStatic(token, "", "https://example.com/ada.png").Current()
	assert.True(t, ok)
	assert.Equal(t, User{
		ID:        "user-42",
		Name:      "Ada",
		AvatarURL: "https://example.com/ada.png",
	}, user)

	user, ok = NewStatic(token, "Countess", "").Current()
	assert.True(t, ok)
	assert.Equal(t, "Countess", user.Name)

	_, ok = NewStatic("", "Ada", "").Current()
	assert.False(t, ok)

	s := NewStatic("garbage", "Ada", "")
	_, ok = s.Current()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
}
