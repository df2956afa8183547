package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop-api/pkg/helpers"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeCandidateRepo, *fakeBlacklistRepo) {
	t.Helper()
	repo := newFakeCandidateRepo()
	blacklist := newFakeBlacklistRepo()
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	return NewAuthService(repo, blacklist, jwt, nil, testLogger()), repo, blacklist
}

func registerTestCandidate(t *testing.T, repo *fakeCandidateRepo) string {
	t.Helper()
	cands := newCandidateService(repo, newFakeCityRepo())
	cand, err := cands.Register(context.Background(), RegisterCandidateInput{
		Email: "ana@example.com", Password: "secret123", FirstName: "Ana", LastName: "Silva",
	})
	require.NoError(t, err)
	return cand.ID()
}

func TestAuthenticate(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	id := registerTestCandidate(t, repo)

	cand, err := svc.Authenticate(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, id, cand.ID())

	_, err = svc.Authenticate(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	id := registerTestCandidate(t, repo)

	cand, pair, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, id, cand.ID())
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
}

func TestRefresh(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	id := registerTestCandidate(t, repo)

	_, pair, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)

	newPair, gotID, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.NotEmpty(t, newPair.AccessToken)

	_, _, err = svc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, repo, blacklist := newAuthFixture(t)
	registerTestCandidate(t, repo)

	_, pair, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)

	revoked, err := svc.IsBlacklisted(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(context.Background(), pair.AccessToken))
	assert.Len(t, blacklist.items, 1)

	revoked, err = svc.IsBlacklisted(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogoutIgnoresGarbageToken(t *testing.T) {
	svc, _, blacklist := newAuthFixture(t)

	assert.NoError(t, svc.Logout(context.Background(), "not-a-jwt"))
	assert.Empty(t, blacklist.items, "an unparseable token needs no revocation")
}
