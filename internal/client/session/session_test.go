package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/metadata"
	"github.com/strumind/console/internal/common"
	"github.com/strumind/console/internal/logging"
)

// ---- helpers ----

func setupMeta(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:session_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return metadata.NewSQLiteRepository(db)
}

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

// ---- fake API client ----

type fakeAPI struct {
	LoginToken string
	LoginErr   error

	User    *models.User
	UserErr error

	LoginCalls int
	UserCalls  int
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	f.LoginCalls++
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.LoginToken, nil
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	f.UserCalls++
	if f.UserErr != nil {
		return nil, f.UserErr
	}
	return f.User, nil
}

func newStore(t *testing.T, api *fakeAPI) (*Store, metadata.Repository) {
	t.Helper()
	meta := setupMeta(t)
	s := NewStore(meta, testLogger())
	s.SetAPI(api)
	return s, meta
}

// ---- tests ----

func TestLogin_Success_PersistsTokenAndResolvesUser(t *testing.T) {
	api := &fakeAPI{
		LoginToken: "tok-1",
		User:       &models.User{ID: "u1", Username: "alice"},
	}
	s, meta := newStore(t, api)
	ctx := context.Background()

	user, err := s.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	stored, err := meta.Get(ctx, common.TokenStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored)

	assert.True(t, s.LoggedIn())
	assert.True(t, s.Resolved())
	assert.Equal(t, "tok-1", s.AccessToken())
	assert.Equal(t, "alice", s.LastUsername(ctx))
}

func TestLogin_RejectedCredentials_LeavesNoState(t *testing.T) {
	api := &fakeAPI{LoginErr: common.ErrUnauthorized}
	s, meta := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = meta.Get(ctx, common.TokenStorageKey)
	assert.ErrorIs(t, err, common.ErrNotFound, "no token may be persisted")
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.AccessToken())
}

func TestLogin_UserResolutionFailure_RollsBack(t *testing.T) {
	api := &fakeAPI{LoginToken: "tok-1", UserErr: errors.New("boom")}
	s, meta := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "s3cret")
	require.Error(t, err)

	_, err = meta.Get(ctx, common.TokenStorageKey)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.False(t, s.LoggedIn())
}

func TestRestore_NoPersistedToken(t *testing.T) {
	api := &fakeAPI{}
	s, _ := newStore(t, api)

	require.NoError(t, s.Restore(context.Background()))

	assert.True(t, s.Resolved())
	assert.False(t, s.LoggedIn())
	assert.Zero(t, api.UserCalls)
}

func TestRestore_ValidToken_ResolvesUser(t *testing.T) {
	api := &fakeAPI{User: &models.User{ID: "u1", Username: "alice"}}
	s, meta := newStore(t, api)
	ctx := context.Background()

	require.NoError(t, meta.Set(ctx, common.TokenStorageKey, signedToken(t, time.Now().Add(time.Hour))))

	require.NoError(t, s.Restore(ctx))

	assert.True(t, s.Resolved())
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "alice", s.User().Username)

	exp, ok := s.ExpiresAt()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

func TestRestore_RejectedToken_ClearsSilently(t *testing.T) {
	api := &fakeAPI{UserErr: common.ErrUnauthorized}
	s, meta := newStore(t, api)
	ctx := context.Background()

	require.NoError(t, meta.Set(ctx, common.TokenStorageKey, "stale"))

	require.NoError(t, s.Restore(ctx), "a rejected token is not an error")

	assert.True(t, s.Resolved())
	assert.False(t, s.LoggedIn())
	_, err := meta.Get(ctx, common.TokenStorageKey)
	assert.ErrorIs(t, err, common.ErrNotFound, "stale token must be cleared")
}

func TestRestore_TokenExpiredByClaims_SkipsServerRoundtrip(t *testing.T) {
	api := &fakeAPI{User: &models.User{Username: "alice"}}
	s, meta := newStore(t, api)
	ctx := context.Background()

	require.NoError(t, meta.Set(ctx, common.TokenStorageKey, signedToken(t, time.Now().Add(-time.Hour))))

	require.NoError(t, s.Restore(ctx))

	assert.Zero(t, api.UserCalls, "expired token must not be sent")
	assert.False(t, s.LoggedIn())
	_, err := meta.Get(ctx, common.TokenStorageKey)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRestore_ServerUnavailable_KeepsTokenForNextStart(t *testing.T) {
	api := &fakeAPI{UserErr: common.ErrUnavailable}
	s, meta := newStore(t, api)
	ctx := context.Background()

	require.NoError(t, meta.Set(ctx, common.TokenStorageKey, "tok-1"))

	require.NoError(t, s.Restore(ctx))

	assert.True(t, s.Resolved())
	assert.False(t, s.LoggedIn())

	stored, err := meta.Get(ctx, common.TokenStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored)
}

func TestInvalidate_ClearsOnceAndIsIdempotent(t *testing.T) {
	api := &fakeAPI{LoginToken: "tok-1", User: &models.User{Username: "alice"}}
	s, meta := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	s.Invalidate(ctx)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.AccessToken())
	_, err = meta.Get(ctx, common.TokenStorageKey)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Further 401s on in-flight requests must not blow up.
	assert.NotPanics(t, func() { s.Invalidate(ctx) })
}

func TestLogout_ClearsStateWithoutServerCall(t *testing.T) {
	api := &fakeAPI{LoginToken: "tok-1", User: &models.User{Username: "alice"}}
	s, meta := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	calls := api.LoginCalls + api.UserCalls
	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.AccessToken())
	assert.Equal(t, calls, api.LoginCalls+api.UserCalls, "logout is local only")
	_, err = meta.Get(ctx, common.TokenStorageKey)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
