package service

import (
	"context"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/testutil"
	"gradebook_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAuthService(env.users, env.sessions, env.cfg)

	testutil.CreateUser(t, env.db, "alice", "s3cret", false, model.GroupStudents)

	res, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.User.Username)

	stored, err := env.users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)

	claims, user, err := svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.True(t, user.InGroup(model.GroupStudents))

	require.NoError(t, svc.Logout(ctx, res.Token))
	_, _, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, util.ErrSessionExpired)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAuthService(env.users, env.sessions, env.cfg)

	u := testutil.CreateUser(t, env.db, "alice", "s3cret", false)

	_, err := svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", u.ID).Update("is_active", false).Error)
	_, err = svc.Login(ctx, "alice", "s3cret")
	assert.ErrorIs(t, err, util.ErrAccountDisabled)
}

func TestAuthenticateRejectsForeignTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAuthService(env.users, env.sessions, env.cfg)

	u := testutil.CreateStudent(t, env.db, "alice")

	// signed correctly but never registered as a session
	token, err := util.GenerateJWT(u, "not-a-session", env.cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, util.ErrSessionExpired)

	sid, err := env.sessions.Create(ctx, u.ID, time.Hour)
	require.NoError(t, err)
	token, err = util.GenerateJWT(u, sid, "some-other-secret", time.Hour)
	require.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, util.ErrSessionExpired)

	assert.NoError(t, svc.Logout(ctx, "garbage"))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, 7, 20*time.Millisecond)
	require.NoError(t, err)

	uid, err := store.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint(7), uid)

	time.Sleep(40 * time.Millisecond)
	_, err = store.Lookup(ctx, id)
	assert.ErrorIs(t, err, util.ErrSessionExpired)
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewUserService(env.users)

	u, err := svc.Create(ctx, &CreateUserRequest{
		Username: "ta1",
		Password: "password",
		Groups:   []string{model.GroupTeachingAssistants},
	})
	require.NoError(t, err)
	assert.NotEqual(t, "password", u.Password)

	loaded, err := env.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleTA, util.NewPrincipal(loaded).Role())

	_, err = svc.Create(ctx, &CreateUserRequest{Username: "ta1", Password: "password"})
	assert.ErrorIs(t, err, util.ErrUsernameTaken)

	_, err = svc.Create(ctx, &CreateUserRequest{Username: "x", Password: "password", Groups: []string{"Wizards"}})
	assert.ErrorIs(t, err, util.ErrUnknownGroup)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
