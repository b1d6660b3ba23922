package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/beingsaumyadeep/py-commerce/internal/session"
)

func newTestStore(t *testing.T) (*session.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &session.Store{Client: client}, mr
}

func TestCreateAndResolve(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "a@b.com")
	require.NoError(t, err)

	email, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", email)
}

func TestResolveUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Resolve(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	require.ErrorIs(t, err, session.ErrUnauthenticated)
}

func TestResolveExpiredToken(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "a@b.com")
	require.NoError(t, err)

	mr.FastForward(session.TTL + time.Minute)

	_, err = store.Resolve(ctx, token)
	require.ErrorIs(t, err, session.ErrUnauthenticated)
}

func TestTokensAreOpaqueAndUnique(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t1, err := store.Create(ctx, "a@b.com")
	require.NoError(t, err)
	t2, err := store.Create(ctx, "a@b.com")
	require.NoError(t, err)

	require.Len(t, t1, 32)
	require.Regexp(t, "^[0-9a-f]{32}$", t1)
	require.NotEqual(t, t1, t2)
}
