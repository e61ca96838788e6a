package account

import (
	"context"
	"testing"
	"time"

	"adminconsole-go/internal/domain/events"
	"adminconsole-go/internal/platform/storage"
	platformtest "adminconsole-go/internal/platform/testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, kv storage.KV) *Store {
	t.Helper()
	return NewStore(kv, events.New(), platformtest.SetupTestLogger(t))
}

func TestStore_SetAuthPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	store := newTestStore(t, kv)

	user := &User{ID: "u-1", Name: "Jane Doe", Email: "jane@example.com"}
	require.NoError(t, store.SetAuth(ctx, user, "token-123"))

	session := store.Session()
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "token-123", session.Token)
	assert.Equal(t, "Jane Doe", session.ActorName())

	// Simulated reload: fresh store over the same storage.
	reloaded := newTestStore(t, kv)
	require.NoError(t, reloaded.Rehydrate(ctx))

	session = reloaded.Session()
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "token-123", session.Token)
	assert.Equal(t, "jane@example.com", session.User.Email)
}

func TestStore_ClearAuthPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	store := newTestStore(t, kv)

	require.NoError(t, store.SetAuth(ctx, &User{Name: "Jane"}, "token-123"))
	require.NoError(t, store.ClearAuth(ctx))

	reloaded := newTestStore(t, kv)
	require.NoError(t, reloaded.Rehydrate(ctx))

	session := reloaded.Session()
	assert.False(t, session.IsAuthenticated)
	assert.Empty(t, session.Token)
	assert.Equal(t, "unknown user", session.ActorName())
}

func TestStore_RehydrateMissingEntry(t *testing.T) {
	store := newTestStore(t, storage.NewMemory())
	require.NoError(t, store.Rehydrate(context.Background()))
	assert.False(t, store.Session().IsAuthenticated)
}

func TestStore_RehydrateUnparsableEntry(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Put(ctx, StorageKey, []byte("not json")))

	store := newTestStore(t, kv)
	require.NoError(t, store.Rehydrate(ctx))
	assert.False(t, store.Session().IsAuthenticated)
}

func TestStore_RehydrateExpiredToken(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	seed := newTestStore(t, kv)
	require.NoError(t, seed.SetAuth(ctx, &User{Name: "Jane"}, token))

	store := newTestStore(t, kv)
	require.NoError(t, store.Rehydrate(ctx))
	assert.False(t, store.Session().IsAuthenticated)
}

func TestStore_SignedInEvent(t *testing.T) {
	ctx := context.Background()
	bus := events.New()
	store := NewStore(storage.NewMemory(), bus, platformtest.SetupTestLogger(t))

	var got events.AccountEventData
	require.NoError(t, bus.Subscribe(events.EventSignedIn, func(data events.AccountEventData) {
		got = data
	}))

	require.NoError(t, store.SetAuth(ctx, &User{Name: "Jane Doe", Email: "jane@example.com"}, "t"))
	assert.Equal(t, "Jane Doe", got.UserName)
}
