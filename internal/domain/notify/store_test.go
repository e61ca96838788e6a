package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PushAndSelfExpiry(t *testing.T) {
	store := NewStore(30 * time.Millisecond)

	n := store.Push(KindSuccess, "Saved", "Product created")
	require.Len(t, store.Active(), 1)
	assert.NotEmpty(t, n.ID)

	// Expires without any dismiss call.
	assert.Eventually(t, func() bool {
		return len(store.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestStore_DismissBeforeExpiry(t *testing.T) {
	store := NewStore(time.Minute)

	n := store.Push(KindError, "Failed", "Remote unreachable")
	store.Dismiss(n.ID)
	assert.Empty(t, store.Active())

	// Repeat dismiss is a no-op.
	store.Dismiss(n.ID)
	assert.Empty(t, store.Active())
}

func TestStore_DismissRemovesOnlyTarget(t *testing.T) {
	store := NewStore(time.Minute)

	first := store.Push(KindInfo, "One", "")
	store.Push(KindInfo, "Two", "")

	store.Dismiss(first.ID)
	active := store.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Two", active[0].Title)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(time.Minute)
	store.Push(KindWarning, "A", "")
	store.Push(KindWarning, "B", "")

	store.Clear()
	assert.Empty(t, store.Active())
}

func TestStore_ExpiryAfterClearDoesNotPanic(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	store.Push(KindInfo, "A", "")
	store.Clear()

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, store.Active())
}
