package userstore_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushfan/pkg/subscription"
	"github.com/dmitrymomot/pushfan/pkg/userstore"
)

const userDocument = `{
	"id": "user-doc-1",
	"pk": {"userId": "u-42"},
	"subscription": {
		"endpoint": "https://push.example.com/send/abc",
		"keys": {"auth": "auth-secret", "p256dh": "p256dh-key"}
	},
	"fiKeys": [{"AccessToken": "access-sandbox-1", "ItemId": "item-1", "Cursor": "c1"}]
}`

func TestUser_JSON(t *testing.T) {
	t.Parallel()

	var u userstore.User
	require.NoError(t, json.Unmarshal([]byte(userDocument), &u))

	assert.Equal(t, "user-doc-1", u.ID)
	assert.Equal(t, "u-42", u.PK.UserID)
	require.NotNil(t, u.Subscription)
	assert.Equal(t, "https://push.example.com/send/abc", u.Subscription.Endpoint)
	assert.Equal(t, "auth-secret", u.Subscription.Keys.Auth)
	assert.Equal(t, "p256dh-key", u.Subscription.Keys.P256dh)
	require.Len(t, u.FiKeys, 1)
	assert.Equal(t, userstore.FiKey{AccessToken: "access-sandbox-1", ItemID: "item-1", Cursor: "c1"}, u.FiKeys[0])
}

func TestMemoryStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("keeps provided id", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		saved, err := store.Save(context.Background(), userstore.User{ID: "abc", PK: userstore.PartitionKey{UserID: "u"}})
		require.NoError(t, err)
		assert.Equal(t, "abc", saved.ID)

		got, err := store.Get(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("assigns id when empty", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		saved, err := store.Save(context.Background(), userstore.User{})
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("replaces document with same id", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		_, err := store.Save(context.Background(), userstore.User{ID: "abc", PK: userstore.PartitionKey{UserID: "old"}})
		require.NoError(t, err)
		_, err = store.Save(context.Background(), userstore.User{ID: "abc", PK: userstore.PartitionKey{UserID: "new"}})
		require.NoError(t, err)

		got, err := store.Get(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "new", got.PK.UserID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("stored copy is isolated from caller", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		sub := &subscription.Candidate{Endpoint: "https://push.example.com/1"}
		keys := []userstore.FiKey{{ItemID: "item"}}
		_, err := store.Save(context.Background(), userstore.User{ID: "abc", Subscription: sub, FiKeys: keys})
		require.NoError(t, err)

		sub.Endpoint = "mutated"
		keys[0].ItemID = "mutated"

		got, err := store.Get(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "https://push.example.com/1", got.Subscription.Endpoint)
		assert.Equal(t, "item", got.FiKeys[0].ItemID)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		store := userstore.NewMemoryStore()
		_, err := store.Save(ctx, userstore.User{ID: "abc"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, store.Len())
	})

	t.Run("concurrent saves", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Save(context.Background(), userstore.User{})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, store.Len())
	})
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	_, err := userstore.NewMemoryStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, userstore.ErrNotFound)
}
