package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiliafri0-dotcom/sayursegar02/models"
	"github.com/wiliafri0-dotcom/sayursegar02/repository"
)

func TestMemorySessionStore_IdentityWrittenOnce(t *testing.T) {
	store := repository.NewMemorySessionStore()
	ctx := context.Background()

	data, err := store.LoadIdentity(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.SaveIdentity(ctx, "s1", []byte(`{"role":"admin","is_authenticated":true}`)))
	err = store.SaveIdentity(ctx, "s1", []byte(`{"role":"buyer","name":"x","address":"y"}`))
	assert.ErrorIs(t, err, repository.ErrIdentityExists)

	data, err = store.LoadIdentity(ctx, "s1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"admin","is_authenticated":true}`, string(data))

	other, err := store.LoadIdentity(ctx, "s2")
	require.NoError(t, err)
	assert.Nil(t, other, "sessions are independent")
}

func TestMemorySessionStore_SubmissionLock(t *testing.T) {
	store := repository.NewMemorySessionStore()
	ctx := context.Background()

	ok, err := store.AcquireSubmission(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = store.AcquireSubmission(ctx, "s1")
	assert.False(t, ok)

	require.NoError(t, store.ReleaseSubmission(ctx, "s1"))
	ok, _ = store.AcquireSubmission(ctx, "s1")
	assert.True(t, ok)
}

func TestMemorySessionStore_Cart(t *testing.T) {
	store := repository.NewMemorySessionStore()
	ctx := context.Background()

	empty, err := store.LoadCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	l := models.Ledger{}.Add(models.Product{ID: uuid.New(), Name: "Kale", Price: 4000}, 2)
	require.NoError(t, store.SaveCart(ctx, "s1", l))

	loaded, err := store.LoadCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(8000), loaded.Total())
}
