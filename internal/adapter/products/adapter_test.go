package products

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"testing"

	"adminconsole-go/internal/adapter/remote"
	"adminconsole-go/internal/domain/catalog"
	"adminconsole-go/internal/domain/thumbnail"
	"adminconsole-go/internal/platform/config"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/storage"
	platformtest "adminconsole-go/internal/platform/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type fakeRemote struct {
	getFn    func(id string) (catalog.Product, error)
	updateFn func(id string, patch catalog.Patch) (catalog.Product, error)
	deleteFn func(id string) (remote.Ack, error)

	deleteCalls int
}

func (f *fakeRemote) Get(_ context.Context, id string) (catalog.Product, error) {
	if f.getFn == nil {
		return catalog.Product{}, errors.New(errors.KindNotFound, "fake.get", "product not found: "+id)
	}
	return f.getFn(id)
}

func (f *fakeRemote) Update(_ context.Context, id string, patch catalog.Patch) (catalog.Product, error) {
	if f.updateFn == nil {
		return catalog.Product{}, errors.New(errors.KindNotFound, "fake.update", "product not found: "+id)
	}
	return f.updateFn(id, patch)
}

func (f *fakeRemote) Delete(_ context.Context, id string) (remote.Ack, error) {
	f.deleteCalls++
	if f.deleteFn == nil {
		return remote.Ack{CodeIntern: "DELETED", Message: "product removed"}, nil
	}
	return f.deleteFn(id)
}

func newTestAdapter(t *testing.T, kv storage.KV, fake *fakeRemote) *Adapter {
	t.Helper()
	logger := platformtest.SetupTestLogger(t)
	validator := thumbnail.NewValidator(config.DefaultConfig().Thumbnail, logger)
	return NewAdapter(NewLocalSource(kv, logger), fake, validator, logger)
}

func TestAdapter_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t, storage.NewMemory(), &fakeRemote{})

	created, err := adapter.Create(ctx, "Lamp", "Desk lamp", true)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, localUserID, created.UserID)
	assert.False(t, created.UpdatedAt.Before(created.CreatedAt))

	got, err := adapter.Product(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Lamp", got.Title)
	assert.Equal(t, "Desk lamp", got.Description)
	assert.True(t, got.Status)
}

func TestAdapter_CatalogDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Put(ctx, StorageKey, []byte("{corrupt")))

	adapter := newTestAdapter(t, kv, &fakeRemote{})
	assert.Empty(t, adapter.Catalog(ctx))
}

func TestAdapter_ProductFallsBackToRemote(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRemote{
		getFn: func(id string) (catalog.Product, error) {
			return catalog.Product{ID: id, Title: "Remote Lamp"}, nil
		},
	}
	adapter := newTestAdapter(t, storage.NewMemory(), fake)

	got, err := adapter.Product(ctx, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "Remote Lamp", got.Title)
}

func TestAdapter_ProductAbsentEverywhere(t *testing.T) {
	adapter := newTestAdapter(t, storage.NewMemory(), &fakeRemote{})

	_, err := adapter.Product(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestAdapter_UpdateLocalRecord(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRemote{}
	adapter := newTestAdapter(t, storage.NewMemory(), fake)

	created, err := adapter.Create(ctx, "Lamp", "Desk lamp", true)
	require.NoError(t, err)

	status := false
	updated, err := adapter.Update(ctx, created.ID, catalog.Patch{Status: &status})
	require.NoError(t, err)
	assert.False(t, updated.Status)
	assert.Equal(t, "Lamp", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestAdapter_UpdateFallsBackToRemote(t *testing.T) {
	ctx := context.Background()
	var remoteCalled bool
	fake := &fakeRemote{
		updateFn: func(id string, patch catalog.Patch) (catalog.Product, error) {
			remoteCalled = true
			return catalog.Product{ID: id, Status: *patch.Status}, nil
		},
	}
	adapter := newTestAdapter(t, storage.NewMemory(), fake)

	status := false
	_, err := adapter.Update(ctx, "srv-1", catalog.Patch{Status: &status})
	require.NoError(t, err)
	assert.True(t, remoteCalled)
}

func TestAdapter_RemoteUpdateFailureSurfaces(t *testing.T) {
	fake := &fakeRemote{
		updateFn: func(string, catalog.Patch) (catalog.Product, error) {
			return catalog.Product{}, errors.New(errors.KindNetwork, "fake.update", "remote request failed")
		},
	}
	adapter := newTestAdapter(t, storage.NewMemory(), fake)

	title := "Ghost"
	_, err := adapter.Update(context.Background(), "srv-1", catalog.Patch{Title: &title})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNetwork))
}

func TestAdapter_DeleteSwallowsRemoteFailure(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRemote{
		deleteFn: func(string) (remote.Ack, error) {
			return remote.Ack{}, errors.New(errors.KindNetwork, "fake.delete", "remote request failed")
		},
	}
	adapter := newTestAdapter(t, storage.NewMemory(), fake)

	created, err := adapter.Create(ctx, "Lamp", "Desk lamp", true)
	require.NoError(t, err)

	ack, err := adapter.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, CodeLocalDelete, ack.CodeIntern)
	assert.Empty(t, adapter.Catalog(ctx))
}

func TestAdapter_DeleteUnknownIDIsSuccess(t *testing.T) {
	fake := &fakeRemote{}
	adapter := newTestAdapter(t, storage.NewMemory(), fake)

	_, err := adapter.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.deleteCalls)
}

func TestAdapter_DeletePassesRemoteAckThrough(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRemote{
		deleteFn: func(string) (remote.Ack, error) {
			return remote.Ack{CodeIntern: "DELETED", Message: "removed upstream"}, nil
		},
	}
	adapter := newTestAdapter(t, storage.NewMemory(), fake)

	created, err := adapter.Create(ctx, "Lamp", "Desk lamp", true)
	require.NoError(t, err)

	ack, err := adapter.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "DELETED", ack.CodeIntern)
	assert.Equal(t, "removed upstream", ack.Message)
	assert.Empty(t, adapter.Catalog(ctx))
}

func TestAdapter_SetThumbnail(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t, storage.NewMemory(), &fakeRemote{})

	created, err := adapter.Create(ctx, "Lamp", "Desk lamp", true)
	require.NoError(t, err)

	data, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)

	product, ack, err := adapter.SetThumbnail(ctx, created.ID, thumbnail.Upload{
		Data:         data,
		OriginalName: "pixel.png",
		MimeType:     "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, CodeLocalUpload, ack.CodeIntern)
	require.NotNil(t, product.Thumbnail)
	assert.Equal(t, "pixel.png", product.Thumbnail.OriginalName)
	assert.Contains(t, product.Thumbnail.URL, "data:image/png;base64,")
	assert.Equal(t, product.Thumbnail.ID, product.IDThumbnail)

	// Attachment survives a fresh read.
	got, err := adapter.Product(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Thumbnail)
}

func TestAdapter_SetThumbnailRejectsBeforeIO(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t, storage.NewMemory(), &fakeRemote{})

	created, err := adapter.Create(ctx, "Lamp", "Desk lamp", true)
	require.NoError(t, err)

	// Oversized payload.
	_, _, err = adapter.SetThumbnail(ctx, created.ID, thumbnail.Upload{
		Data:     make([]byte, 11*1024*1024),
		MimeType: "image/png",
	})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindValidation))

	// Wrong MIME type.
	_, _, err = adapter.SetThumbnail(ctx, created.ID, thumbnail.Upload{
		Data:     []byte("plain text"),
		MimeType: "text/plain",
	})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindValidation))

	// Record untouched by the rejected uploads.
	got, err := adapter.Product(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Thumbnail)
}

func TestAdapter_SetThumbnailUnknownProduct(t *testing.T) {
	adapter := newTestAdapter(t, storage.NewMemory(), &fakeRemote{})

	data, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)

	_, _, err = adapter.SetThumbnail(context.Background(), "missing", thumbnail.Upload{
		Data:         data,
		OriginalName: "pixel.png",
		MimeType:     "image/png",
	})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestLocalSource_ConcurrentCreatesAllPersist(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	source := NewLocalSource(kv, platformtest.SetupTestLogger(t))

	const writers = 16
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := source.Create(ctx, fmt.Sprintf("product-%d", n), "created concurrently", true)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, source.List(ctx), writers)
}

func TestLocalSource_ConcurrentDeletesLeaveOthersIntact(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	source := NewLocalSource(kv, platformtest.SetupTestLogger(t))

	keeper, err := source.Create(ctx, "keeper", "must survive the churn", true)
	require.NoError(t, err)

	ids := make([]string, 8)
	for i := range ids {
		p, err := source.Create(ctx, fmt.Sprintf("victim-%d", i), "deleted concurrently", true)
		require.NoError(t, err)
		ids[i] = p.ID
	}

	var wg sync.WaitGroup
	wg.Add(len(ids))
	for _, id := range ids {
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, source.Delete(ctx, id))
		}(id)
	}
	wg.Wait()

	list := source.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, keeper.ID, list[0].ID)
}
