package products

import (
	"context"
	"sync"
	"time"

	"adminconsole-go/internal/domain/catalog"
	"adminconsole-go/internal/domain/thumbnail"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/logging"
	"adminconsole-go/internal/platform/storage"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// StorageKey names the persisted catalog entry.
const StorageKey = "local-products"

// localUserID marks records created without a server round trip.
const localUserID = "local-user"

// LocalSource is the durable catalog copy. It is authoritative for
// listing because the remote API has no list endpoint. Every mutation
// holds the mutex across re-read and write-back so overlapping
// requests never clobber each other through a stale snapshot.
type LocalSource struct {
	kv     storage.KV
	logger *logging.Logger

	mu sync.Mutex
}

// NewLocalSource builds a local catalog source over the KV store.
func NewLocalSource(kv storage.KV, logger *logging.Logger) *LocalSource {
	return &LocalSource{kv: kv, logger: logger}
}

// List returns the full persisted catalog. Storage trouble degrades to
// an empty catalog instead of failing the caller.
func (s *LocalSource) List(ctx context.Context) []catalog.Product {
	list, err := s.load(ctx)
	if err != nil {
		s.logger.WarnTag("storage", "catalog entry unreadable, treating as empty", "error", err)
		return []catalog.Product{}
	}
	return list
}

// Get returns the matching persisted record.
func (s *LocalSource) Get(ctx context.Context, id string) (catalog.Product, error) {
	for _, p := range s.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, errors.New(errors.KindNotFound, "products.local.get", "product not found: "+id)
}

// Create synthesizes a new record with a generated id and current
// timestamps and appends it to the persisted catalog.
func (s *LocalSource) Create(ctx context.Context, title, description string, status bool) (catalog.Product, error) {
	now := time.Now()
	product := catalog.Product{
		ID:          uuid.NewString(),
		UserID:      localUserID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx)
	list = append(list, product)
	if err := s.persist(ctx, list); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

// Update merges the patch into the persisted record.
func (s *LocalSource) Update(ctx context.Context, id string, patch catalog.Patch) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx)
	for i := range list {
		if list[i].ID == id {
			patch.Apply(&list[i])
			if err := s.persist(ctx, list); err != nil {
				return catalog.Product{}, err
			}
			return list[i], nil
		}
	}
	return catalog.Product{}, errors.New(errors.KindNotFound, "products.local.update", "product not found: "+id)
}

// Delete removes the persisted record. Absent ids are a no-op.
func (s *LocalSource) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx)
	filtered := list[:0:0]
	for _, p := range list {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(list) {
		return nil
	}
	return s.persist(ctx, filtered)
}

// SetThumbnail attaches an accepted thumbnail to the persisted record.
func (s *LocalSource) SetThumbnail(ctx context.Context, id, originalName string, accepted thumbnail.Result) (catalog.Product, error) {
	now := time.Now()
	attachment := &catalog.Thumbnail{
		ID:           uuid.NewString(),
		UserID:       localUserID,
		URL:          accepted.DataURL,
		Size:         accepted.Size,
		OriginalName: originalName,
		MimeType:     accepted.MimeType,
		Key:          "local-" + uuid.NewString(),
		IDModule:     "local",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx)
	for i := range list {
		if list[i].ID == id {
			list[i].Thumbnail = attachment
			list[i].IDThumbnail = attachment.ID
			list[i].UpdatedAt = now
			if err := s.persist(ctx, list); err != nil {
				return catalog.Product{}, err
			}
			return list[i], nil
		}
	}
	return catalog.Product{}, errors.New(errors.KindNotFound, "products.local.set_thumbnail", "product not found: "+id)
}

func (s *LocalSource) load(ctx context.Context) ([]catalog.Product, error) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if storage.IsNotFound(err) {
			return []catalog.Product{}, nil
		}
		return nil, errors.Wrap(errors.KindIO, "products.local.load", "failed to read catalog entry", err)
	}

	var list []catalog.Product
	if err := sonic.Unmarshal(raw, &list); err != nil {
		return nil, errors.Wrap(errors.KindIO, "products.local.load", "failed to parse catalog entry", err)
	}
	return list, nil
}

func (s *LocalSource) persist(ctx context.Context, list []catalog.Product) error {
	raw, err := sonic.Marshal(list)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "products.local.persist", "failed to serialize catalog", err)
	}
	if err := s.kv.Put(ctx, StorageKey, raw); err != nil {
		return errors.Wrap(errors.KindStorage, "products.local.persist", "failed to write catalog entry", err)
	}
	return nil
}
