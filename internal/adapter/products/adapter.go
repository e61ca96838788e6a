package products

import (
	"context"

	"adminconsole-go/internal/adapter/remote"
	"adminconsole-go/internal/domain/catalog"
	"adminconsole-go/internal/domain/thumbnail"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/logging"
)

// Acknowledgment codes for operations resolved on the device.
const (
	CodeLocalDelete = "LOCAL_DELETE"
	CodeLocalUpload = "LOCAL_UPLOAD"
)

// Adapter applies the local-first persistence policy: the local store
// answers listings and absorbs creates, the remote is a per-id
// fallback for records the device has never seen.
type Adapter struct {
	local     *LocalSource
	remote    Source
	validator *thumbnail.Validator
	logger    *logging.Logger
}

// NewAdapter wires the two sources under one policy.
func NewAdapter(local *LocalSource, remoteSrc Source, validator *thumbnail.Validator, logger *logging.Logger) *Adapter {
	return &Adapter{
		local:     local,
		remote:    remoteSrc,
		validator: validator,
		logger:    logger,
	}
}

// Catalog reads the full catalog from the local store. Never fails:
// unreadable storage means an empty catalog.
func (a *Adapter) Catalog(ctx context.Context) []catalog.Product {
	return a.local.List(ctx)
}

// Product looks locally first and falls back to the remote per-id
// fetch only when the local catalog has no matching record.
func (a *Adapter) Product(ctx context.Context, id string) (catalog.Product, error) {
	product, err := a.local.Get(ctx, id)
	if err == nil {
		return product, nil
	}
	if !errors.IsKind(err, errors.KindNotFound) {
		return catalog.Product{}, err
	}
	return a.remote.Get(ctx, id)
}

// Create synthesizes a new product in the local store. The remote API
// has no create endpoint, so it is never contacted.
func (a *Adapter) Create(ctx context.Context, title, description string, status bool) (catalog.Product, error) {
	product, err := a.local.Create(ctx, title, description, status)
	if err != nil {
		return catalog.Product{}, err
	}
	a.logger.InfoTag("catalog", "product created locally", "id", product.ID, "title", product.Title)
	return product, nil
}

// Update merges into the local record when it exists; otherwise the
// update is sent to the remote and its outcome surfaces as-is.
func (a *Adapter) Update(ctx context.Context, id string, patch catalog.Patch) (catalog.Product, error) {
	product, err := a.local.Update(ctx, id, patch)
	if err == nil {
		return product, nil
	}
	if !errors.IsKind(err, errors.KindNotFound) {
		return catalog.Product{}, err
	}
	return a.remote.Update(ctx, id, patch)
}

// Delete removes the local record, then tries the remote best-effort.
// The remote's acknowledgement is passed through when it answers;
// failure is swallowed behind a synthetic ack, because once the local
// removal held, deletion must never appear to fail.
func (a *Adapter) Delete(ctx context.Context, id string) (remote.Ack, error) {
	if err := a.local.Delete(ctx, id); err != nil {
		return remote.Ack{}, err
	}

	ack, err := a.remote.Delete(ctx, id)
	if err != nil {
		a.logger.InfoTag("catalog", "remote delete failed, keeping local result", "id", id, "error", err)
		return remote.Ack{
			CodeIntern: CodeLocalDelete,
			Message:    "product removed locally",
		}, nil
	}
	return ack, nil
}

// SetThumbnail validates the upload before any I/O, then attaches the
// encoded image to the local record.
func (a *Adapter) SetThumbnail(ctx context.Context, id string, upload thumbnail.Upload) (catalog.Product, remote.Ack, error) {
	accepted, err := a.validator.Validate(upload)
	if err != nil {
		return catalog.Product{}, remote.Ack{}, err
	}

	product, err := a.local.SetThumbnail(ctx, id, upload.OriginalName, accepted)
	if err != nil {
		return catalog.Product{}, remote.Ack{}, err
	}
	return product, remote.Ack{
		CodeIntern: CodeLocalUpload,
		Message:    "thumbnail updated locally",
	}, nil
}
