package app

import (
	"context"
	"strings"

	"adminconsole-go/internal/adapter/remote"
	"adminconsole-go/internal/domain/catalog"
	"adminconsole-go/internal/domain/notify"
	"adminconsole-go/internal/domain/thumbnail"
	"adminconsole-go/internal/domain/validate"
)

// LoadCatalog replaces the in-memory catalog with the persisted copy.
// Never fails: storage trouble means an empty catalog.
func (a *AppContext) LoadCatalog(ctx context.Context) {
	a.Catalog.SetLoading(true)
	defer a.Catalog.SetLoading(false)

	a.Catalog.ReplaceAll(a.Products.Catalog(ctx))
}

// GetProduct resolves one product, local first, remote as fallback.
func (a *AppContext) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	return a.Products.Product(ctx, id)
}

// CreateProduct validates the fields, persists a new record and mirrors
// it into the in-memory catalog.
func (a *AppContext) CreateProduct(ctx context.Context, input validate.ProductInput) (catalog.Product, error) {
	if err := a.Validator.Struct(input); err != nil {
		return catalog.Product{}, err
	}

	product, err := a.Products.Create(ctx, input.Title, input.Description, input.Status)
	if err != nil {
		a.Catalog.SetError(err.Error())
		a.notifyFailure("Could not create product", err)
		return catalog.Product{}, err
	}

	a.Catalog.Insert(product)
	a.Notifications.Push(notify.KindSuccess, "Product created", product.Title)
	return product, nil
}

// UpdateProduct persists a partial update and mirrors it in memory.
func (a *AppContext) UpdateProduct(ctx context.Context, id string, patch catalog.Patch) (catalog.Product, error) {
	product, err := a.Products.Update(ctx, id, patch)
	if err != nil {
		a.Catalog.SetError(err.Error())
		a.notifyFailure("Could not update product", err)
		return catalog.Product{}, err
	}

	a.Catalog.ApplyUpdate(id, patch)
	a.Notifications.Push(notify.KindSuccess, "Product updated", product.Title)
	return product, nil
}

// DeleteProduct removes the record. Once the local removal held the
// operation reports success regardless of the remote outcome.
func (a *AppContext) DeleteProduct(ctx context.Context, id string) (remote.Ack, error) {
	ack, err := a.Products.Delete(ctx, id)
	if err != nil {
		a.Catalog.SetError(err.Error())
		a.notifyFailure("Could not delete product", err)
		return remote.Ack{}, err
	}

	a.Catalog.Remove(id)
	a.Notifications.Push(notify.KindSuccess, "Product deleted", ack.Message)
	return ack, nil
}

// SetProductThumbnail validates and attaches an image to the product.
func (a *AppContext) SetProductThumbnail(ctx context.Context, id string, upload thumbnail.Upload) (remote.Ack, error) {
	product, ack, err := a.Products.SetThumbnail(ctx, id, upload)
	if err != nil {
		a.notifyFailure("Could not update thumbnail", err)
		return remote.Ack{}, err
	}

	a.Catalog.ApplyUpdate(id, catalog.Patch{Thumbnail: product.Thumbnail})
	a.Notifications.Push(notify.KindSuccess, "Thumbnail updated", product.Title)
	return ack, nil
}

// SearchProducts filters the in-memory catalog by a case-insensitive
// title/description match and an optional status filter.
func (a *AppContext) SearchProducts(input validate.SearchInput) ([]catalog.Product, error) {
	if err := a.Validator.Struct(input); err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	matches := []catalog.Product{}
	for _, p := range a.Catalog.Products() {
		switch input.Status {
		case "active":
			if !p.Status {
				continue
			}
		case "inactive":
			if p.Status {
				continue
			}
		}
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// BulkDelete removes up to fifty products in one request. Each actual
// removal surfaces as its own activity record.
func (a *AppContext) BulkDelete(ctx context.Context, input validate.BulkDeleteInput) (int, error) {
	if err := a.Validator.Struct(input); err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range input.IDs {
		if _, ok := a.Catalog.Product(id); ok {
			removed++
		}
		if _, err := a.Products.Delete(ctx, id); err != nil {
			return removed, err
		}
		a.Catalog.Remove(id)
	}
	a.Notifications.Push(notify.KindSuccess, "Products deleted", "")
	return removed, nil
}

// BulkSetStatus flips the active flag on a set of products.
func (a *AppContext) BulkSetStatus(ctx context.Context, input validate.BulkStatusInput) (int, error) {
	if err := a.Validator.Struct(input); err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range input.IDs {
		status := input.Status
		if _, err := a.Products.Update(ctx, id, catalog.Patch{Status: &status}); err != nil {
			return updated, err
		}
		a.Catalog.ApplyUpdate(id, catalog.Patch{Status: &status})
		updated++
	}
	a.Notifications.Push(notify.KindSuccess, "Products updated", "")
	return updated, nil
}
