package products

import (
	"context"

	"adminconsole-go/internal/adapter/remote"
	"adminconsole-go/internal/domain/catalog"
)

// Source is the remote half of the persistence strategy. The adapter
// decides which backing location an operation reaches, keeping the
// local-first policy in one place.
type Source interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
	Update(ctx context.Context, id string, patch catalog.Patch) (catalog.Product, error)
	Delete(ctx context.Context, id string) (remote.Ack, error)
}

// remoteSource adapts the HTTP client to the Source contract.
type remoteSource struct {
	client *remote.Client
}

// NewRemoteSource wraps the remote API client.
func NewRemoteSource(client *remote.Client) Source {
	return &remoteSource{client: client}
}

func (s *remoteSource) Get(ctx context.Context, id string) (catalog.Product, error) {
	return s.client.GetProduct(ctx, id)
}

func (s *remoteSource) Update(ctx context.Context, id string, patch catalog.Patch) (catalog.Product, error) {
	return s.client.UpdateProduct(ctx, id, patch)
}

func (s *remoteSource) Delete(ctx context.Context, id string) (remote.Ack, error) {
	return s.client.DeleteProduct(ctx, id)
}
