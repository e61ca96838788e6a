package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adminconsole-go/internal/domain/account"
	"adminconsole-go/internal/platform/config"
	"adminconsole-go/internal/platform/errors"
	platformtest "adminconsole-go/internal/platform/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.RemoteConfig{
		BaseURL: server.URL,
		Timeout: config.Duration(2 * time.Second),
	}, platformtest.SetupTestLogger(t))
}

func TestClient_LoginSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "jwt-token",
			"user":  map[string]any{"id": "u-1", "name": "Jane Doe", "email": "jane@example.com"},
		})
	}))

	out, err := client.Login(context.Background(), "jane@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, "Jane Doe", out.User.Name)
}

func TestClient_LoginRejectedSurfacesMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"codeIntern": "AUTH001",
			"message":    "invalid credentials",
		})
	}))

	_, err := client.Login(context.Background(), "jane@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindAuth))
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestClient_UnparsableErrorBodyFallsBack(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))

	_, err := client.Login(context.Background(), "jane@example.com", "Secret123")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNetwork))
	assert.Contains(t, err.Error(), genericFailure)
}

func TestClient_BearerTokenAttached(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "p-1"}})
	}))

	client.SetToken("jwt-token")
	_, err := client.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", gotAuth)

	client.ClearToken()
	_, err = client.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_GetProductUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/p-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "p-1", "title": "Lamp", "status": true},
		})
	}))

	product, err := client.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Lamp", product.Title)
	assert.True(t, product.Status)
}

func TestClient_GetProductNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestClient_DeleteProduct(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"codeIntern": "OK", "message": "removed",
		})
	}))

	ack, err := client.DeleteProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "removed", ack.Message)
}

func TestClient_UploadThumbnailMultipart(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/products/thumbnail/p-1", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("thumbnail")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "pixel.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"codeIntern": "OK", "message": "uploaded",
		})
	}))

	ack, err := client.UploadThumbnail(context.Background(), "p-1", "pixel.png", "image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "uploaded", ack.Message)
}

func TestClient_TransportFailure(t *testing.T) {
	client := NewClient(config.RemoteConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: config.Duration(200 * time.Millisecond),
	}, platformtest.SetupTestLogger(t))

	_, err := client.Login(context.Background(), "jane@example.com", "Secret123")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNetwork))
}

func TestClient_RegisterSendsStructuredPhone(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)

		var body RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "BR", body.Phone.Country)
		assert.Equal(t, "11", body.Phone.DDD)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "jwt-token",
			"user":  map[string]any{"name": "Jane Doe"},
		})
	}))

	out, err := client.Register(context.Background(), RegisterRequest{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Password:       "Secret123",
		VerifyPassword: "Secret123",
		Phone:          account.Phone{Country: "BR", DDD: "11", Number: "987654321"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out.User.Name)
}
