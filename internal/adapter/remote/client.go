package remote

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"adminconsole-go/internal/domain/account"
	"adminconsole-go/internal/domain/catalog"
	"adminconsole-go/internal/platform/config"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/logging"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

// genericFailure labels remote errors whose body carried no usable
// message.
const genericFailure = "remote request failed"

// AuthResponse is the payload of every successful auth call.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *account.User `json:"user"`
}

// RegisterRequest is the registration payload sent to the remote.
type RegisterRequest struct {
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Password       string        `json:"password"`
	VerifyPassword string        `json:"verifyPassword"`
	Phone          account.Phone `json:"phone"`
}

// Ack is the remote acknowledgment shape shared by delete and
// thumbnail endpoints.
type Ack struct {
	CodeIntern string `json:"codeIntern"`
	Message    string `json:"message"`
}

type apiError struct {
	CodeIntern string `json:"codeIntern"`
	Message    string `json:"message"`
}

// Client talks to the remote console API. A bearer token, once set, is
// attached to every outgoing request; without one requests go out
// unauthenticated and the server decides.
type Client struct {
	http   *resty.Client
	logger *logging.Logger

	mutex sync.RWMutex
	token string
}

// NewClient builds a client against the configured base URL.
func NewClient(cfg config.RemoteConfig, logger *logging.Logger) *Client {
	c := &Client{logger: logger}

	c.http = resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout.Std()).
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if token := c.Token(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			return nil
		})

	return c
}

// SetToken installs the bearer credential for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mutex.Lock()
	c.token = token
	c.mutex.Unlock()
}

// ClearToken drops the bearer credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer credential.
func (c *Client) Token() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.token
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	const op = "remote.login"

	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/auth/login")
	if err := c.check(op, resp, err, errors.KindAuth); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	const op = "remote.register"

	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/users")
	if err := c.check(op, resp, err, errors.KindAuth); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// RefreshSession trades the current token for a fresh one.
func (c *Client) RefreshSession(ctx context.Context) (AuthResponse, error) {
	const op = "remote.refresh_session"

	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post("/auth/session")
	if err := c.check(op, resp, err, errors.KindAuth); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// GetProduct fetches one product by id. The response nests the record
// under a data envelope.
func (c *Client) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	const op = "remote.get_product"

	var out struct {
		Data catalog.Product `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/products/" + id)
	if err := c.check(op, resp, err, errors.KindNetwork); err != nil {
		return catalog.Product{}, err
	}
	return out.Data, nil
}

// UpdateProduct sends a partial update for a product the local catalog
// does not hold.
func (c *Client) UpdateProduct(ctx context.Context, id string, patch catalog.Patch) (catalog.Product, error) {
	const op = "remote.update_product"

	var out catalog.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&out).
		Put("/products/" + id)
	if err := c.check(op, resp, err, errors.KindNetwork); err != nil {
		return catalog.Product{}, err
	}
	return out, nil
}

// DeleteProduct asks the remote to remove a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) (Ack, error) {
	const op = "remote.delete_product"

	var out Ack
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Delete("/products/" + id)
	if err := c.check(op, resp, err, errors.KindNetwork); err != nil {
		return Ack{}, err
	}
	return out, nil
}

// UploadThumbnail sends the image as the multipart field "thumbnail".
func (c *Client) UploadThumbnail(ctx context.Context, id, fileName, mimeType string, data []byte) (Ack, error) {
	const op = "remote.upload_thumbnail"

	var out Ack
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartField("thumbnail", fileName, mimeType, bytes.NewReader(data)).
		SetResult(&out).
		Patch("/products/thumbnail/" + id)
	if err := c.check(op, resp, err, errors.KindNetwork); err != nil {
		return Ack{}, err
	}
	return out, nil
}

// check translates transport failures and non-2xx responses into the
// console taxonomy. rejectKind is the kind used when the server
// rejected the request with a usable message.
func (c *Client) check(op string, resp *resty.Response, err error, rejectKind errors.Kind) error {
	if err != nil {
		c.logger.WarnTag("remote", "request failed", "op", op, "error", err)
		return errors.Wrap(errors.KindNetwork, op, genericFailure, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		return errors.New(errors.KindNotFound, op, "resource not found")
	}

	var body apiError
	if parseErr := sonic.Unmarshal(resp.Body(), &body); parseErr != nil || body.Message == "" {
		c.logger.WarnTag("remote", "unparsable error body", "op", op, "status", resp.StatusCode())
		return errors.New(errors.KindNetwork, op, genericFailure)
	}
	return errors.New(rejectKind, op, body.Message)
}
