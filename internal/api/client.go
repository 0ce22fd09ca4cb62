// Package api is the REST client for the 499 Store backend. It issues one
// request per call: no retry, no coalescing, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"store499_app/internal/apperrors"
	"store499_app/internal/models"
)

const (
	authPath     = "/api/auth"
	productsPath = "/api/products"
	usersPath    = "/api/users"
	storesPath   = "/api/stores"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, authPath+"/login", "", creds, &user)
	if err != nil {
		return models.User{}, err
	}
	if user.ID == "" || user.Token == "" {
		return models.User{}, &apperrors.ServerError{Status: http.StatusOK, Message: "Invalid response from server"}
	}
	return user, nil
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, authPath+"/register", "", input, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, upd ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, usersPath+"/update", token, upd, nil)
}

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, productsPath, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ListStores(ctx context.Context, token string) ([]models.StoreAddress, error) {
	var stores []models.StoreAddress
	if err := c.do(ctx, http.MethodGet, storesPath, token, nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *Client) AddStore(ctx context.Context, token string, addr models.StoreAddress) (models.StoreAddress, error) {
	var created models.StoreAddress
	if err := c.do(ctx, http.MethodPost, storesPath, token, addr, &created); err != nil {
		return models.StoreAddress{}, err
	}
	return created, nil
}

func (c *Client) UpdateStore(ctx context.Context, token, id string, addr models.StoreAddress) (models.StoreAddress, error) {
	var updated models.StoreAddress
	if err := c.do(ctx, http.MethodPut, storesPath+"/"+id, token, addr, &updated); err != nil {
		return models.StoreAddress{}, err
	}
	return updated, nil
}

func (c *Client) DeleteStore(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, storesPath+"/"+id, token, nil, nil)
}

// CreateAdmin provisions an admin account. Superadmin only.
func (c *Client) CreateAdmin(ctx context.Context, token string, input CreateAdminInput) error {
	return c.do(ctx, http.MethodPost, usersPath+"/create-admin", token, input, nil)
}

// CreateProduct adds a catalog row from the admin dashboard.
func (c *Client) CreateProduct(ctx context.Context, token string, p models.Product) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, productsPath, token, p, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// do performs one request. Transport failures become NetworkError; non-2xx
// responses surface the backend's message as a ServerError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &apperrors.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode >= 400 {
		return &apperrors.ServerError{Status: resp.StatusCode, Message: serverMessage(data, resp.StatusCode)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

func serverMessage(data []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("Request failed (%d)", status)
}
