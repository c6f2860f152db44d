// Package client is a thin JSON client for the dine-in API. The view layer
// uses it as its query gateway; the admin helpers cover the write routes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dinein/models"
	"dinein/services"
)

type Client struct {
	base string
	hc   *http.Client
}

// New returns a client for the API rooted at base, e.g.
// "http://localhost:5000".
func New(base string) *Client {
	return &Client{base: base, hc: &http.Client{}}
}

// Error is the server's error envelope paired with the response status. A
// 404 unwraps to services.ErrNotFound so callers can errors.Is it.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return services.ErrNotFound
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		return &Error{Status: resp.StatusCode, Message: resp.Status}
	}
	return &Error{Status: resp.StatusCode, Message: envelope.Error}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, want int) error {
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Category(ctx context.Context, id int64) (*models.Category, error) {
	var out models.Category
	path := fmt.Sprintf("/api/categories/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CategoryDishes(ctx context.Context, categoryID int64) ([]models.Dish, error) {
	var out []models.Dish
	path := fmt.Sprintf("/api/categories/%d/dishes", categoryID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, name, imageURL string) (*models.Category, error) {
	body := map[string]string{"name": name, "image_url": imageURL}
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", body, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/categories/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusOK)
}

func (c *Client) CreateDish(ctx context.Context, name, imageURL string, price, categoryID int64) (*models.Dish, error) {
	body := map[string]any{
		"name":        name,
		"image_url":   imageURL,
		"price":       price,
		"category_id": categoryID,
	}
	var out models.Dish
	if err := c.do(ctx, http.MethodPost, "/api/dishes", body, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, name, mobileNumber string) (*models.Customer, error) {
	body := map[string]string{"name": name, "mobile_number": mobileNumber}
	var out models.Customer
	if err := c.do(ctx, http.MethodPost, "/api/customers", body, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CustomerByMobile(ctx context.Context, mobileNumber string) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodGet, "/api/customers/"+mobileNumber, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
