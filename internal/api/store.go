package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/vreeburg/warehouse-dashboard/internal/mapper"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AssignRole selects which assignment slot of an order to set.
type AssignRole string

const (
	AssignPicker AssignRole = "picker"
	AssignPacker AssignRole = "packer"
)

func (c *Client) ListProducts(ctx context.Context) ([]mapper.Raw, error) {
	var raws []mapper.Raw
	if err := c.do(ctx, http.MethodGet, "/products", nil, &raws, true); err != nil {
		return nil, err
	}
	return raws, nil
}

func (c *Client) CreateProduct(ctx context.Context, fields map[string]any) (mapper.Raw, error) {
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPost, "/products", fields, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, partial map[string]any) (mapper.Raw, error) {
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), partial, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]mapper.Raw, error) {
	var raws []mapper.Raw
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &raws, true); err != nil {
		return nil, err
	}
	return raws, nil
}

func (c *Client) CreateOrder(ctx context.Context, customerID int64, items []OrderItemInput) (mapper.Raw, error) {
	body := map[string]any{
		"customer_id": customerID,
		"items":       items,
	}
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPost, "/orders", body, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (mapper.Raw, error) {
	var raw mapper.Raw
	body := map[string]any{"status": status}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", id), body, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

// AssignWorker sets or clears (workerID nil) an order's picker or
// packer slot.
func (c *Client) AssignWorker(ctx context.Context, id int64, role AssignRole, workerID *int64) (mapper.Raw, error) {
	var raw mapper.Raw
	body := map[string]any{"role": role, "worker_id": workerID}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/assign", id), body, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) AddOrderItem(ctx context.Context, orderID, productID int64, quantity int) (mapper.Raw, error) {
	var raw mapper.Raw
	body := map[string]any{"product_id": productID, "quantity": quantity}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/items", orderID), body, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdateOrderItem(ctx context.Context, orderID, itemID int64, quantity int) (mapper.Raw, error) {
	var raw mapper.Raw
	body := map[string]any{"quantity": quantity}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/items/%d", orderID, itemID), body, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) RemoveOrderItem(ctx context.Context, orderID, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d/items/%d", orderID, itemID), nil, nil, true)
}

func (c *Client) ListWorkers(ctx context.Context) ([]mapper.Raw, error) {
	var raws []mapper.Raw
	if err := c.do(ctx, http.MethodGet, "/workers", nil, &raws, true); err != nil {
		return nil, err
	}
	return raws, nil
}

func (c *Client) CreateWorker(ctx context.Context, fields map[string]any) (mapper.Raw, error) {
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPost, "/workers", fields, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdateWorker(ctx context.Context, id int64, partial map[string]any) (mapper.Raw, error) {
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/workers/%d", id), partial, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) DeleteWorker(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/workers/%d", id), nil, nil, true)
}

func (c *Client) ListCustomers(ctx context.Context) ([]mapper.Raw, error) {
	var raws []mapper.Raw
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &raws, true); err != nil {
		return nil, err
	}
	return raws, nil
}

func (c *Client) CreateCustomer(ctx context.Context, fields map[string]any) (mapper.Raw, error) {
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPost, "/customers", fields, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, partial map[string]any) (mapper.Raw, error) {
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/customers/%d", id), partial, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]mapper.Raw, error) {
	var raws []mapper.Raw
	if err := c.do(ctx, http.MethodGet, "/users", nil, &raws, true); err != nil {
		return nil, err
	}
	return raws, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, partial map[string]any) (mapper.Raw, error) {
	var raw mapper.Raw
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), partial, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, true)
}

func (c *Client) GetSettings(ctx context.Context) (map[string]string, error) {
	var settings map[string]string
	if err := c.do(ctx, http.MethodGet, "/settings", nil, &settings, true); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) UpdateSettings(ctx context.Context, partial map[string]string) error {
	return c.do(ctx, http.MethodPatch, "/settings", partial, nil, true)
}

// UploadLogo sends the branding logo as a multipart form. It bypasses
// the JSON helper because of the body encoding.
func (c *Client) UploadLogo(ctx context.Context, filename string, content io.Reader) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("logo", filename)
	if err != nil {
		return fmt.Errorf("api: failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("api: failed to read logo content: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("api: failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/settings/logo", &buf)
	if err != nil {
		return fmt.Errorf("api: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrSessionInvalid
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	return nil
}

func (c *Client) DeleteLogo(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/settings/logo", nil, nil, true)
}
