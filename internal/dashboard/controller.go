package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/vreeburg/warehouse-dashboard/internal/api"
	"github.com/vreeburg/warehouse-dashboard/internal/csvio"
	"github.com/vreeburg/warehouse-dashboard/internal/importer"
	"github.com/vreeburg/warehouse-dashboard/internal/mapper"
	"github.com/vreeburg/warehouse-dashboard/internal/record"
	"github.com/vreeburg/warehouse-dashboard/internal/view"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrRoleIncompatible  = errors.New("worker role is not compatible with this assignment")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// StoreClient is the slice of the remote store contract the controller
// depends on. *api.Client satisfies it; tests substitute mocks.
type StoreClient interface {
	ListProducts(ctx context.Context) ([]mapper.Raw, error)
	CreateProduct(ctx context.Context, fields map[string]any) (mapper.Raw, error)
	UpdateProduct(ctx context.Context, id int64, partial map[string]any) (mapper.Raw, error)
	ListOrders(ctx context.Context) ([]mapper.Raw, error)
	CreateOrder(ctx context.Context, customerID int64, items []api.OrderItemInput) (mapper.Raw, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (mapper.Raw, error)
	AssignWorker(ctx context.Context, id int64, role api.AssignRole, workerID *int64) (mapper.Raw, error)
	ListWorkers(ctx context.Context) ([]mapper.Raw, error)
	CreateWorker(ctx context.Context, fields map[string]any) (mapper.Raw, error)
	UpdateWorker(ctx context.Context, id int64, partial map[string]any) (mapper.Raw, error)
	ListCustomers(ctx context.Context) ([]mapper.Raw, error)
	CreateCustomer(ctx context.Context, fields map[string]any) (mapper.Raw, error)
	ListUsers(ctx context.Context) ([]mapper.Raw, error)
	GetSettings(ctx context.Context) (map[string]string, error)
	UpdateSettings(ctx context.Context, partial map[string]string) error
}

// Controller glues the remote store, the mapper and the state store
// together. It is the only writer of the Store.
type Controller struct {
	client           StoreClient
	store            *Store
	defaultThreshold int
}

func NewController(client StoreClient, store *Store, defaultThreshold int) *Controller {
	if defaultThreshold <= 0 {
		defaultThreshold = view.DefaultLowStockThreshold
	}
	return &Controller{client: client, store: store, defaultThreshold: defaultThreshold}
}

func (c *Controller) Store() *Store {
	return c.store
}

// LowStockThreshold is the settings override when present, the
// configured default otherwise.
func (c *Controller) LowStockThreshold() int {
	return c.store.Settings().LowStockThreshold(c.defaultThreshold)
}

// RefreshAll fetches every collection. The fetches target disjoint
// resources and run concurrently; each one that succeeds replaces its
// collection, each one that fails leaves local state untouched and
// contributes to the returned error.
func (c *Controller) RefreshAll(ctx context.Context) error {
	fetches := []func(context.Context) error{
		c.RefreshProducts,
		c.RefreshOrders,
		c.RefreshWorkers,
		c.RefreshCustomers,
		c.RefreshUsers,
		c.RefreshSettings,
	}

	var wg sync.WaitGroup
	errs := make([]error, len(fetches))
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func(context.Context) error) {
			defer wg.Done()
			errs[i] = fetch(ctx)
		}(i, fetch)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (c *Controller) RefreshProducts(ctx context.Context) error {
	raws, err := c.client.ListProducts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: failed to fetch products")
		return fmt.Errorf("failed to fetch products: %w", err)
	}
	c.store.SetProducts(mapper.Products(raws))
	return nil
}

func (c *Controller) RefreshOrders(ctx context.Context) error {
	raws, err := c.client.ListOrders(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: failed to fetch orders")
		return fmt.Errorf("failed to fetch orders: %w", err)
	}
	c.store.SetOrders(mapper.Orders(raws))
	return nil
}

func (c *Controller) RefreshWorkers(ctx context.Context) error {
	raws, err := c.client.ListWorkers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: failed to fetch workers")
		return fmt.Errorf("failed to fetch workers: %w", err)
	}
	c.store.SetWorkers(mapper.Workers(raws))
	return nil
}

func (c *Controller) RefreshCustomers(ctx context.Context) error {
	raws, err := c.client.ListCustomers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: failed to fetch customers")
		return fmt.Errorf("failed to fetch customers: %w", err)
	}
	c.store.SetCustomers(mapper.Customers(raws))
	return nil
}

func (c *Controller) RefreshUsers(ctx context.Context) error {
	raws, err := c.client.ListUsers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: failed to fetch users")
		return fmt.Errorf("failed to fetch users: %w", err)
	}
	c.store.SetUsers(mapper.Users(raws))
	return nil
}

func (c *Controller) RefreshSettings(ctx context.Context) error {
	settings, err := c.client.GetSettings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: failed to fetch settings")
		return fmt.Errorf("failed to fetch settings: %w", err)
	}
	c.store.SetSettings(record.Settings(settings))
	return nil
}

// AddProduct validates the form input, creates the product remotely and
// merges the server-assigned record into local state.
func (c *Controller) AddProduct(ctx context.Context, name string, stock int, extra map[string]any) (record.Product, error) {
	if name == "" {
		return record.Product{}, fmt.Errorf("product name is required")
	}
	if stock < 0 {
		return record.Product{}, fmt.Errorf("stock must be non-negative, got %d", stock)
	}

	fields := map[string]any{"name": name, "stock": stock}
	for k, v := range extra {
		fields[k] = v
	}

	raw, err := c.client.CreateProduct(ctx, fields)
	if err != nil {
		return record.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	p := mapper.Product(raw)
	c.store.UpsertProduct(p)
	return p, nil
}

// SetProductStock updates a single product's stock level.
func (c *Controller) SetProductStock(ctx context.Context, id int64, stock int) (record.Product, error) {
	if stock < 0 {
		return record.Product{}, fmt.Errorf("stock must be non-negative, got %d", stock)
	}
	raw, err := c.client.UpdateProduct(ctx, id, map[string]any{"stock": stock})
	if err != nil {
		return record.Product{}, fmt.Errorf("failed to update stock: %w", err)
	}
	p := mapper.Product(raw)
	c.store.UpsertProduct(p)
	return p, nil
}

// CreateOrder validates the line items and creates the order remotely.
func (c *Controller) CreateOrder(ctx context.Context, customerID int64, items []api.OrderItemInput) (record.Order, error) {
	if customerID == 0 {
		return record.Order{}, fmt.Errorf("customer is required")
	}
	if len(items) == 0 {
		return record.Order{}, fmt.Errorf("order must contain at least one item")
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return record.Order{}, fmt.Errorf("order item product is required")
		}
		if item.Quantity <= 0 {
			return record.Order{}, fmt.Errorf("order item quantity must be positive, got %d", item.Quantity)
		}
	}

	raw, err := c.client.CreateOrder(ctx, customerID, items)
	if err != nil {
		return record.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	o := mapper.Order(raw)
	c.store.ReplaceOrder(o)
	return o, nil
}

// SetOrderStatus moves an order forward through its lifecycle. The
// transition is validated against the local snapshot before any network
// call.
func (c *Controller) SetOrderStatus(ctx context.Context, id int64, status record.OrderStatus) (record.Order, error) {
	if !status.Valid() {
		return record.Order{}, fmt.Errorf("unknown order status %q", status)
	}
	current, ok := c.store.OrderByID(id)
	if !ok {
		return record.Order{}, ErrOrderNotFound
	}
	if !record.CanTransition(current.Status, status) {
		return record.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	raw, err := c.client.UpdateOrderStatus(ctx, id, status.String())
	if err != nil {
		return record.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	o := mapper.Order(raw)
	c.store.ReplaceOrder(o)
	log.Info().Int64("order_id", id).Str("old_status", current.Status.String()).Str("new_status", status.String()).Msg("dashboard: order status updated")
	return o, nil
}

// ProcessOrder is the one-click terminal action from the orders page.
func (c *Controller) ProcessOrder(ctx context.Context, id int64) (record.Order, error) {
	return c.SetOrderStatus(ctx, id, record.StatusProcessed)
}

// AssignWorker sets or clears an order's picker/packer slot, enforcing
// role compatibility before the call. A nil workerID clears the slot.
func (c *Controller) AssignWorker(ctx context.Context, orderID int64, role api.AssignRole, workerID *int64) (record.Order, error) {
	if _, ok := c.store.OrderByID(orderID); !ok {
		return record.Order{}, ErrOrderNotFound
	}
	if workerID != nil {
		w, ok := c.store.WorkerByID(*workerID)
		if !ok {
			return record.Order{}, ErrWorkerNotFound
		}
		compatible := (role == api.AssignPicker && w.Role.CanPick()) ||
			(role == api.AssignPacker && w.Role.CanPack())
		if !compatible {
			return record.Order{}, fmt.Errorf("%w: %s cannot be %s", ErrRoleIncompatible, w.Role, role)
		}
	}

	raw, err := c.client.AssignWorker(ctx, orderID, role, workerID)
	if err != nil {
		return record.Order{}, fmt.Errorf("failed to assign worker: %w", err)
	}
	o := mapper.Order(raw)
	c.store.ReplaceOrder(o)
	return o, nil
}

// ImportProducts parses the uploaded CSV and submits the candidates one
// at a time, then refetches the product list so local state reflects
// server-assigned ids. Skipped is the count of rows dropped during
// parsing.
func (c *Controller) ImportProducts(ctx context.Context, csvText string) (importer.Result, int, error) {
	rows, skipped, err := csvio.ParseProducts(csvText)
	if err != nil {
		return importer.Result{}, 0, err
	}

	res := importer.Run(ctx, rows, func(ctx context.Context, row csvio.ProductRow) error {
		fields := map[string]any{"name": row.Name, "stock": row.Stock}
		if row.EANCode != "" {
			fields["ean_code"] = row.EANCode
		}
		if row.Price != 0 {
			fields["price"] = row.Price
		}
		if row.MinStock != 0 {
			fields["min_stock"] = row.MinStock
		}
		if row.Category != "" {
			fields["category"] = row.Category
		}
		if row.Supplier != "" {
			fields["supplier"] = row.Supplier
		}
		if row.Description != "" {
			fields["description"] = row.Description
		}
		_, err := c.client.CreateProduct(ctx, fields)
		return err
	})

	if err := c.RefreshProducts(ctx); err != nil {
		return res, skipped, err
	}
	return res, skipped, nil
}

// ImportOrders is the order-file counterpart of ImportProducts.
func (c *Controller) ImportOrders(ctx context.Context, csvText string) (importer.Result, int, error) {
	rows, skipped, err := csvio.ParseOrders(csvText)
	if err != nil {
		return importer.Result{}, 0, err
	}

	res := importer.Run(ctx, rows, func(ctx context.Context, row csvio.OrderRow) error {
		items := []api.OrderItemInput{{ProductID: row.ProductID, Quantity: row.Quantity}}
		_, err := c.client.CreateOrder(ctx, row.CustomerID, items)
		return err
	})

	if err := c.RefreshOrders(ctx); err != nil {
		return res, skipped, err
	}
	return res, skipped, nil
}

// ExportProducts serializes the current product snapshot.
func (c *Controller) ExportProducts() string {
	return csvio.ExportProducts(c.store.Products())
}

func (c *Controller) ExportOrders() string {
	return csvio.ExportOrders(c.store.Orders())
}

// Overview computes the dashboard stat cards from current state.
func (c *Controller) Overview() view.Stats {
	return view.Overview(c.store.Products(), c.store.Orders(), c.LowStockThreshold())
}
