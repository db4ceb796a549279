// Package view computes read-only derived views over the in-memory
// record collections. Every function here is deterministic, preserves
// input order, and never mutates its arguments.
package view

import (
	"strings"

	"github.com/vreeburg/warehouse-dashboard/internal/record"
)

// DefaultLowStockThreshold applies when the low_stock_threshold setting
// is absent.
const DefaultLowStockThreshold = 60

// LowStock returns the products whose stock is strictly below the
// threshold, in input order.
func LowStock(products []record.Product, threshold int) []record.Product {
	low := make([]record.Product, 0)
	for _, p := range products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low
}

// ByStatus filters orders by exact status match. StatusAll returns the
// input slice unchanged.
func ByStatus(orders []record.Order, status record.OrderStatus) []record.Order {
	if status == record.StatusAll {
		return orders
	}
	filtered := make([]record.Order, 0)
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// SearchProducts matches the query case-insensitively against product
// names. An empty query returns the input slice unchanged.
func SearchProducts(products []record.Product, query string) []record.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	matched := make([]record.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SearchOrders matches the query case-insensitively against the
// customer name, the legacy flat product name, or any item's product
// name. It is meant to be applied after ByStatus. An empty query
// returns the input slice unchanged.
func SearchOrders(orders []record.Order, query string) []record.Order {
	if query == "" {
		return orders
	}
	q := strings.ToLower(query)
	matched := make([]record.Order, 0)
	for _, o := range orders {
		if orderMatches(o, q) {
			matched = append(matched, o)
		}
	}
	return matched
}

func orderMatches(o record.Order, q string) bool {
	if strings.Contains(strings.ToLower(o.CustomerName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(o.ProductName), q) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.ProductName), q) {
			return true
		}
	}
	return false
}

// CountByStatus counts orders with the given status without building a
// filtered slice.
func CountByStatus(orders []record.Order, status record.OrderStatus) int {
	n := 0
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// RecentOrders returns the last n orders, newest first. The input is
// assumed to be in server (creation) order.
func RecentOrders(orders []record.Order, n int) []record.Order {
	if n <= 0 || len(orders) == 0 {
		return []record.Order{}
	}
	if n > len(orders) {
		n = len(orders)
	}
	recent := make([]record.Order, 0, n)
	for i := len(orders) - 1; i >= len(orders)-n; i-- {
		recent = append(recent, orders[i])
	}
	return recent
}

// ActiveWorkers returns the workers with Active set, in input order.
// Inactive workers still appear in the full list; they are only
// excluded from this view.
func ActiveWorkers(workers []record.Worker) []record.Worker {
	active := make([]record.Worker, 0)
	for _, w := range workers {
		if w.Active {
			active = append(active, w)
		}
	}
	return active
}

// CountActive counts active workers.
func CountActive(workers []record.Worker) int {
	n := 0
	for _, w := range workers {
		if w.Active {
			n++
		}
	}
	return n
}

// Stats is the dashboard overview aggregate.
type Stats struct {
	TotalProducts int
	TotalOrders   int
	PendingOrders int
	LowStockItems int
}

// Overview computes the dashboard stat cards from the current
// collections.
func Overview(products []record.Product, orders []record.Order, threshold int) Stats {
	return Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		PendingOrders: CountByStatus(orders, record.StatusPending),
		LowStockItems: len(LowStock(products, threshold)),
	}
}
