package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vreeburg/warehouse-dashboard/internal/record"
	"github.com/vreeburg/warehouse-dashboard/internal/view"
)

func products() []record.Product {
	return []record.Product{
		{ID: 1, Name: "Widget A", Stock: 120},
		{ID: 2, Name: "Widget B", Stock: 45},
		{ID: 3, Name: "Gadget", Stock: 12},
		{ID: 4, Name: "widget deluxe", Stock: 60},
	}
}

func orders() []record.Order {
	return []record.Order{
		{ID: 1, CustomerName: "Jansen", Status: record.StatusPending, Items: []record.OrderItem{{ProductName: "Widget A", Quantity: 2}}},
		{ID: 2, CustomerName: "Bakker", Status: record.StatusProcessed, ProductName: "Gadget"},
		{ID: 3, CustomerName: "De Vries", Status: record.StatusShipped, Items: []record.OrderItem{{ProductName: "Widget B", Quantity: 1}}},
		{ID: 4, CustomerName: "Jansen", Status: record.StatusProcessed, Items: []record.OrderItem{{ProductName: "Gadget", Quantity: 3}}},
	}
}

func TestLowStock(t *testing.T) {
	low := view.LowStock(products(), 60)

	if assert.Len(t, low, 2) {
		assert.Equal(t, int64(2), low[0].ID)
		assert.Equal(t, int64(3), low[1].ID)
	}

	// Strictly-below: a product sitting exactly on the threshold is fine.
	assert.Empty(t, view.LowStock([]record.Product{{Stock: 60}}, 60))
	assert.Len(t, view.LowStock(products(), 1000), 4)
}

func TestByStatus(t *testing.T) {
	all := orders()

	filtered := view.ByStatus(all, record.StatusProcessed)
	if assert.Len(t, filtered, 2) {
		assert.Equal(t, int64(2), filtered[0].ID)
		assert.Equal(t, int64(4), filtered[1].ID)
	}

	same := view.ByStatus(all, record.StatusAll)
	assert.True(t, &all[0] == &same[0], "StatusAll must return the input slice unchanged")
}

func TestSearchProducts(t *testing.T) {
	all := products()

	t.Run("empty_query_returns_input", func(t *testing.T) {
		got := view.SearchProducts(all, "")
		assert.True(t, &all[0] == &got[0])
		assert.Len(t, got, 4)
	})

	t.Run("case_insensitive_substring", func(t *testing.T) {
		got := view.SearchProducts(all, "WIDGET")
		if assert.Len(t, got, 3) {
			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, int64(2), got[1].ID)
			assert.Equal(t, int64(4), got[2].ID)
		}
	})

	t.Run("no_match", func(t *testing.T) {
		assert.Empty(t, view.SearchProducts(all, "doohickey"))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := view.SearchProducts(all, "widget")
		twice := view.SearchProducts(once, "widget")
		assert.Equal(t, once, twice)
	})
}

func TestSearchOrders(t *testing.T) {
	all := orders()

	t.Run("matches_customer_name", func(t *testing.T) {
		got := view.SearchOrders(all, "jansen")
		if assert.Len(t, got, 2) {
			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, int64(4), got[1].ID)
		}
	})

	t.Run("matches_any_item_product_name", func(t *testing.T) {
		got := view.SearchOrders(all, "widget b")
		if assert.Len(t, got, 1) {
			assert.Equal(t, int64(3), got[0].ID)
		}
	})

	t.Run("matches_legacy_flat_product_name", func(t *testing.T) {
		got := view.SearchOrders(all, "gadget")
		if assert.Len(t, got, 2) {
			assert.Equal(t, int64(2), got[0].ID)
			assert.Equal(t, int64(4), got[1].ID)
		}
	})

	t.Run("composes_with_by_status", func(t *testing.T) {
		got := view.SearchOrders(view.ByStatus(all, record.StatusProcessed), "jansen")
		if assert.Len(t, got, 1) {
			assert.Equal(t, int64(4), got[0].ID)
		}
	})

	t.Run("empty_query_returns_input", func(t *testing.T) {
		got := view.SearchOrders(all, "")
		assert.True(t, &all[0] == &got[0])
	})
}

func TestCountByStatus(t *testing.T) {
	all := orders()
	assert.Equal(t, 1, view.CountByStatus(all, record.StatusPending))
	assert.Equal(t, 2, view.CountByStatus(all, record.StatusProcessed))
	assert.Equal(t, 0, view.CountByStatus(all, record.StatusPacked))
}

func TestRecentOrders(t *testing.T) {
	all := orders()

	recent := view.RecentOrders(all, 2)
	if assert.Len(t, recent, 2) {
		assert.Equal(t, int64(4), recent[0].ID, "newest first")
		assert.Equal(t, int64(3), recent[1].ID)
	}

	assert.Len(t, view.RecentOrders(all, 10), 4)
	assert.Empty(t, view.RecentOrders(all, 0))
	assert.Empty(t, view.RecentOrders(nil, 5))
}

func TestActiveWorkers(t *testing.T) {
	workers := []record.Worker{
		{ID: 1, Name: "Piet", Active: true},
		{ID: 2, Name: "Anna", Active: false},
		{ID: 3, Name: "Joris", Active: true},
	}

	active := view.ActiveWorkers(workers)
	if assert.Len(t, active, 2) {
		assert.Equal(t, int64(1), active[0].ID)
		assert.Equal(t, int64(3), active[1].ID)
	}
	assert.Equal(t, 2, view.CountActive(workers))
	// The inactive worker still exists in the full list.
	assert.Len(t, workers, 3)
}

func TestOverview(t *testing.T) {
	stats := view.Overview(products(), orders(), 60)
	assert.Equal(t, view.Stats{
		TotalProducts: 4,
		TotalOrders:   4,
		PendingOrders: 1,
		LowStockItems: 2,
	}, stats)
}
