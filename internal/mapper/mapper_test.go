package mapper_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/vreeburg/warehouse-dashboard/internal/mapper"
	"github.com/vreeburg/warehouse-dashboard/internal/record"
)

func TestProduct_RenamesAndCoercion(t *testing.T) {
	raw := mapper.Raw{
		"id":          float64(7),
		"name":        "Widget A",
		"stock":       "120",
		"ean_code":    "8712345678906",
		"description": "A widget",
		"category":    "Widgets",
		"supplier":    "Acme BV",
		"price":       "9.99",
		"min_stock":   float64(20),
	}

	got := mapper.Product(raw)
	want := record.Product{
		ID:          7,
		Name:        "Widget A",
		Stock:       120,
		EANCode:     "8712345678906",
		Description: "A widget",
		Category:    "Widgets",
		Supplier:    "Acme BV",
		Price:       9.99,
		MinStock:    20,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Product() mismatch (-want +got):\n%s", diff)
	}
}

func TestProduct_TotalOnMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  mapper.Raw
	}{
		{name: "empty", raw: mapper.Raw{}},
		{name: "nil_values", raw: mapper.Raw{"id": nil, "name": nil, "stock": nil, "price": nil}},
		{name: "wrong_types", raw: mapper.Raw{"id": []any{}, "name": 42, "stock": map[string]any{}, "price": true}},
		{name: "non_numeric_strings", raw: mapper.Raw{"id": "abc", "stock": "many", "price": "free"}},
		{name: "nan_strings", raw: mapper.Raw{"id": "NaN", "stock": "NaN", "price": "NaN"}},
		{name: "inf_strings", raw: mapper.Raw{"id": "+Inf", "stock": "-Infinity", "price": "Inf"}},
		{name: "nan_literals", raw: mapper.Raw{"id": math.NaN(), "stock": math.Inf(1), "price": math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapper.Product(tt.raw)
			assert.Equal(t, int64(0), got.ID)
			assert.Equal(t, "", got.Name)
			assert.Equal(t, 0, got.Stock)
			assert.Equal(t, 0.0, got.Price)
		})
	}
}

func TestOrder_NestedItemsAndSnapshot(t *testing.T) {
	raw := mapper.Raw{
		"id":                 float64(3),
		"customer_id":        "11",
		"customer_name":      "Jansen & Co",
		"customer_email":     "inkoop@jansen.nl",
		"status":             "picked",
		"created_at":         "2026-08-01T09:30:00Z",
		"picked_at":          "2026-08-01T11:00:00Z",
		"assigned_picker_id": float64(4),
		"items": []any{
			map[string]any{
				"id":             float64(31),
				"product_id":     float64(7),
				"product_name":   "Widget A",
				"quantity":       float64(5),
				"price_at_order": 9.99,
			},
			map[string]any{
				"id":             float64(32),
				"product_id":     "8",
				"product_name":   "Widget B",
				"quantity":       "2",
				"price_at_order": "4.50",
			},
		},
	}

	got := mapper.Order(raw)

	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, int64(11), got.CustomerID)
	assert.Equal(t, "Jansen & Co", got.CustomerName)
	assert.Equal(t, "inkoop@jansen.nl", got.CustomerEmail)
	assert.Equal(t, record.StatusPicked, got.Status)
	assert.Equal(t, time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC), got.CreatedAt)
	assert.Equal(t, time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC), got.PickedAt)
	assert.Equal(t, int64(4), got.AssignedPickerID)

	if assert.Len(t, got.Items, 2) {
		assert.Equal(t, record.OrderItem{ID: 31, ProductID: 7, ProductName: "Widget A", Quantity: 5, PriceAtOrder: 9.99}, got.Items[0])
		assert.Equal(t, record.OrderItem{ID: 32, ProductID: 8, ProductName: "Widget B", Quantity: 2, PriceAtOrder: 4.50}, got.Items[1])
	}
}

func TestOrder_LegacyFlatFields(t *testing.T) {
	raw := mapper.Raw{
		"id":            float64(1),
		"customer_name": "Bakker",
		"product_name":  "Widget A",
		"quantity":      float64(3),
		"status":        "pending",
	}

	got := mapper.Order(raw)
	assert.Equal(t, "Widget A", got.ProductName)
	assert.Equal(t, 3, got.Quantity)
	assert.Empty(t, got.Items)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestWorker_BoolCoercion(t *testing.T) {
	tests := []struct {
		name   string
		active any
		want   bool
	}{
		{name: "literal_true", active: true, want: true},
		{name: "string_true", active: "true", want: true},
		{name: "string_True", active: "True", want: false},
		{name: "string_1", active: "1", want: false},
		{name: "number_1", active: float64(1), want: false},
		{name: "absent", active: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mapper.Raw{"id": float64(1), "name": "Piet", "role": "Picker"}
			if tt.active != nil {
				raw["active"] = tt.active
			}
			assert.Equal(t, tt.want, mapper.Worker(raw).Active)
		})
	}
}

func TestWorker_UserLink(t *testing.T) {
	got := mapper.Worker(mapper.Raw{
		"id": float64(2), "name": "Anna", "email": "anna@vreeburg.nl",
		"role": "Supervisor", "active": true, "user_id": float64(9),
	})
	assert.Equal(t, record.RoleSupervisor, got.Role)
	assert.Equal(t, int64(9), got.UserID)
}

func TestUser_CreatedAt(t *testing.T) {
	got := mapper.User(mapper.Raw{
		"id": float64(9), "username": "anna", "email": "anna@vreeburg.nl",
		"role": "admin", "created_at": "2026-01-15T08:00:00Z",
	})
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC), got.CreatedAt)

	malformed := mapper.User(mapper.Raw{"created_at": "yesterday"})
	assert.True(t, malformed.CreatedAt.IsZero())
}

func TestCustomers_PreservesOrder(t *testing.T) {
	raws := []mapper.Raw{
		{"id": float64(2), "name": "B"},
		{"id": float64(1), "name": "A"},
	}
	got := mapper.Customers(raws)
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	}
}
