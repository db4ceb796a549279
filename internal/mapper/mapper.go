// Package mapper translates raw server records (snake_case keys, values
// possibly stringified) into the canonical typed records used everywhere
// else in the application. Every mapping is a pure, total function:
// malformed input never produces an error, only zero-value defaults.
package mapper

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vreeburg/warehouse-dashboard/internal/record"
)

// Raw is one undecoded server record.
type Raw map[string]any

// Product maps a raw product record to its canonical shape.
func Product(raw Raw) record.Product {
	return record.Product{
		ID:          intField(raw, "id"),
		Name:        stringField(raw, "name"),
		Stock:       int(intField(raw, "stock")),
		EANCode:     stringField(raw, "ean_code"),
		Description: stringField(raw, "description"),
		Category:    stringField(raw, "category"),
		Supplier:    stringField(raw, "supplier"),
		Price:       floatField(raw, "price"),
		MinStock:    int(intField(raw, "min_stock")),
	}
}

// Products maps a list of raw product records, preserving order.
func Products(raws []Raw) []record.Product {
	out := make([]record.Product, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Product(raw))
	}
	return out
}

// Order maps a raw order record, including the denormalized customer
// snapshot, the nested items array, and the legacy flat product fields.
func Order(raw Raw) record.Order {
	o := record.Order{
		ID:               intField(raw, "id"),
		CustomerID:       intField(raw, "customer_id"),
		CustomerName:     stringField(raw, "customer_name"),
		CustomerEmail:    stringField(raw, "customer_email"),
		CustomerCompany:  stringField(raw, "customer_company"),
		CustomerPhone:    stringField(raw, "customer_phone"),
		CustomerAddress:  stringField(raw, "customer_address"),
		Status:           record.OrderStatus(stringField(raw, "status")),
		ProductName:      stringField(raw, "product_name"),
		Quantity:         int(intField(raw, "quantity")),
		CreatedAt:        timeField(raw, "created_at"),
		PickedAt:         timeField(raw, "picked_at"),
		PackedAt:         timeField(raw, "packed_at"),
		ShippedAt:        timeField(raw, "shipped_at"),
		AssignedPickerID: intField(raw, "assigned_picker_id"),
		AssignedPackerID: intField(raw, "assigned_packer_id"),
	}

	if items, ok := raw["items"].([]any); ok {
		o.Items = make([]record.OrderItem, 0, len(items))
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				o.Items = append(o.Items, OrderItem(m))
			}
		}
	}

	return o
}

func Orders(raws []Raw) []record.Order {
	out := make([]record.Order, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Order(raw))
	}
	return out
}

// OrderItem maps one raw line item.
func OrderItem(raw Raw) record.OrderItem {
	return record.OrderItem{
		ID:           intField(raw, "id"),
		ProductID:    intField(raw, "product_id"),
		ProductName:  stringField(raw, "product_name"),
		Quantity:     int(intField(raw, "quantity")),
		PriceAtOrder: floatField(raw, "price_at_order"),
	}
}

func Worker(raw Raw) record.Worker {
	return record.Worker{
		ID:     intField(raw, "id"),
		Name:   stringField(raw, "name"),
		Email:  stringField(raw, "email"),
		Role:   record.WorkerRole(stringField(raw, "role")),
		Phone:  stringField(raw, "phone"),
		Active: boolField(raw, "active"),
		UserID: intField(raw, "user_id"),
	}
}

func Workers(raws []Raw) []record.Worker {
	out := make([]record.Worker, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Worker(raw))
	}
	return out
}

func Customer(raw Raw) record.Customer {
	return record.Customer{
		ID:      intField(raw, "id"),
		Name:    stringField(raw, "name"),
		Email:   stringField(raw, "email"),
		Phone:   stringField(raw, "phone"),
		Company: stringField(raw, "company"),
		Address: stringField(raw, "address"),
	}
}

func Customers(raws []Raw) []record.Customer {
	out := make([]record.Customer, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Customer(raw))
	}
	return out
}

func User(raw Raw) record.User {
	return record.User{
		ID:        intField(raw, "id"),
		Username:  stringField(raw, "username"),
		Email:     stringField(raw, "email"),
		Role:      stringField(raw, "role"),
		CreatedAt: timeField(raw, "created_at"),
	}
}

func Users(raws []Raw) []record.User {
	out := make([]record.User, 0, len(raws))
	for _, raw := range raws {
		out = append(out, User(raw))
	}
	return out
}

// stringField returns the value as a string, or "" when absent, null,
// or not a string.
func stringField(raw Raw, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// intField coerces the value to int64, yielding 0 on absence or parse
// failure. JSON numbers arrive as float64; some servers stringify ids.
func intField(raw Raw, key string) int64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return 0
			}
			return int64(f)
		}
		return i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			// ParseFloat accepts "NaN" and "Inf"; converting either to
			// int64 is undefined, so they default like any other junk.
			f, ferr := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return 0
			}
			return int64(f)
		}
		return i
	}
	return 0
}

// floatField coerces the value to float64, yielding 0 on absence or
// parse failure. NaN is never propagated into a canonical record.
func floatField(raw Raw, key string) float64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

// boolField is true only for a literal boolean true or the string
// "true". Everything else, including "1" and "yes", is false.
func boolField(raw Raw, key string) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

// timeField parses an RFC3339 timestamp, returning the zero time on
// absence or parse failure.
func timeField(raw Raw, key string) time.Time {
	s := stringField(raw, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
