package record

import "time"

// Product is the canonical in-memory shape of a server product record.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Stock       int     `json:"stock"`
	EANCode     string  `json:"eanCode,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Supplier    string  `json:"supplier,omitempty"`
	Price       float64 `json:"price"`
	MinStock    int     `json:"minStock,omitempty"`
}

// OrderItem is a line item owned by an Order. PriceAtOrder is captured
// at creation time and is never recomputed from the current Product price.
type OrderItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"priceAtOrder"`
}

// Order carries a denormalized customer snapshot from the server join.
// The legacy flat ProductName/Quantity fields predate the items array
// and are still populated by older servers.
type Order struct {
	ID               int64       `json:"id"`
	CustomerID       int64       `json:"customerId"`
	CustomerName     string      `json:"customerName"`
	CustomerEmail    string      `json:"customerEmail,omitempty"`
	CustomerCompany  string      `json:"customerCompany,omitempty"`
	CustomerPhone    string      `json:"customerPhone,omitempty"`
	CustomerAddress  string      `json:"customerAddress,omitempty"`
	Status           OrderStatus `json:"status"`
	ProductName      string      `json:"productName,omitempty"`
	Quantity         int         `json:"quantity,omitempty"`
	Items            []OrderItem `json:"items"`
	CreatedAt        time.Time   `json:"createdAt"`
	PickedAt         time.Time   `json:"pickedAt,omitempty"`
	PackedAt         time.Time   `json:"packedAt,omitempty"`
	ShippedAt        time.Time   `json:"shippedAt,omitempty"`
	AssignedPickerID int64       `json:"assignedPickerId,omitempty"`
	AssignedPackerID int64       `json:"assignedPackerId,omitempty"`
}

type Worker struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   WorkerRole `json:"role"`
	Phone  string     `json:"phone,omitempty"`
	Active bool       `json:"active"`
	UserID int64      `json:"userId,omitempty"`
}

type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
}

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)
