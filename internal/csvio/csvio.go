// Package csvio implements the dashboard's CSV dialect: export of the
// product and order tables, parsing of uploaded import files, and
// template generation.
//
// The dialect is deliberately naive: values are interpolated as-is and
// comma-joined, with no quoting or escaping. Records containing embedded
// commas or newlines will not round-trip. This matches the files the
// dashboard has always produced and accepted.
package csvio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vreeburg/warehouse-dashboard/internal/record"
)

// ContentType is the media type of all files produced here.
const ContentType = "text/csv"

var (
	productExportHeader = []string{"Product ID", "Product Name", "Stock Level"}
	orderExportHeader   = []string{"Order ID", "Customer Name", "Product Name", "Quantity", "Status", "Created Date"}

	productImportRequired = []string{"name", "stock"}
	orderImportRequired   = []string{"customerId", "productId", "quantity"}
)

// ErrEmptyFile is returned when the import file has no content rows.
var ErrEmptyFile = errors.New("csv file is empty")

// ExportProducts serializes the product table, one row per product, in
// input order.
func ExportProducts(products []record.Product) string {
	lines := make([]string, 0, len(products)+1)
	lines = append(lines, strings.Join(productExportHeader, ","))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%d,%s,%d", p.ID, p.Name, p.Stock))
	}
	return strings.Join(lines, "\n")
}

// ExportOrders serializes the order table. The product name and
// quantity columns use the legacy flat fields when set and fall back to
// the first line item otherwise.
func ExportOrders(orders []record.Order) string {
	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, strings.Join(orderExportHeader, ","))
	for _, o := range orders {
		name, qty := displayLine(o)
		lines = append(lines, fmt.Sprintf("%d,%s,%s,%d,%s,%s",
			o.ID, o.CustomerName, name, qty, o.Status, o.CreatedAt.Format(time.RFC3339)))
	}
	return strings.Join(lines, "\n")
}

func displayLine(o record.Order) (string, int) {
	if o.ProductName != "" {
		return o.ProductName, o.Quantity
	}
	if len(o.Items) > 0 {
		return o.Items[0].ProductName, o.Items[0].Quantity
	}
	return "", 0
}

// ProductTemplate returns the import template: the header row and one
// illustrative example row.
func ProductTemplate() string {
	return "name,stock,eanCode,price,minStock,category,supplier,description\n" +
		"Widget C,100,8712345678906,9.99,20,Widgets,Acme BV,Example product"
}

// OrderTemplate returns the order import template.
func OrderTemplate() string {
	return "customerId,productId,quantity\n" +
		"1,2,5"
}

// ProductRow is one validated product import candidate.
type ProductRow struct {
	Name        string
	Stock       int
	EANCode     string
	Price       float64
	MinStock    int
	Category    string
	Supplier    string
	Description string
}

// OrderRow is one validated order import candidate.
type OrderRow struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
}

// ParseProducts parses an uploaded product CSV. Rows missing a required
// field are skipped with a warning and counted in skipped; a missing
// required header fails the whole import.
//
// Note: the required-stock check runs on the coerced number, so a row
// with a literal stock of "0" is indistinguishable from one with no
// stock at all and is skipped. This mirrors the behavior the original
// dashboard always had; fixing it would silently change which files
// import cleanly.
func ParseProducts(text string) ([]ProductRow, int, error) {
	headers, rows, err := parse(text, productImportRequired)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ProductRow, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		cells := zip(headers, row)
		name := cells["name"]
		stock := coerceInt(cells["stock"])
		if name == "" || stock == 0 {
			skipped++
			log.Warn().Int("row", i+2).Msg("csvio: skipping product row with missing name or stock")
			continue
		}
		out = append(out, ProductRow{
			Name:        name,
			Stock:       stock,
			EANCode:     cells["eanCode"],
			Price:       coerceFloat(cells["price"]),
			MinStock:    coerceInt(cells["minStock"]),
			Category:    cells["category"],
			Supplier:    cells["supplier"],
			Description: cells["description"],
		})
	}
	return out, skipped, nil
}

// ParseOrders parses an uploaded order CSV. Same row-skipping rules as
// ParseProducts, including the zero-means-missing quirk on all three
// required numeric fields.
func ParseOrders(text string) ([]OrderRow, int, error) {
	headers, rows, err := parse(text, orderImportRequired)
	if err != nil {
		return nil, 0, err
	}

	out := make([]OrderRow, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		cells := zip(headers, row)
		customerID := int64(coerceInt(cells["customerId"]))
		productID := int64(coerceInt(cells["productId"]))
		quantity := coerceInt(cells["quantity"])
		if customerID == 0 || productID == 0 || quantity == 0 {
			skipped++
			log.Warn().Int("row", i+2).Msg("csvio: skipping order row with missing customerId, productId or quantity")
			continue
		}
		out = append(out, OrderRow{CustomerID: customerID, ProductID: productID, Quantity: quantity})
	}
	return out, skipped, nil
}

// parse splits the file into a trimmed header list and raw data rows,
// validating that every required column is present.
func parse(text string, required []string) ([]string, [][]string, error) {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(strings.TrimSuffix(line, "\r")) != "" {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}
	if len(lines) == 0 {
		return nil, nil, ErrEmptyFile
	}

	headers := splitTrim(lines[0])

	var missing []string
	for _, col := range required {
		if !contains(headers, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("csv file is missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, splitTrim(line))
	}
	return headers, rows, nil
}

// zip pairs row values with headers positionally. Missing trailing
// values become the empty string.
func zip(headers, row []string) map[string]string {
	cells := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(row) {
			cells[h] = row[i]
		} else {
			cells[h] = ""
		}
	}
	return cells
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// coerceInt applies the same numeric coercion as the field mapper:
// failure yields 0.
func coerceInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// coerceFloat rejects the non-finite spellings ParseFloat accepts, so
// "NaN" and "Inf" default like any other junk value.
func coerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
