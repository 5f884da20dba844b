package report

import (
	"strings"
	"time"
)

// Order is the deduplicated aggregate of all line items sharing an order
// number. The first line item for an order number creates it; later items
// add their quantities and amounts, and may backfill a still-missing
// completion date. Orders are never mutated after the pass ends.
type Order struct {
	Number       string
	Completed    *time.Time
	Channel      string // order-type label
	ShipState    string
	Customer     string
	Pickup       bool
	Units        float64
	NetSales     float64
	OrderTotal   float64
	Taxes        float64
	ShippingPaid float64
}

// Product accumulates units and net sales per product key. Unlike orders,
// products are keyed per line item, with no order-level dedup.
type Product struct {
	SKU      string
	Units    float64
	NetSales float64
}

// Customer accumulates units and the set of distinct order numbers for a
// customer id. Rows with an empty customer id never reach this collection.
type Customer struct {
	ID     string
	Units  float64
	orders map[string]struct{}
}

// OrderCount returns the number of distinct orders seen for this customer.
func (c *Customer) OrderCount() int {
	return len(c.orders)
}

// IsRepeat reports whether the customer placed two or more distinct orders.
func (c *Customer) IsRepeat() bool {
	return len(c.orders) > 1
}

// Accumulator folds line-item records into keyed order, product, and
// customer collections in a single O(n) pass. Keys are case-sensitive and
// iteration preserves first-seen order, which is what makes the summary's
// tie-breaking deterministic.
//
// An Accumulator is not safe for concurrent use; a summarization run is
// single-threaded by design.
type Accumulator struct {
	rows int

	orders    map[string]*Order
	orderKeys []string

	products    map[string]*Product
	productKeys []string

	customers    map[string]*Customer
	customerKeys []string
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		orders:    make(map[string]*Order),
		products:  make(map[string]*Product),
		customers: make(map[string]*Customer),
	}
}

// Add folds one line-item record into the aggregates.
// A record with an empty order number is dropped entirely: it creates no
// order, no product entry, and no customer entry. It still counts as a
// seen record, so a file of identifier-less rows produces a zero-valued
// summary rather than "no data".
func (a *Accumulator) Add(rec Record) {
	a.rows++

	number := strings.TrimSpace(rec.Field(colOrderNumber))
	if number == "" {
		return
	}

	qty := ParseNumber(rec.Field(colQuantity))
	price := ParseMoney(rec.Field(colItemPrice))
	total := ParseMoney(rec.Field(colItemTotal))
	taxes := ParseMoney(rec.Field(colItemTaxes))
	shipping := ParseMoney(rec.Field(colItemShipping))

	order, ok := a.orders[number]
	if !ok {
		order = &Order{
			Number:    number,
			Channel:   strings.TrimSpace(rec.Field(colOrderType)),
			ShipState: strings.TrimSpace(rec.Field(colShipState)),
			Customer:  strings.TrimSpace(rec.Field(colCustomer)),
			Pickup:    ParseFlag(rec.Field(colPickup)),
		}
		if t, ok := ParseDate(rec.Field(colCompletedDate)); ok {
			order.Completed = &t
		}
		a.orders[number] = order
		a.orderKeys = append(a.orderKeys, number)
	} else if order.Completed == nil {
		if t, ok := ParseDate(rec.Field(colCompletedDate)); ok {
			order.Completed = &t
		}
	}
	order.Units += qty
	order.NetSales += price
	order.OrderTotal += total
	order.Taxes += taxes
	order.ShippingPaid += shipping

	sku := productKey(rec)
	product, ok := a.products[sku]
	if !ok {
		product = &Product{SKU: sku}
		a.products[sku] = product
		a.productKeys = append(a.productKeys, sku)
	}
	product.Units += qty
	product.NetSales += price

	if id := strings.TrimSpace(rec.Field(colCustomer)); id != "" {
		customer, ok := a.customers[id]
		if !ok {
			customer = &Customer{ID: id, orders: make(map[string]struct{})}
			a.customers[id] = customer
			a.customerKeys = append(a.customerKeys, id)
		}
		customer.Units += qty
		customer.orders[number] = struct{}{}
	}
}

// productKey resolves the product identity for a line item from an ordered
// list of candidate columns: SKU, then reorder code, then product name.
// The precedence is kept as an explicit list so the fallback rule stays
// auditable.
func productKey(rec Record) string {
	for _, col := range []string{colProductSKU, colReorderSKU, colProductName} {
		if v := strings.TrimSpace(rec.Field(col)); v != "" {
			return v
		}
	}
	return "Unknown"
}

// Rows returns the number of records seen, including rows dropped for a
// missing order number.
func (a *Accumulator) Rows() int {
	return a.rows
}

// Orders returns the order collection in first-seen order.
func (a *Accumulator) Orders() []*Order {
	out := make([]*Order, len(a.orderKeys))
	for i, k := range a.orderKeys {
		out[i] = a.orders[k]
	}
	return out
}

// Products returns the product collection in first-seen order.
func (a *Accumulator) Products() []*Product {
	out := make([]*Product, len(a.productKeys))
	for i, k := range a.productKeys {
		out[i] = a.products[k]
	}
	return out
}

// Customers returns the customer collection in first-seen order.
func (a *Accumulator) Customers() []*Customer {
	out := make([]*Customer, len(a.customerKeys))
	for i, k := range a.customerKeys {
		out[i] = a.customers[k]
	}
	return out
}
