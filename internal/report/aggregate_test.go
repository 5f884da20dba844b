package report

import (
	"testing"

	"winereport/internal/csv"
)

const miniExport = `Order Number,Completed Date,Pickup,Order Type,Ship State Code,Customer Number,Quantity Sold,Product SKU,Reorder SKU,Product Name,Ext Item Price,Ext Item Total,Ext Item Taxes,Ext Item Shipping
1001,2025-01-10,No,Website,CA,C-1,2,PN21,,"2021 Pinot Noir","$20.00","$24.00","$2.00","$2.00"
1001,2025-01-10,No,Website,CA,C-1,1,CH22,,"2022 Chardonnay","$5.00","$5.00","$0.00","$0.00"
1002,2025-02-03,Yes,POS,CA,C-2,1,PN21,,"2021 Pinot Noir","$10.00","$11.00","$1.00","$0.00"
`

func parseExport(t *testing.T, text string) []Record {
	t.Helper()
	records := Records(csv.Tokenize(text))
	if records == nil {
		t.Fatal("Records() returned nil for non-empty export")
	}
	return records
}

func accumulate(t *testing.T, text string) *Accumulator {
	t.Helper()
	acc := NewAccumulator()
	for _, rec := range parseExport(t, text) {
		acc.Add(rec)
	}
	return acc
}

func TestAccumulator_DedupsOrders(t *testing.T) {
	acc := accumulate(t, miniExport)

	orders := acc.Orders()
	if len(orders) != 2 {
		t.Fatalf("len(Orders()) = %d, want 2", len(orders))
	}

	first := orders[0]
	if first.Number != "1001" {
		t.Errorf("Orders()[0].Number = %q, want %q", first.Number, "1001")
	}
	if first.Units != 3 {
		t.Errorf("order 1001 Units = %v, want 3", first.Units)
	}
	if first.NetSales != 25 {
		t.Errorf("order 1001 NetSales = %v, want 25", first.NetSales)
	}
	if first.OrderTotal != 29 {
		t.Errorf("order 1001 OrderTotal = %v, want 29", first.OrderTotal)
	}
	if first.Pickup {
		t.Error("order 1001 should not be a pickup")
	}

	second := orders[1]
	if !second.Pickup {
		t.Error("order 1002 should be a pickup")
	}
	if second.Channel != "POS" {
		t.Errorf("order 1002 Channel = %q, want %q", second.Channel, "POS")
	}
}

func TestAccumulator_FirstItemWinsOrderAttributes(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(Record{
		colOrderNumber: "2001",
		colOrderType:   "Website",
		colShipState:   "CA",
		colPickup:      "No",
	})
	acc.Add(Record{
		colOrderNumber: "2001",
		colOrderType:   "Phone",
		colShipState:   "OR",
		colPickup:      "Yes",
	})

	order := acc.Orders()[0]
	if order.Channel != "Website" {
		t.Errorf("Channel = %q, want first item's %q", order.Channel, "Website")
	}
	if order.ShipState != "CA" {
		t.Errorf("ShipState = %q, want first item's %q", order.ShipState, "CA")
	}
	if order.Pickup {
		t.Error("Pickup should keep the first item's value")
	}
}

func TestAccumulator_CompletedDateBackfill(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(Record{colOrderNumber: "3001", colCompletedDate: "not a date"})
	acc.Add(Record{colOrderNumber: "3001", colCompletedDate: "2025-03-15"})
	acc.Add(Record{colOrderNumber: "3001", colCompletedDate: "2025-04-01"})

	order := acc.Orders()[0]
	if order.Completed == nil {
		t.Fatal("Completed should be backfilled from the second item")
	}
	if got := order.Completed.Format("2006-01-02"); got != "2025-03-15" {
		t.Errorf("Completed = %s, want 2025-03-15 (first parseable date wins)", got)
	}
}

func TestAccumulator_DropsEmptyOrderNumber(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(Record{colOrderNumber: "  ", colProductSKU: "PN21", colCustomer: "C-1", colQuantity: "5"})

	if acc.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1 (dropped rows still count as seen)", acc.Rows())
	}
	if len(acc.Orders()) != 0 {
		t.Error("record without an order number should create no order")
	}
	if len(acc.Products()) != 0 {
		t.Error("record without an order number should create no product")
	}
	if len(acc.Customers()) != 0 {
		t.Error("record without an order number should create no customer")
	}
}

func TestProductKeyFallback(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "sku wins",
			rec:  Record{colProductSKU: "PN21", colReorderSKU: "R-1", colProductName: "Pinot"},
			want: "PN21",
		},
		{
			name: "reorder sku next",
			rec:  Record{colReorderSKU: "R-1", colProductName: "Pinot"},
			want: "R-1",
		},
		{
			name: "product name last",
			rec:  Record{colProductName: "Pinot"},
			want: "Pinot",
		},
		{
			name: "all empty",
			rec:  Record{colProductSKU: " ", colProductName: ""},
			want: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := productKey(tt.rec); got != tt.want {
				t.Errorf("productKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccumulator_CustomerRequiresID(t *testing.T) {
	acc := accumulate(t, miniExport)
	acc.Add(Record{colOrderNumber: "1003", colQuantity: "4"}) // no customer number

	customers := acc.Customers()
	if len(customers) != 2 {
		t.Fatalf("len(Customers()) = %d, want 2", len(customers))
	}

	c1 := customers[0]
	if c1.ID != "C-1" {
		t.Errorf("Customers()[0].ID = %q, want %q", c1.ID, "C-1")
	}
	if c1.Units != 3 {
		t.Errorf("customer C-1 Units = %v, want 3", c1.Units)
	}
	if c1.OrderCount() != 1 {
		t.Errorf("customer C-1 OrderCount = %d, want 1", c1.OrderCount())
	}
	if c1.IsRepeat() {
		t.Error("customer C-1 with one order should not be a repeat")
	}
}

func TestAccumulator_RepeatCustomer(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(Record{colOrderNumber: "1", colCustomer: "C-9", colQuantity: "1"})
	acc.Add(Record{colOrderNumber: "1", colCustomer: "C-9", colQuantity: "1"})
	acc.Add(Record{colOrderNumber: "2", colCustomer: "C-9", colQuantity: "1"})

	c := acc.Customers()[0]
	if c.OrderCount() != 2 {
		t.Errorf("OrderCount = %d, want 2 (same order counted once)", c.OrderCount())
	}
	if !c.IsRepeat() {
		t.Error("customer with two distinct orders should be a repeat")
	}
}

func TestRecords_HeaderOnly(t *testing.T) {
	if got := Records(csv.Tokenize("Order Number,Quantity Sold\n")); got != nil {
		t.Errorf("Records() = %v, want nil for header-only input", got)
	}
}

func TestRecords_SkipsBlankRows(t *testing.T) {
	text := "Order Number,Quantity Sold\n1001,2\n,\n1002,3\n"
	records := Records(csv.Tokenize(text))
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[1].Field(colOrderNumber) != "1002" {
		t.Errorf("second record order number = %q, want %q", records[1].Field(colOrderNumber), "1002")
	}
}
