package core

import "testing"

func TestMapHeaderTolerance(t *testing.T) {
	headers := [][]string{
		{"Order ID", "Date", "Amount", "Qty", "B2B", "Category", "ship-state", "ship-city"},
		{"order_id", "DATE", "amount", "Quantity", "is_b2b", "CATEGORY", "Ship State", "Ship City"},
	}
	for i, h := range headers {
		m := MapHeader(h)
		row := m.Row([]string{"A1", "04-30-22", "647.62", "1", "0", "Set", "MAHARASHTRA", "MUMBAI"})
		want := RawOrder{
			OrderID: "A1", Date: "04-30-22", Amount: "647.62", Qty: "1",
			B2B: "0", Category: "Set", ShipState: "MAHARASHTRA", ShipCity: "MUMBAI",
		}
		if row != want {
			t.Fatalf("header set %d: row = %+v, want %+v", i, row, want)
		}
	}
}

func TestMapHeaderMissingColumns(t *testing.T) {
	m := MapHeader([]string{"Order ID", "Amount"})
	if m.Date != -1 || m.ShipState != -1 {
		t.Fatalf("absent columns should map to -1: %+v", m)
	}
	row := m.Row([]string{"A1", "10"})
	if row.OrderID != "A1" || row.Amount != "10" || row.Date != "" {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestMapHeaderRowShorterThanHeader(t *testing.T) {
	m := MapHeader([]string{"Order ID", "Date", "Amount"})
	row := m.Row([]string{"A1"})
	if row.OrderID != "A1" || row.Date != "" || row.Amount != "" {
		t.Fatalf("short record should leave trailing fields empty: %+v", row)
	}
}
