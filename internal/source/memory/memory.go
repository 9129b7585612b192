package memory

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"

	"salesboard/internal/core"
)

// Store is an in-memory order source for development and tests.
type Store struct {
	mu     sync.Mutex
	orders []core.RawOrder
}

func New(orders []core.RawOrder) *Store {
	return &Store{orders: append([]core.RawOrder(nil), orders...)}
}

// NewFromFiles seeds the store from base/seed_orders.csv when present,
// falling back to a small built-in dataset so the dashboard has something
// to show out of the box.
func NewFromFiles(base string) *Store {
	if orders := readSeedCSV(filepath.Join(base, "seed_orders.csv")); len(orders) > 0 {
		return New(orders)
	}
	return New(sampleOrders())
}

// FetchOrders returns a copy of the seeded collection.
func (s *Store) FetchOrders(_ context.Context) ([]core.RawOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.RawOrder(nil), s.orders...), nil
}

func readSeedCSV(path string) []core.RawOrder {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return nil
	}

	cols := core.MapHeader(records[0])
	out := make([]core.RawOrder, 0, len(records)-1)
	for _, rec := range records[1:] {
		out = append(out, cols.Row(rec))
	}
	return out
}

func sampleOrders() []core.RawOrder {
	return []core.RawOrder{
		{OrderID: "405-8078784-5731545", Date: "04-30-22", Amount: "647.62", Qty: "1", B2B: "0", Category: "Set", ShipState: "MAHARASHTRA", ShipCity: "MUMBAI"},
		{OrderID: "405-8078784-5731545", Date: "04-30-22", Amount: "406.00", Qty: "1", B2B: "0", Category: "Kurta", ShipState: "MAHARASHTRA", ShipCity: "MUMBAI"},
		{OrderID: "171-9198151-1101146", Date: "04-30-22", Amount: "329.00", Qty: "1", B2B: "1", Category: "Kurta", ShipState: "KARNATAKA", ShipCity: "BENGALURU"},
		{OrderID: "404-0687676-7273146", Date: "05-01-22", Amount: "753.33", Qty: "2", B2B: "0", Category: "Western Dress", ShipState: "TELANGANA", ShipCity: "HYDERABAD"},
		{OrderID: "403-9615377-8133951", Date: "05-12-22", Amount: "544.00", Qty: "1", B2B: "0", Category: "Top", ShipState: "DELHI", ShipCity: "NEW DELHI"},
		{OrderID: "171-5568298-7484303", Date: "06-03-22", Amount: "824.00", Qty: "1", B2B: "0", Category: "Set", ShipState: "TAMIL NADU", ShipCity: "CHENNAI"},
		{OrderID: "406-7807733-3785945", Date: "06-18-22", Amount: "5899.00", Qty: "3", B2B: "1", Category: "Saree", ShipState: "WEST BENGAL", ShipCity: "KOLKATA"},
	}
}
