package core

import "strings"

// HeaderMap holds column indexes for the raw order fields as they appear
// in a tabular export of the record store (CSV dump, spreadsheet range).
// An index of -1 means the column is absent; the field stays empty and
// the normalizer applies its default.
type HeaderMap struct {
	OrderID   int
	Date      int
	Amount    int
	Qty       int
	B2B       int
	Category  int
	ShipState int
	ShipCity  int
}

// MapHeader resolves the well-known column names, tolerating case and
// spacing differences ("Order ID", "order-id", "ship-state", ...).
func MapHeader(header []string) HeaderMap {
	idx := func(names ...string) int {
		for i, h := range header {
			key := canonical(h)
			for _, name := range names {
				if key == name {
					return i
				}
			}
		}
		return -1
	}
	return HeaderMap{
		OrderID:   idx("orderid"),
		Date:      idx("date", "orderdate"),
		Amount:    idx("amount"),
		Qty:       idx("qty", "quantity"),
		B2B:       idx("b2b", "isb2b"),
		Category:  idx("category"),
		ShipState: idx("shipstate"),
		ShipCity:  idx("shipcity"),
	}
}

// Row builds a RawOrder from one record using the mapped columns.
func (m HeaderMap) Row(rec []string) RawOrder {
	get := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	return RawOrder{
		OrderID:   get(m.OrderID),
		Date:      get(m.Date),
		Amount:    get(m.Amount),
		Qty:       get(m.Qty),
		B2B:       get(m.B2B),
		Category:  get(m.Category),
		ShipState: get(m.ShipState),
		ShipCity:  get(m.ShipCity),
	}
}

func canonical(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	for _, cut := range []string{" ", "-", "_", "."} {
		h = strings.ReplaceAll(h, cut, "")
	}
	return h
}
