package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesboard/internal/core"
)

func TestNewFromFilesSeedCSV(t *testing.T) {
	dir := t.TempDir()
	csvData := "Order ID,Date,Amount,Qty,B2B,Category,ship-state,ship-city\n" +
		"X-1,2022-04-05,199.00,1,false,Kurta,GOA,PANAJI\n" +
		"X-2,05-20-22,899.50,2,true,Set,KERALA,KOCHI\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed_orders.csv"), []byte(csvData), 0o644))

	store := NewFromFiles(dir)
	orders, err := store.FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "X-1", orders[0].OrderID)
	assert.Equal(t, "GOA", orders[0].ShipState)
	assert.Equal(t, "899.50", orders[1].Amount)
	assert.Equal(t, "true", orders[1].B2B)
}

func TestNewFromFilesFallback(t *testing.T) {
	// No seed file in an empty directory: the built-in dataset kicks in.
	store := NewFromFiles(t.TempDir())
	orders, err := store.FetchOrders(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, orders)
	for _, o := range orders {
		assert.NotEmpty(t, o.OrderID)
		assert.NotEmpty(t, o.Amount)
	}
}

func TestFetchOrdersReturnsCopy(t *testing.T) {
	store := New([]core.RawOrder{{OrderID: "A-1", Amount: "100"}})

	first, err := store.FetchOrders(context.Background())
	require.NoError(t, err)
	first[0].OrderID = "mutated"

	second, err := store.FetchOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A-1", second[0].OrderID)
}
