package vending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vending/internal/storage"
)

func TestNewInventoryValidation(t *testing.T) {
	cases := []struct {
		name  string
		items []Item
	}{
		{"empty name", []Item{{Name: "  ", Price: d("1"), Stock: 1}}},
		{"negative price", []Item{{Name: "Soda", Price: d("-0.01"), Stock: 1}}},
		{"negative stock", []Item{{Name: "Soda", Price: d("1"), Stock: -1}}},
		{"duplicate", []Item{{Name: "Soda", Price: d("1"), Stock: 1}, {Name: "Soda", Price: d("2"), Stock: 1}}},
		{"duplicate after trim", []Item{{Name: "Soda", Price: d("1"), Stock: 1}, {Name: " Soda ", Price: d("2"), Stock: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInventory(tc.items)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}

	inv, err := NewInventory([]Item{{Name: "Free sample", Price: d("0"), Stock: 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Len())
}

func TestInventoryAt(t *testing.T) {
	inv, err := NewInventory([]Item{
		{Name: "Soda", Price: d("1.50"), Stock: 2},
		{Name: "Chips", Price: d("1.00"), Stock: 0},
	})
	require.NoError(t, err)

	it, err := inv.At(2)
	require.NoError(t, err)
	assert.Equal(t, "Chips", it.Name)

	for _, sel := range []int{QuitSelection, -1, 3, 100} {
		_, err := inv.At(sel)
		assert.ErrorIs(t, err, ErrInvalidSelection, "selection %d", sel)
	}
}

func TestInventoryItemsIsCopy(t *testing.T) {
	inv, err := NewInventory([]Item{{Name: "Soda", Price: d("1.50"), Stock: 2}})
	require.NoError(t, err)

	items := inv.Items()
	items[0].Stock = 99
	it, _ := inv.At(1)
	assert.Equal(t, 2, it.Stock)
}

// TestInventoryRecordsRoundTrip 匯出再匯入後內容與順序一致。
func TestInventoryRecordsRoundTrip(t *testing.T) {
	recs := []storage.PersistItem{
		{Name: "Soda", Price: d("1.50"), Stock: 2},
		{Name: "Chips", Price: d("1.00"), Stock: 0},
		{Name: "Candy", Price: d("0.75"), Stock: 7},
	}
	inv, err := FromRecords(recs)
	require.NoError(t, err)

	out := inv.Records()
	require.Len(t, out, len(recs))
	for i := range recs {
		assert.Equal(t, recs[i].Name, out[i].Name)
		assert.True(t, recs[i].Price.Equal(out[i].Price))
		assert.Equal(t, recs[i].Stock, out[i].Stock)
	}
}

// TestInventoryKeepsRawNames 載入後再匯出，名稱（含前後空白）不得被改寫。
func TestInventoryKeepsRawNames(t *testing.T) {
	recs := []storage.PersistItem{{Name: " Iced Tea ", Price: d("2.25"), Stock: 3}}
	inv, err := FromRecords(recs)
	require.NoError(t, err)

	it, err := inv.At(1)
	require.NoError(t, err)
	assert.Equal(t, " Iced Tea ", it.Name)
	assert.Equal(t, " Iced Tea ", inv.Records()[0].Name)
}
