package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLookup(t *testing.T) {
	store := New()

	tests := []struct {
		name       string
		id         string
		wantFound  bool
		wantStatus string
	}{
		{name: "exact match", id: "ORDER-123", wantFound: true, wantStatus: "shipped"},
		{name: "lower case", id: "order-456", wantFound: true, wantStatus: "delivered"},
		{name: "mixed case", id: "OrDeR-789", wantFound: true, wantStatus: "processing"},
		{name: "unknown order", id: "ORDER-999", wantFound: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order, ok := store.Order(tc.id)
			assert.Equal(t, tc.wantFound, ok)
			if tc.wantFound {
				assert.Equal(t, tc.wantStatus, order.Status)
			}
		})
	}
}

func TestProductLookup(t *testing.T) {
	store := New()

	product, ok := store.Product("wh-001")
	require.True(t, ok)
	assert.Equal(t, "Wireless Headphones", product.Name)
	assert.Equal(t, 25, product.Stock)

	_, ok = store.Product("XX-000")
	assert.False(t, ok)
}

func TestFindProductByName(t *testing.T) {
	store := New()

	tests := []struct {
		name      string
		keyword   string
		wantID    string
		wantFound bool
	}{
		{name: "headphones", keyword: "headphone", wantID: "WH-001", wantFound: true},
		{name: "watch", keyword: "watch", wantID: "SW-002", wantFound: true},
		{name: "laptop", keyword: "laptop", wantID: "GL-003", wantFound: true},
		// "phone" hits Wireless Headphones first in fixture order, same as
		// the legacy name scan.
		{name: "phone scans in fixture order", keyword: "phone", wantID: "WH-001", wantFound: true},
		{name: "case-insensitive", keyword: "LAPTOP", wantID: "GL-003", wantFound: true},
		{name: "unknown keyword", keyword: "toaster", wantFound: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			product, ok := store.FindProductByName(tc.keyword)
			assert.Equal(t, tc.wantFound, ok)
			if tc.wantFound {
				assert.Equal(t, tc.wantID, product.ID)
			}
		})
	}
}

func TestInStockDerivedFromCount(t *testing.T) {
	store := New()
	for _, p := range store.Products() {
		assert.Equal(t, p.Stock > 0, p.InStock(), "product %s", p.ID)
	}

	watch, ok := store.Product("SW-002")
	require.True(t, ok)
	assert.False(t, watch.InStock())
	assert.Equal(t, "2024-01-25", watch.RestockDate)
}

func TestProductJSONCarriesInStock(t *testing.T) {
	store := New()
	product, ok := store.Product("WH-001")
	require.True(t, ok)

	raw, err := json.Marshal(product)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["inStock"])
	assert.Equal(t, float64(25), decoded["stock"])
}

func TestOrderDateFieldsMatchStatus(t *testing.T) {
	store := New()
	for _, o := range store.Orders() {
		switch o.Status {
		case "shipped":
			assert.NotEmpty(t, o.ShippedDate, "order %s", o.ID)
			assert.NotEmpty(t, o.TrackingNumber, "order %s", o.ID)
			assert.Empty(t, o.DeliveredDate, "order %s", o.ID)
		case "delivered":
			assert.NotEmpty(t, o.DeliveredDate, "order %s", o.ID)
			assert.NotEmpty(t, o.DeliveredTime, "order %s", o.ID)
			assert.Empty(t, o.ShippedDate, "order %s", o.ID)
		case "processing":
			assert.NotEmpty(t, o.EstimatedDelivery, "order %s", o.ID)
			assert.Empty(t, o.TrackingNumber, "order %s", o.ID)
			assert.Empty(t, o.ShippedDate, "order %s", o.ID)
			assert.Empty(t, o.DeliveredDate, "order %s", o.ID)
		}
	}
}

func TestStableFixtureOrder(t *testing.T) {
	store := New()

	var orderIDs []string
	for _, o := range store.Orders() {
		orderIDs = append(orderIDs, o.ID)
	}
	assert.Equal(t, []string{"ORDER-123", "ORDER-456", "ORDER-789"}, orderIDs)

	var productIDs []string
	for _, p := range store.Products() {
		productIDs = append(productIDs, p.ID)
	}
	assert.Equal(t, []string{"WH-001", "SW-002", "GL-003", "SP-004"}, productIDs)
}
