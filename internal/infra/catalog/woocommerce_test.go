package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `[
	{
		"id": 101,
		"name": "Thermal Paper Roll",
		"slug": "thermal-paper-roll",
		"permalink": "https://shop.example.com/product/thermal-paper-roll",
		"sku": "TPR-80",
		"description": "80mm thermal roll",
		"prices": {"price": "150000", "regular_price": "180000"},
		"images": [{"src": "https://shop.example.com/img/tpr-1.jpg"}, {"src": "https://shop.example.com/img/tpr-2.jpg"}],
		"add_to_cart": {"maximum": 10},
		"stock_availability": {"class": "in-stock"}
	},
	{
		"id": 102,
		"name": "Card Reader",
		"slug": "card-reader",
		"permalink": "https://shop.example.com/product/card-reader",
		"sku": "",
		"description": "",
		"prices": {"price": "950000", "regular_price": "950000"},
		"images": [],
		"add_to_cart": {"maximum": 0},
		"stock_availability": {"class": "out-of-stock"}
	}
]`

func newTestSource(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *wooCommerceSource) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{
		BaseURL: server.URL,
		PerPage: 2,
		Timeout: time.Second,
	}

	source, err := NewWooCommerceSource(cfg)
	require.NoError(t, err)

	return server, source.(*wooCommerceSource)
}

func TestWooCommerceSource_FetchPage(t *testing.T) {
	_, source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, productsPath, r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePage))
	})

	products, err := source.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, 101, first.RemoteID)
	assert.Equal(t, "Thermal Paper Roll", first.Name)
	assert.Equal(t, "150000", first.Price)
	assert.Equal(t, "180000", first.RegularPrice)
	assert.Equal(t, "https://shop.example.com/img/tpr-1.jpg,https://shop.example.com/img/tpr-2.jpg", first.Images)
	assert.True(t, first.IsInStock)
	assert.Equal(t, "10", first.Maximum)
	assert.NotEmpty(t, first.Raw)

	second := products[1]
	assert.False(t, second.IsInStock)
	assert.Empty(t, second.Images)
}

func TestWooCommerceSource_EmptyPageEndsWalk(t *testing.T) {
	_, source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	products, err := source.FetchPage(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWooCommerceSource_NonOKStatusIsError(t *testing.T) {
	_, source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	})

	_, err := source.FetchPage(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
