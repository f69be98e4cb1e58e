// Package catalog implements the external product-catalog source against the
// WooCommerce Store API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	productsPath   = "/wp-json/wc/store/products"
	defaultPerPage = 100
)

// storeProduct mirrors the fields of the Store API product payload that the
// local cache keeps.
type storeProduct struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Permalink   string `json:"permalink"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Prices      struct {
		Price        string `json:"price"`
		RegularPrice string `json:"regular_price"`
	} `json:"prices"`
	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
	AddToCart struct {
		Maximum int `json:"maximum"`
	} `json:"add_to_cart"`
	StockAvailability struct {
		Class string `json:"class"`
	} `json:"stock_availability"`
}

// wooCommerceSource pages through a WooCommerce store's public product
// listing.
type wooCommerceSource struct {
	baseURL string
	perPage int
	client  *http.Client
}

// NewWooCommerceSource is the constructor for wooCommerceSource.
func NewWooCommerceSource(cfg *config.Config) (service.CatalogSource, error) {
	if cfg.Catalog == nil || cfg.Catalog.BaseURL == "" {
		return nil, errors.New("catalog base url must be provided")
	}

	perPage := cfg.Catalog.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	return &wooCommerceSource{
		baseURL: strings.TrimSuffix(cfg.Catalog.BaseURL, "/"),
		perPage: perPage,
		client:  &http.Client{Timeout: cfg.Catalog.Timeout},
	}, nil
}

// FetchPage returns one page of products, 1-based. A page past the end comes
// back empty, which ends the import walk.
func (s *wooCommerceSource) FetchPage(ctx context.Context, page int) ([]*entity.Product, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(s.perPage))

	endpoint := fmt.Sprintf("%s%s?%s", s.baseURL, productsPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call catalog source")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("catalog source returned %d: %s", resp.StatusCode, string(body))
	}

	var rawItems []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rawItems); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog page")
	}

	products := make([]*entity.Product, 0, len(rawItems))
	for _, raw := range rawItems {
		var item storeProduct
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, errors.Wrap(err, "failed to decode catalog product")
		}

		products = append(products, mapProduct(&item, raw))
	}

	return products, nil
}

func mapProduct(item *storeProduct, raw json.RawMessage) *entity.Product {
	images := make([]string, 0, len(item.Images))
	for _, img := range item.Images {
		images = append(images, img.Src)
	}

	return &entity.Product{
		RemoteID:     item.ID,
		Name:         item.Name,
		Slug:         item.Slug,
		Permalink:    item.Permalink,
		SKU:          item.SKU,
		Description:  item.Description,
		Price:        item.Prices.Price,
		RegularPrice: item.Prices.RegularPrice,
		Images:       strings.Join(images, ","),
		IsInStock:    item.StockAvailability.Class == "in-stock",
		Maximum:      strconv.Itoa(item.AddToCart.Maximum),
		Raw:          string(raw),
	}
}
