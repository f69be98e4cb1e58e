package entity

import "time"

// Product is a locally cached entry of the external e-commerce catalog,
// keyed by the remote store's product id (RemoteID).
type Product struct {
	ID           uint
	RemoteID     int // Product id in the external store.
	Name         string
	Slug         string
	Permalink    string
	SKU          string
	Description  string
	Price        string
	RegularPrice string
	Images       string // Raw JSON array of image descriptors.
	IsInStock    bool
	Maximum      string // Maximum orderable quantity reported by the store.
	Raw          string // Full upstream payload, kept for later inspection.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductStats summarizes the cached catalog.
type ProductStats struct {
	TotalProducts      int64 `json:"total_products"`
	InStockProducts    int64 `json:"in_stock_products"`
	OutOfStockProducts int64 `json:"out_of_stock_products"`
}
