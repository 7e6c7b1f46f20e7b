package products

import "context"

// Product is the catalog record served to API clients.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Store abstracts the catalog backing. Both implementations are
// read-only after construction.
type Store interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, id int64) (Product, bool, error)
	ListSortedByID(ctx context.Context) ([]Product, error)
}

// seedProducts is the fixed catalog loaded at process start.
var seedProducts = []Product{
	{ID: 121, Name: "Laptop"},
	{ID: 122, Name: "Phone"},
	{ID: 123, Name: "Headphones"},
}
