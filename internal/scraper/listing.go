package scraper

import "context"

// SourceOLX tags every listing with the site it was collected from.
const SourceOLX = "olx"

// Listing is a normalized vehicle advertisement as extracted from one search
// result card. It is request-scoped: built during a fetch, immutable after
// construction, and discarded once the response is serialized. Pointer fields
// are nil when the card did not expose a parseable value.
type Listing struct {
	ID          string
	Title       string
	URL         string
	Modelo      string
	Ano         *int
	Cidade      string
	Preco       *float64
	KM          *int
	Cambio      string
	Combustivel string
	Fonte       string
	DataColeta  float64
}

// Query carries the search parameters a caller narrows a fetch with.
type Query struct {
	Modelo   string
	Ano      *int
	Cidade   string
	MaxPrice *float64
	MaxItems int
}

// Source produces listings for a query. The live OLX client and the mock
// generator both satisfy it, which is also how handler tests stub the fetch.
type Source interface {
	Search(ctx context.Context, q Query) ([]Listing, error)
}
