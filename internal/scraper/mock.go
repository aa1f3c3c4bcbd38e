package scraper

import (
	"context"
	"fmt"
	"strings"
)

const mockListingCount = 62

// MockSource generates deterministic synthetic listings so the API can be
// exercised without touching OLX. Prices spread evenly around a base value
// derived from the requested year, mirroring the distribution the price
// estimator front end expects.
type MockSource struct{}

// NewMockSource returns the synthetic listing source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Search fabricates up to q.MaxItems listings. The max-price ceiling applies
// the same way it does on the live client.
func (m *MockSource) Search(_ context.Context, q Query) ([]Listing, error) {
	base := mockBasePrice(q.Ano)

	count := mockListingCount
	cidade := q.Cidade
	if cidade == "" {
		cidade = "São Paulo"
	}

	results := []Listing{}
	for i := 0; i < count; i++ {
		// Even spread from 90% to 110% of the base price.
		preco := base * (0.9 + 0.2*float64(i)/float64(count-1))
		km := 20000 + 1500*i
		ano := q.Ano
		if ano == nil {
			year := 2018
			ano = &year
		}

		listing := Listing{
			ID:          fmt.Sprintf("mock-%d", i+1),
			Title:       fmt.Sprintf("%s %d", q.Modelo, *ano),
			URL:         fmt.Sprintf("%s%s/mock-%d", defaultBaseURL, searchPath, i+1),
			Modelo:      strings.ToUpper(q.Modelo),
			Ano:         ano,
			Cidade:      cidade,
			Preco:       &preco,
			KM:          &km,
			Cambio:      "manual",
			Combustivel: "flex",
			Fonte:       SourceOLX,
			DataColeta:  unixNow(),
		}

		if q.MaxPrice != nil && *listing.Preco > *q.MaxPrice {
			continue
		}

		results = append(results, listing)
		if q.MaxItems > 0 && len(results) >= q.MaxItems {
			break
		}
	}

	return results, nil
}

// mockBasePrice follows the placeholder pricing curve used during front-end
// development: newer cars start at 60k and lose 2k per year of age, floored
// at 35k.
func mockBasePrice(ano *int) float64 {
	if ano == nil {
		return 55000
	}
	base := 60000 - float64(2025-*ano)*2000
	if base < 35000 {
		return 35000
	}
	return base
}
