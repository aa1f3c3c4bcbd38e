package models

import "olxfetcher/internal/scraper"

// Listing is the wire representation of one vehicle advertisement. Nullable
// fields are pointers so absent values serialize as JSON null.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Modelo      *string  `json:"modelo"`
	Ano         *int     `json:"ano"`
	Cidade      *string  `json:"cidade"`
	Preco       *float64 `json:"preco"`
	KM          *int     `json:"km"`
	Cambio      *string  `json:"cambio"`
	Combustivel *string  `json:"combustivel"`
	DataColeta  *float64 `json:"data_coleta"`
	Fonte       string   `json:"fonte"`
}

// SearchResponse is the /search payload. Count is the total number of
// listings fetched (after the max-price filter) before pagination slicing.
type SearchResponse struct {
	Items    []Listing `json:"items"`
	Count    int       `json:"count"`
	NextPage *int      `json:"next_page"`
}

// StatsResponse is the /stats payload. Statistic fields are null when no
// prices were collected.
type StatsResponse struct {
	N         int      `json:"n"`
	Media     *float64 `json:"media"`
	Mediana   *float64 `json:"mediana"`
	P25       *float64 `json:"p25"`
	P75       *float64 `json:"p75"`
	UpdatedAt float64  `json:"updated_at"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status string  `json:"status"`
	TS     float64 `json:"ts"`
}

// FromScraperListing maps the scraper's domain record onto the transport
// record field by field. Empty strings on optional fields become null.
func FromScraperListing(l scraper.Listing) Listing {
	out := Listing{
		ID:         l.ID,
		Title:      l.Title,
		URL:        l.URL,
		Ano:        l.Ano,
		Preco:      l.Preco,
		KM:         l.KM,
		Fonte:      l.Fonte,
		DataColeta: &l.DataColeta,
	}
	if l.Modelo != "" {
		out.Modelo = &l.Modelo
	}
	if l.Cidade != "" {
		out.Cidade = &l.Cidade
	}
	if l.Cambio != "" {
		out.Cambio = &l.Cambio
	}
	if l.Combustivel != "" {
		out.Combustivel = &l.Combustivel
	}
	return out
}
