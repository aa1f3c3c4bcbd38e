package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultBaseURL = "https://www.olx.com.br"
	searchPath     = "/autos-e-pecas/carros-vans-e-utilitarios"

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0 Safari/537.36"
	acceptLanguage = "pt-BR,pt;q=0.9"

	fetchTimeout = 15 * time.Second
)

var transmissionKeywords = []string{"manual", "automático", "automatica"}

var fuelKeywords = []string{"flex", "gasolina", "diesel", "álcool", "alcool", "etanol"}

// Client scrapes the OLX cars-and-light-vehicles search results page.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New creates an OLX client with the fixed fetch timeout.
func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
	}
}

// BuildSearchURL assembles the free-text search URL for a model and optional
// year. The city parameter does not narrow the path yet (see SlugifyCity).
func BuildSearchURL(modelo string, ano *int) string {
	return buildSearchURL(defaultBaseURL, modelo, ano)
}

func buildSearchURL(base, modelo string, ano *int) string {
	queryParts := []string{modelo}
	if ano != nil {
		queryParts = append(queryParts, strconv.Itoa(*ano))
	}

	params := url.Values{}
	params.Set("q", strings.Join(queryParts, " "))

	return base + searchPath + "?" + params.Encode()
}

// Search issues one GET against the OLX search page and extracts listings
// from the returned HTML. A network failure is returned as an error; a
// non-200 status is logged and yields zero listings. There is no retry and
// no caching between calls.
func (c *Client) Search(ctx context.Context, q Query) ([]Listing, error) {
	searchURL := buildSearchURL(c.baseURL, q.Modelo, q.Ano)
	log.Printf("Fetching OLX listings from: %s", searchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch OLX search page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("OLX returned status %d for %s", resp.StatusCode, searchURL)
		return []Listing{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse OLX search page: %w", err)
	}

	return extractListings(doc, q, c.baseURL), nil
}

// ExtractListings walks the ad cards of a parsed search results page in
// document order. Each card is processed in isolation: a failure on one card
// is logged and skipped without aborting the batch. Listings above
// q.MaxPrice are discarded and do not count toward the q.MaxItems cap.
func ExtractListings(doc *goquery.Document, q Query) []Listing {
	return extractListings(doc, q, defaultBaseURL)
}

func extractListings(doc *goquery.Document, q Query, base string) []Listing {
	results := []Listing{}

	doc.Find("section.olx-adcard").EachWithBreak(func(i int, card *goquery.Selection) bool {
		listing, err := parseCard(card, q, base)
		if err != nil {
			log.Printf("Skipping OLX card %d: %v", i, err)
			return true
		}

		if q.MaxPrice != nil && listing.Preco != nil && *listing.Preco > *q.MaxPrice {
			return true
		}

		results = append(results, *listing)
		return q.MaxItems <= 0 || len(results) < q.MaxItems
	})

	return results
}

// parseCard extracts a single listing. The recover boundary keeps a
// traversal panic on one card from taking down the rest of the page.
func parseCard(card *goquery.Selection, q Query, base string) (listing *Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			listing = nil
			err = fmt.Errorf("parsing ad card: %v", r)
		}
	}()

	title := strings.TrimSpace(card.Find("h2.olx-adcard__title").First().Text())

	href, _ := card.Find("a.olx-adcard__link").First().Attr("href")
	fullURL := href
	if strings.HasPrefix(href, "/") {
		fullURL = base + href
	}

	id, ok := card.Attr("data-id")
	if !ok || id == "" {
		id = fullURL
	}

	preco := ParsePrice(strings.TrimSpace(card.Find("h3.olx-adcard__price").First().Text()))

	cidade := q.Cidade
	if loc := strings.TrimSpace(card.Find("p.olx-adcard__location").First().Text()); loc != "" {
		if city := strings.TrimSpace(strings.SplitN(loc, ",", 2)[0]); city != "" {
			cidade = city
		}
	}

	ano := q.Ano
	if ano == nil {
		ano = ParseYearFromTitle(title)
	}

	var km *int
	var cambio, combustivel string
	card.Find("div.olx-adcard__detail").Each(func(_ int, detail *goquery.Selection) {
		chip := strings.ToLower(strings.TrimSpace(detail.Text()))
		switch {
		case strings.Contains(chip, "km"):
			km = ParseMileage(chip)
		case containsAny(chip, transmissionKeywords):
			cambio = chip
		case containsAny(chip, fuelKeywords):
			combustivel = chip
		}
	})

	return &Listing{
		ID:          id,
		Title:       title,
		URL:         fullURL,
		Modelo:      strings.ToUpper(q.Modelo),
		Ano:         ano,
		Cidade:      cidade,
		Preco:       preco,
		KM:          km,
		Cambio:      cambio,
		Combustivel: combustivel,
		Fonte:       SourceOLX,
		DataColeta:  unixNow(),
	}, nil
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// unixNow is the collection timestamp, taken fresh for every listing.
func unixNow() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
