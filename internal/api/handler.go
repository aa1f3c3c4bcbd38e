package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"olxfetcher/internal/config"
	"olxfetcher/internal/models"
	"olxfetcher/internal/scraper"
	"olxfetcher/internal/stats"
	"olxfetcher/internal/util"
	"olxfetcher/internal/validation"
)

// Handler serves the listing search and price statistics endpoints. It holds
// no per-request state: every request triggers a fresh upstream fetch and the
// resulting listings are discarded after the response is written.
type Handler struct {
	cfg    *config.Config
	source scraper.Source
}

// NewHandler creates an API handler backed by the given listing source.
func NewHandler(cfg *config.Config, source scraper.Source) *Handler {
	return &Handler{cfg: cfg, source: source}
}

// Health godoc
// @Summary Service liveness check
// @Description Returns ok and the current server time. No authentication required.
// @Tags meta
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status: "ok",
		TS:     unixNow(),
	})
}

// Search godoc
// @Summary Search OLX vehicle listings
// @Description Fetches up to 80 listings for a model (optionally narrowed by year and price ceiling) and returns one fixed-size page of 20.
// @Tags listings
// @Produce json
// @Param modelo query string true "Vehicle model, free text"
// @Param ano query int false "Model year (19xx/20xx)"
// @Param cidade query string false "City fallback for listings without a location"
// @Param max_price query number false "Discard listings priced above this value"
// @Param page query int false "1-based page number" default(1)
// @Param x-api-key header string true "API key"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]interface{} "message: invalid parameter"
// @Failure 401 {object} map[string]string "error: Invalid API key"
// @Router /search [get]
func (h *Handler) Search(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}

	maxPriceParam := c.Query("max_price")
	if maxPriceParam != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceParam, 64)
		if err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, "max_price must be a number", err)
			return
		}
		if err := validation.ValidateMaxPrice(maxPrice); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		query.MaxPrice = &maxPrice
	}

	page := 1
	if pageParam := c.Query("page"); pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, "page must be an integer", err)
			return
		}
		page = parsed
	}
	if err := validation.ValidatePage(page); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	listings := h.fetch(c, query)

	// Fixed-size pagination over the in-memory result set.
	start := (page - 1) * h.cfg.PageSize
	end := start + h.cfg.PageSize

	items := make([]models.Listing, 0, h.cfg.PageSize)
	if start < len(listings) {
		pageEnd := end
		if pageEnd > len(listings) {
			pageEnd = len(listings)
		}
		for _, l := range listings[start:pageEnd] {
			items = append(items, models.FromScraperListing(l))
		}
	}

	var nextPage *int
	if end < len(listings) {
		next := page + 1
		nextPage = &next
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Items:    items,
		Count:    len(listings),
		NextPage: nextPage,
	})
}

// Stats godoc
// @Summary Price distribution for a model
// @Description Fetches up to 80 listings and computes count, mean, median and quartiles over the prices found. Returns n=0 with null statistics when nothing was collected.
// @Tags listings
// @Produce json
// @Param modelo query string true "Vehicle model, free text"
// @Param ano query int false "Model year (19xx/20xx)"
// @Param cidade query string false "City fallback for listings without a location"
// @Param x-api-key header string true "API key"
// @Success 200 {object} models.StatsResponse
// @Failure 400 {object} map[string]interface{} "message: invalid parameter"
// @Failure 401 {object} map[string]string "error: Invalid API key"
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}

	listings := h.fetch(c, query)

	prices := make([]float64, 0, len(listings))
	for _, l := range listings {
		if l.Preco != nil {
			prices = append(prices, *l.Preco)
		}
	}

	summary := stats.Summarize(prices)

	c.JSON(http.StatusOK, models.StatsResponse{
		N:         summary.N,
		Media:     summary.Media,
		Mediana:   summary.Mediana,
		P25:       summary.P25,
		P75:       summary.P75,
		UpdatedAt: unixNow(),
	})
}

// parseQuery reads the parameters shared by /search and /stats. On a
// validation failure it writes the error response and reports false.
func (h *Handler) parseQuery(c *gin.Context) (scraper.Query, bool) {
	modelo := c.Query("modelo")
	if modelo == "" {
		util.SafeErrorResponse(c, http.StatusBadRequest, "modelo query parameter is required", nil)
		return scraper.Query{}, false
	}
	if err := validation.ValidateModelo(modelo); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return scraper.Query{}, false
	}

	query := scraper.Query{
		Modelo:   modelo,
		Cidade:   c.Query("cidade"),
		MaxItems: h.cfg.MaxListings,
	}

	if anoParam := c.Query("ano"); anoParam != "" {
		ano, err := strconv.Atoi(anoParam)
		if err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, "ano must be an integer", err)
			return scraper.Query{}, false
		}
		if err := validation.ValidateAno(ano); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return scraper.Query{}, false
		}
		query.Ano = &ano
	}

	return query, true
}

// fetch runs the listing source. Upstream failures degrade to zero results
// rather than an API error, so callers see an empty set when OLX is
// unreachable.
func (h *Handler) fetch(c *gin.Context, query scraper.Query) []scraper.Listing {
	listings, err := h.source.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("Listing fetch failed for modelo=%q: %v", query.Modelo, err)
		return nil
	}
	return listings
}

func unixNow() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
