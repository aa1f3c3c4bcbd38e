package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAPIKeyAuth(t *testing.T) {
	r := gin.New()
	r.Use(APIKeyAuth("secret"))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	cases := []struct {
		name     string
		headers  map[string]string
		wantCode int
	}{
		{"missingKey", nil, http.StatusUnauthorized},
		{"wrongKey", map[string]string{"x-api-key": "nope"}, http.StatusUnauthorized},
		{"matchingKey", map[string]string{"x-api-key": "secret"}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := performRequest(r, http.MethodGet, "/", tc.headers)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}

func TestAPIKeyAuthDisabledWhenEmpty(t *testing.T) {
	r := gin.New()
	r.Use(APIKeyAuth(""))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rec := performRequest(r, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected auth to be disabled, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(1), 1)
	r := gin.New()
	r.Use(RateLimitMiddleware(limiter))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rec1 := performRequest(r, http.MethodGet, "/", map[string]string{"User-Agent": "test"})
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec1.Code)
	}

	rec2 := performRequest(r, http.MethodGet, "/", map[string]string{"User-Agent": "test"})
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on rapid second request, got %d", rec2.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "headers") })

	rec := performRequest(r, http.MethodGet, "/", map[string]string{"User-Agent": "test"})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	required := []string{"X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy"}
	for _, header := range required {
		if rec.Header().Get(header) == "" {
			t.Fatalf("expected header %s to be set", header)
		}
	}
}
