package scraper

import (
	"context"
	"math"
	"testing"
)

func TestMockSourceSearch(t *testing.T) {
	src := NewMockSource()
	listings, err := src.Search(context.Background(), Query{Modelo: "civic", Ano: intPtr(2020), MaxItems: 80})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 62 {
		t.Fatalf("expected 62 synthetic listings, got %d", len(listings))
	}

	for i, l := range listings {
		if l.Preco == nil {
			t.Fatalf("listing %d: expected a price", i)
		}
		if l.Modelo != "CIVIC" {
			t.Fatalf("listing %d: expected upper-cased model, got %q", i, l.Modelo)
		}
		if l.Fonte != SourceOLX {
			t.Fatalf("listing %d: unexpected source %q", i, l.Fonte)
		}
	}

	// 2020 car: base 60000 - 5*2000 = 50000, spread 90%..110%.
	if got := *listings[0].Preco; math.Abs(got-45000) > 1e-6 {
		t.Fatalf("expected first price 45000, got %v", got)
	}
	if got := *listings[len(listings)-1].Preco; math.Abs(got-55000) > 1e-6 {
		t.Fatalf("expected last price 55000, got %v", got)
	}
}

func TestMockSourceMaxItems(t *testing.T) {
	src := NewMockSource()
	listings, err := src.Search(context.Background(), Query{Modelo: "civic", MaxItems: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 5 {
		t.Fatalf("expected item cap of 5, got %d", len(listings))
	}
}

func TestMockSourceMaxPrice(t *testing.T) {
	src := NewMockSource()
	maxPrice := 50000.0
	listings, err := src.Search(context.Background(), Query{Modelo: "civic", Ano: intPtr(2020), MaxPrice: &maxPrice, MaxItems: 80})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) == 0 {
		t.Fatal("expected listings under the ceiling")
	}
	for i, l := range listings {
		if *l.Preco > maxPrice {
			t.Fatalf("listing %d: price %v above ceiling", i, *l.Preco)
		}
	}
}

func TestMockBasePrice(t *testing.T) {
	cases := []struct {
		name string
		ano  *int
		want float64
	}{
		{"noYear", nil, 55000},
		{"recent", intPtr(2023), 56000},
		{"floored", intPtr(1995), 35000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mockBasePrice(tc.ano); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
