package scraper

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name string
		text string
		want *float64
	}{
		{"thousands", "R$ 45.000,00", floatPtr(45000)},
		{"decimals", "R$ 12.345,67", floatPtr(12345.67)},
		{"noCurrencySymbol", "45.000", floatPtr(45000)},
		{"empty", "", nil},
		{"nonNumeric", "consulte", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePrice(tc.text)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %v, got nil", *tc.want)
			}
			if *got != *tc.want {
				t.Fatalf("expected %v, got %v", *tc.want, *got)
			}
		})
	}
}

func TestParseMileage(t *testing.T) {
	cases := []struct {
		name string
		text string
		want *int
	}{
		{"thousandsDot", "73.000 km", intPtr(73000)},
		{"noSeparator", "73000km", intPtr(73000)},
		{"upperCase", "73.000 KM", intPtr(73000)},
		{"noDigits", "km", nil},
		{"empty", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMileage(tc.text)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %v, got nil", *tc.want)
			}
			if *got != *tc.want {
				t.Fatalf("expected %v, got %v", *tc.want, *got)
			}
		})
	}
}

func TestParseYearFromTitle(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  *int
	}{
		{"yearInTitle", "Honda Civic 2015 automático", intPtr(2015)},
		{"nineties", "Fusca 1994 raridade", intPtr(1994)},
		{"noYear", "Honda Civic completo", nil},
		{"notAModelYear", "Apartamento 1800m", nil},
		{"empty", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseYearFromTitle(tc.title)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %v, got nil", *tc.want)
			}
			if *got != *tc.want {
				t.Fatalf("expected %v, got %v", *tc.want, *got)
			}
		})
	}
}

func TestSlugifyCity(t *testing.T) {
	cases := []struct {
		name   string
		cidade string
		want   string
	}{
		{"accents", "São Paulo", "sao-paulo"},
		{"cedilla", "Conceição", "conceicao"},
		{"surroundingSpace", "  Maceió  ", "maceio"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SlugifyCity(tc.cidade); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
