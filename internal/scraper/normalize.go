package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// First numeric run, optionally with a decimal part, after currency cleanup
	priceRegex = regexp.MustCompile(`\d+(\.\d+)?`)
	// Digit run (with thousands dots) immediately before "km", e.g. "73.000 km"
	mileageRegex = regexp.MustCompile(`(\d[\d.]*)\s*km`)
	// First 4-digit token that reads like a model year
	yearRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ParsePrice converts a Brazilian currency string like "R$ 45.000,00" into a
// float. Dots are thousands separators and the comma is the decimal point.
// Returns nil when no numeric value can be extracted.
func ParsePrice(text string) *float64 {
	if text == "" {
		return nil
	}
	cleaned := strings.ReplaceAll(text, "R$", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	match := priceRegex.FindString(cleaned)
	if match == "" {
		return nil
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParseMileage extracts an odometer reading from text like "73.000 km".
// Returns nil when the text has no digit run followed by "km".
func ParseMileage(text string) *int {
	if text == "" {
		return nil
	}
	match := mileageRegex.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return nil
	}
	value, err := strconv.Atoi(strings.ReplaceAll(match[1], ".", ""))
	if err != nil {
		return nil
	}
	return &value
}

// ParseYearFromTitle finds the first 19xx/20xx token in a listing title.
func ParseYearFromTitle(title string) *int {
	if title == "" {
		return nil
	}
	match := yearRegex.FindString(title)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}

var citySlugReplacer = strings.NewReplacer(
	" ", "-",
	"á", "a",
	"ã", "a",
	"â", "a",
	"é", "e",
	"ê", "e",
	"í", "i",
	"ó", "o",
	"ô", "o",
	"õ", "o",
	"ú", "u",
	"ç", "c",
)

// SlugifyCity lowercases and hyphenates a city name, transliterating the
// accented characters common in Brazilian place names. The search URL does
// not yet vary by city, so the slug is currently informational only.
func SlugifyCity(cidade string) string {
	if cidade == "" {
		return ""
	}
	return citySlugReplacer.Replace(strings.TrimSpace(strings.ToLower(cidade)))
}
