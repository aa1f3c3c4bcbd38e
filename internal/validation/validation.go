package validation

import (
	"fmt"
	"regexp"
)

var modeloPattern = regexp.MustCompile(`^[\p{L}\p{N}\s._-]+$`)

// ValidateModelo validates the free-text model query term.
func ValidateModelo(modelo string) error {
	if len(modelo) < 1 || len(modelo) > 60 {
		return fmt.Errorf("modelo must be between 1 and 60 characters")
	}

	if !modeloPattern.MatchString(modelo) {
		return fmt.Errorf("modelo contains invalid characters")
	}

	return nil
}

// ValidateAno validates that a year looks like a 4-digit model year.
func ValidateAno(ano int) error {
	if ano < 1900 || ano > 2100 {
		return fmt.Errorf("ano must be a 4-digit year between 1900 and 2100")
	}

	return nil
}

// ValidatePage validates the 1-based page number.
func ValidatePage(page int) error {
	if page < 1 {
		return fmt.Errorf("page must be 1 or greater")
	}

	return nil
}

// ValidateMaxPrice validates the optional price ceiling.
func ValidateMaxPrice(maxPrice float64) error {
	if maxPrice <= 0 {
		return fmt.Errorf("max_price must be greater than zero")
	}

	return nil
}
