package ranking

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
	"github.com/vfg2006/dish-ranking-api/pkg/apiErrors"
)

// ValidateQuery normaliza e valida os parâmetros crus da busca.
// A ordem das verificações define qual erro o cliente recebe: nome, presença da faixa,
// formato, sinal e por último a inversão da faixa.
func ValidateQuery(query domain.DishSearchQuery) (domain.DishSearchFilters, error) {
	name := strings.TrimSpace(query.Name)
	if name == "" {
		return domain.DishSearchFilters{}, newValidationError(
			ErrMissingName,
			apiErrors.ErrMissingName,
			"Dish name is required. Please provide a dish name in the query parameter: ?name=yourDishName",
		)
	}

	rawMin := strings.TrimSpace(query.MinPrice)
	rawMax := strings.TrimSpace(query.MaxPrice)
	if rawMin == "" || rawMax == "" {
		return domain.DishSearchFilters{}, newValidationError(
			ErrMissingPriceRange,
			apiErrors.ErrMissingPriceRange,
			"Price range is required. Please provide both minPrice and maxPrice in the query parameters",
		)
	}

	minPrice, minErr := parsePrice(rawMin)
	maxPrice, maxErr := parsePrice(rawMax)
	if minErr != nil || maxErr != nil {
		return domain.DishSearchFilters{}, newValidationError(
			ErrInvalidPriceFormat,
			apiErrors.ErrInvalidPriceFormat,
			"minPrice and maxPrice must be valid numbers",
		)
	}

	if minPrice.IsNegative() || maxPrice.IsNegative() {
		return domain.DishSearchFilters{}, newValidationError(
			ErrNegativePrice,
			apiErrors.ErrNegativePrice,
			"Prices must be non-negative",
		)
	}

	if minPrice.GreaterThan(maxPrice) {
		return domain.DishSearchFilters{}, newValidationError(
			ErrInvertedPriceRange,
			apiErrors.ErrInvertedPriceRange,
			"minPrice must be less than or equal to maxPrice",
		)
	}

	return domain.DishSearchFilters{
		NamePattern: name,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
	}, nil
}

// parsePrice aceita apenas números decimais finitos, sem sobras no final ("100abc" é inválido)
func parsePrice(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(raw)
}
