package ranking

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
	"github.com/vfg2006/dish-ranking-api/pkg/apiErrors"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        domain.DishSearchQuery
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Nome vazio",
			query:        domain.DishSearchQuery{Name: "", MinPrice: "100", MaxPrice: "300"},
			expectedErr:  ErrMissingName,
			expectedCode: apiErrors.ErrMissingName,
		},
		{
			name:         "Nome só com espaços",
			query:        domain.DishSearchQuery{Name: "   ", MinPrice: "100", MaxPrice: "300"},
			expectedErr:  ErrMissingName,
			expectedCode: apiErrors.ErrMissingName,
		},
		{
			name:         "Nome ausente tem prioridade sobre faixa inválida",
			query:        domain.DishSearchQuery{Name: "", MinPrice: "abc", MaxPrice: "-1"},
			expectedErr:  ErrMissingName,
			expectedCode: apiErrors.ErrMissingName,
		},
		{
			name:         "minPrice ausente",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "", MaxPrice: "300"},
			expectedErr:  ErrMissingPriceRange,
			expectedCode: apiErrors.ErrMissingPriceRange,
		},
		{
			name:         "maxPrice ausente",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "100", MaxPrice: " "},
			expectedErr:  ErrMissingPriceRange,
			expectedCode: apiErrors.ErrMissingPriceRange,
		},
		{
			name:         "minPrice não numérico",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "abc", MaxPrice: "100"},
			expectedErr:  ErrInvalidPriceFormat,
			expectedCode: apiErrors.ErrInvalidPriceFormat,
		},
		{
			name:         "Sobra depois do número",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "100", MaxPrice: "300abc"},
			expectedErr:  ErrInvalidPriceFormat,
			expectedCode: apiErrors.ErrInvalidPriceFormat,
		},
		{
			name:         "NaN não é número",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "NaN", MaxPrice: "300"},
			expectedErr:  ErrInvalidPriceFormat,
			expectedCode: apiErrors.ErrInvalidPriceFormat,
		},
		{
			name:         "Preço negativo",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "-5", MaxPrice: "100"},
			expectedErr:  ErrNegativePrice,
			expectedCode: apiErrors.ErrNegativePrice,
		},
		{
			name:         "Faixa invertida",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "200", MaxPrice: "100"},
			expectedErr:  ErrInvertedPriceRange,
			expectedCode: apiErrors.ErrInvertedPriceRange,
		},
		{
			name:         "Negativo tem prioridade sobre inversão",
			query:        domain.DishSearchQuery{Name: "Biryani", MinPrice: "200", MaxPrice: "-100"},
			expectedErr:  ErrNegativePrice,
			expectedCode: apiErrors.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuery(tt.query)
			require.Error(t, err)

			assert.True(t, errors.Is(err, tt.expectedErr))

			var searchErr *SearchError
			require.True(t, errors.As(err, &searchErr))
			assert.Equal(t, tt.expectedCode, searchErr.Code)
			assert.Equal(t, tt.expectedErr.Error(), searchErr.Kind())
			assert.True(t, searchErr.IsClientError())
			assert.NotEmpty(t, searchErr.Message)
			assert.Equal(t, 400, apiErrors.StatusFor(searchErr.Code))
		})
	}
}

func TestValidateQuery_Valid(t *testing.T) {
	t.Run("Normaliza nome e preços", func(t *testing.T) {
		filters, err := ValidateQuery(domain.DishSearchQuery{Name: "  biryani ", MinPrice: " 100 ", MaxPrice: "300.50"})

		require.NoError(t, err)
		assert.Equal(t, "biryani", filters.NamePattern)
		assert.True(t, filters.MinPrice.Equal(decimal.NewFromInt(100)))
		assert.True(t, filters.MaxPrice.Equal(decimal.RequireFromString("300.5")))
	})

	t.Run("Faixa de um único valor", func(t *testing.T) {
		filters, err := ValidateQuery(domain.DishSearchQuery{Name: "Dosa", MinPrice: "80", MaxPrice: "80.00"})

		require.NoError(t, err)
		assert.True(t, filters.MinPrice.Equal(filters.MaxPrice))
	})

	t.Run("Zero é um preço válido", func(t *testing.T) {
		_, err := ValidateQuery(domain.DishSearchQuery{Name: "Dosa", MinPrice: "0", MaxPrice: "0"})

		assert.NoError(t, err)
	})
}
