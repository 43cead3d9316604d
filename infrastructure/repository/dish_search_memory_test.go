package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

func TestMemoryDishSearchRepository_FindDishMatches(t *testing.T) {
	repo, err := NewMemoryDishSearchRepository(sampleDataset())
	require.NoError(t, err)

	t.Run("Contagens agregadas por item", func(t *testing.T) {
		matches, err := repo.FindDishMatches(context.Background(), newFilters("biryani", 100, 300))

		require.NoError(t, err)
		assert.Len(t, matches, 4)
		assert.Equal(t, map[string]int{"M1": 60, "M2": 85, "M3": 36, "M4": 0}, countByItem(matches))
	})

	t.Run("Nada encontrado", func(t *testing.T) {
		matches, err := repo.FindDishMatches(context.Background(), newFilters("sushi", 0, 1000))

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("Contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := repo.FindDishMatches(ctx, newFilters("biryani", 100, 300))
		assert.ErrorIs(t, err, context.Canceled)

		pinger, ok := repo.(Pinger)
		require.True(t, ok)
		assert.ErrorIs(t, pinger.Ping(ctx), context.Canceled)
	})
}

func TestNewMemoryDishSearchRepository_InvalidDataset(t *testing.T) {
	dataset := sampleDataset()
	dataset.Orders = append(dataset.Orders, domain.Order{ID: "O-X", RestaurantID: "R1", MenuItemID: "M-X"})

	repo, err := NewMemoryDishSearchRepository(dataset)

	assert.Nil(t, repo)
	assert.ErrorContains(t, err, "unknown menu item")
}
