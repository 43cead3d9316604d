package repository

import (
	"context"

	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

type memoryDishSearchRepository struct {
	restaurants map[string]domain.Restaurant
	menuItems   []domain.MenuItem
	orders      []domain.Order
}

// NewMemoryDishSearchRepository cria um Record Store em memória a partir de um dataset imutável.
// Como nada é alterado depois da criação, buscas concorrentes não precisam de lock.
func NewMemoryDishSearchRepository(dataset domain.Dataset) (DishSearchRepository, error) {
	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	restaurants := make(map[string]domain.Restaurant, len(dataset.Restaurants))
	for _, restaurant := range dataset.Restaurants {
		restaurants[restaurant.ID] = restaurant
	}

	return &memoryDishSearchRepository{
		restaurants: restaurants,
		menuItems:   append([]domain.MenuItem(nil), dataset.MenuItems...),
		orders:      append([]domain.Order(nil), dataset.Orders...),
	}, nil
}

func (r *memoryDishSearchRepository) FindDishMatches(ctx context.Context, filters domain.DishSearchFilters) ([]domain.DishMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordersByItem := make(map[string]int)
	for _, order := range r.orders {
		ordersByItem[order.MenuItemID]++
	}

	matches := make([]domain.DishMatch, 0)
	for _, item := range r.menuItems {
		if !filters.Matches(item.Name, item.Price) {
			continue
		}

		restaurant := r.restaurants[item.RestaurantID]
		matches = append(matches, domain.DishMatch{
			RestaurantID:   restaurant.ID,
			RestaurantName: restaurant.Name,
			City:           restaurant.City,
			MenuItemID:     item.ID,
			DishName:       item.Name,
			DishPrice:      item.Price,
			OrderCount:     ordersByItem[item.ID],
		})
	}

	return matches, nil
}

func (r *memoryDishSearchRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
