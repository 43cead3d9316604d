package ranking

import (
	"sort"

	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

// TopN é o corte fixo do ranking
const TopN = 10

// Rank agrupa as linhas do Record Store pela chave (restaurante, prato, preço), soma as contagens,
// ordena por contagem decrescente e nome do restaurante crescente e devolve no máximo TopN itens.
// Não guarda estado: cada chamada é independente.
func Rank(matches []domain.DishMatch, filters domain.DishSearchFilters) []domain.RankedDish {
	grouped := make(map[domain.RankingKey]*domain.RankedDish, len(matches))
	order := make([]domain.RankingKey, 0, len(matches))

	for _, match := range matches {
		// Linhas fora do filtro são descartadas mesmo que o backend as tenha devolvido
		if !filters.Matches(match.DishName, match.DishPrice) {
			continue
		}

		key := match.Key()
		item, exists := grouped[key]
		if !exists {
			item = &domain.RankedDish{
				RestaurantID:   match.RestaurantID,
				RestaurantName: match.RestaurantName,
				City:           match.City,
				DishName:       match.DishName,
				DishPrice:      match.DishPrice.Round(domain.PriceScale),
			}
			grouped[key] = item
			order = append(order, key)
		}

		if match.OrderCount > 0 {
			item.OrderCount += match.OrderCount
		}
	}

	ranking := make([]domain.RankedDish, 0, len(order))
	for _, key := range order {
		ranking = append(ranking, *grouped[key])
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return less(ranking[i], ranking[j])
	})

	if len(ranking) > TopN {
		ranking = ranking[:TopN]
	}

	return ranking
}

func less(a, b domain.RankedDish) bool {
	if a.OrderCount != b.OrderCount {
		return a.OrderCount > b.OrderCount
	}
	if a.RestaurantName != b.RestaurantName {
		return a.RestaurantName < b.RestaurantName
	}
	// Desempates extras para o resultado ser idêntico entre execuções
	if a.RestaurantID != b.RestaurantID {
		return a.RestaurantID < b.RestaurantID
	}
	if a.DishName != b.DishName {
		return a.DishName < b.DishName
	}
	return a.DishPrice.LessThan(b.DishPrice)
}
