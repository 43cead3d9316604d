package ranking

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database"
	"github.com/vfg2006/dish-ranking-api/infrastructure/repository"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

type RankingService interface {
	SearchDishes(ctx context.Context, query domain.DishSearchQuery) ([]domain.RankedDish, error)
	Ping(ctx context.Context) error
}

type DishRankingService struct {
	DishSearchRepository repository.DishSearchRepository
}

func NewDishRankingService(dishSearchRepository repository.DishSearchRepository) RankingService {
	return &DishRankingService{
		DishSearchRepository: dishSearchRepository,
	}
}

// SearchDishes valida a busca antes de qualquer acesso ao banco, busca as linhas filtradas
// e devolve o top 10. Resultado vazio não é erro.
func (s *DishRankingService) SearchDishes(ctx context.Context, query domain.DishSearchQuery) ([]domain.RankedDish, error) {
	filters, err := ValidateQuery(query)
	if err != nil {
		return nil, err
	}

	matches, err := s.DishSearchRepository.FindDishMatches(ctx, filters)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"name":      filters.NamePattern,
			"min_price": filters.MinPrice.String(),
			"max_price": filters.MaxPrice.String(),
		}).Error("ranking: erro ao buscar pratos no Record Store")

		return nil, newStoreError(err, errors.Is(err, database.ErrUnavailable))
	}

	ranking := Rank(matches, filters)

	logrus.WithFields(logrus.Fields{
		"name":         filters.NamePattern,
		"rows":         len(matches),
		"ranked_items": len(ranking),
	}).Debug("ranking: busca concluída")

	return ranking, nil
}

// Ping verifica se o Record Store está acessível. Backends sem verificação são considerados prontos.
func (s *DishRankingService) Ping(ctx context.Context) error {
	pinger, ok := s.DishSearchRepository.(repository.Pinger)
	if !ok {
		return nil
	}

	if err := pinger.Ping(ctx); err != nil {
		return newStoreError(err, true)
	}
	return nil
}
