package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
	"github.com/vfg2006/dish-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/dish-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/dish-ranking-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SearchDishes retorna os 10 pratos mais pedidos que combinam com o nome e a faixa de preço
func SearchDishes(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		searchQuery := domain.DishSearchQuery{
			Name:     query.Get("name"),
			MinPrice: query.Get("minPrice"),
			MaxPrice: query.Get("maxPrice"),
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"search_name":      searchQuery.Name,
			"search_min_price": searchQuery.MinPrice,
			"search_max_price": searchQuery.MaxPrice,
		})

		ranked, err := service.SearchDishes(r.Context(), searchQuery)
		if err != nil {
			var searchErr *ranking.SearchError
			if errors.As(err, &searchErr) {
				if searchErr.IsClientError() {
					logger.WithField("error", searchErr.Kind()).Warn("Busca de pratos inválida")
				} else {
					logger.WithError(searchErr.Cause()).Error("Erro ao buscar pratos")
				}

				apiErrors.WriteError(w, searchErr.Code, searchErr.Message, map[string]string{"kind": searchErr.Kind()})
				return
			}

			logger.WithError(err).Error("Erro inesperado ao buscar pratos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "An error occurred while searching for dishes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(domain.NewDishSearchResponse(ranked))
		if err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta da busca de pratos")
		}
	}
}
