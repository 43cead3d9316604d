package handler

import (
	"net/http"

	"github.com/vfg2006/dish-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/dish-ranking-api/internal/usecases/ranking"
)

func Healthcheck(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/readiness",
			Method:  http.MethodGet,
			Handler: ReadinessHandler(service),
		},
	}
}

func DishSearch(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/search/dishes",
			Method:  http.MethodGet,
			Handler: SearchDishes(service),
		},
	}
}
