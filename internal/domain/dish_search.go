package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceScale é a quantidade de casas decimais usada para preços
const PriceScale = 2

// DishSearchQuery são os parâmetros crus recebidos na requisição de busca
type DishSearchQuery struct {
	Name     string
	MinPrice string
	MaxPrice string
}

// DishSearchFilters são os critérios já validados usados pelo ranking
type DishSearchFilters struct {
	NamePattern string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
}

// Matches aplica o filtro: substring sem diferenciar maiúsculas e preço dentro de [MinPrice, MaxPrice]
func (f DishSearchFilters) Matches(dishName string, price decimal.Decimal) bool {
	if !strings.Contains(strings.ToLower(dishName), strings.ToLower(f.NamePattern)) {
		return false
	}

	return price.GreaterThanOrEqual(f.MinPrice) && price.LessThanOrEqual(f.MaxPrice)
}

// DishMatch é uma linha devolvida pelo Record Store para um item do cardápio que passou no filtro.
// OrderCount pode ser uma contagem já agregada pelo banco ou 0/1 quando o backend devolve linhas cruas de pedidos.
type DishMatch struct {
	RestaurantID   string
	RestaurantName string
	City           string
	MenuItemID     string
	DishName       string
	DishPrice      decimal.Decimal
	OrderCount     int
}

// RankedDish é o resultado derivado do ranking, nunca persistido
type RankedDish struct {
	RestaurantID   string
	RestaurantName string
	City           string
	DishName       string
	DishPrice      decimal.Decimal
	OrderCount     int
}

// RankingKey identifica unicamente um RankedDish dentro de um cálculo de ranking
type RankingKey struct {
	RestaurantID string
	DishName     string
	PriceCents   int64
}

func (m DishMatch) Key() RankingKey {
	return RankingKey{
		RestaurantID: m.RestaurantID,
		DishName:     m.DishName,
		PriceCents:   m.DishPrice.Shift(PriceScale).Round(0).IntPart(),
	}
}

type DishSearchResponse struct {
	Restaurants []RankedDishResponse `json:"restaurants"`
}

type RankedDishResponse struct {
	RestaurantID   string      `json:"restaurantId"`
	RestaurantName string      `json:"restaurantName"`
	City           string      `json:"city"`
	DishName       string      `json:"dishName"`
	DishPrice      json.Number `json:"dishPrice"`
	OrderCount     int         `json:"orderCount"`
}

// NewDishSearchResponse converte o ranking para o formato externo, preço sempre com duas casas
func NewDishSearchResponse(ranking []RankedDish) *DishSearchResponse {
	restaurants := make([]RankedDishResponse, 0, len(ranking))
	for _, item := range ranking {
		restaurants = append(restaurants, RankedDishResponse{
			RestaurantID:   item.RestaurantID,
			RestaurantName: item.RestaurantName,
			City:           item.City,
			DishName:       item.DishName,
			DishPrice:      json.Number(item.DishPrice.StringFixed(PriceScale)),
			OrderCount:     item.OrderCount,
		})
	}

	return &DishSearchResponse{Restaurants: restaurants}
}
