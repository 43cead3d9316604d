// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

const (
	restaurantsTable = "restaurants r"
)

// DishSearchRepository é o contrato do Record Store: dado um padrão de nome e uma faixa de preço,
// devolve todas as linhas (restaurante, item, contagem de pedidos) que passam no filtro.
// O backend pode agregar as contagens ou devolver linhas cruas; o ranking agrupa de qualquer forma.
type DishSearchRepository interface {
	FindDishMatches(ctx context.Context, filters domain.DishSearchFilters) ([]domain.DishMatch, error)
}

// Pinger é implementado pelos backends que conseguem verificar a conexão
type Pinger interface {
	Ping(ctx context.Context) error
}

type dishSearchRepository struct {
	conn postgres.Conn
}

// NewDishSearchRepository cria o backend postgres, que agrega as contagens no próprio banco (GROUP BY)
func NewDishSearchRepository(conn postgres.Conn) DishSearchRepository {
	return &dishSearchRepository{
		conn: conn,
	}
}

func (r *dishSearchRepository) FindDishMatches(ctx context.Context, filters domain.DishSearchFilters) ([]domain.DishMatch, error) {
	// LEFT JOIN em orders mantém os pratos sem pedidos com contagem 0
	sqlQuery, args, err := squirrel.
		Select(
			"r.id",
			"r.name",
			"r.city",
			"mi.name",
			"mi.price",
			"COUNT(o.id) AS order_count",
		).
		From(restaurantsTable).
		Join("menu_items mi ON mi.restaurant_id = r.id").
		LeftJoin("orders o ON o.menu_item_id = mi.id").
		Where("strpos(lower(mi.name), lower(?)) > 0", filters.NamePattern).
		Where(squirrel.GtOrEq{"mi.price": filters.MinPrice}).
		Where(squirrel.LtOrEq{"mi.price": filters.MaxPrice}).
		GroupBy("r.id", "r.name", "r.city", "mi.name", "mi.price").
		OrderBy("order_count DESC", `r.name COLLATE "C" ASC`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de busca de pratos")
	}

	matches := make([]domain.DishMatch, 0)

	err = r.conn.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, sqlQuery, args...)
		if err != nil {
			return errors.Wrap(err, "erro ao executar a query de busca de pratos")
		}
		defer rows.Close()

		for rows.Next() {
			match := domain.DishMatch{}
			if err := rows.Scan(
				&match.RestaurantID,
				&match.RestaurantName,
				&match.City,
				&match.DishName,
				&match.DishPrice,
				&match.OrderCount,
			); err != nil {
				return errors.Wrap(err, "erro ao escanear linha da busca de pratos")
			}
			matches = append(matches, match)
		}

		return errors.Wrap(rows.Err(), "erro durante a iteração de linhas")
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

func (r *dishSearchRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}
