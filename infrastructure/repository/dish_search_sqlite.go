package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database/sqlite"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

type sqliteDishSearchRepository struct {
	conn *sqlite.Connection
}

// NewSQLiteDishSearchRepository cria o backend embarcado. Ele devolve uma linha por pedido
// (ou uma linha com contagem 0 para itens sem pedidos) e deixa a contagem para o ranking.
func NewSQLiteDishSearchRepository(conn *sqlite.Connection) DishSearchRepository {
	return &sqliteDishSearchRepository{
		conn: conn,
	}
}

func (r *sqliteDishSearchRepository) FindDishMatches(ctx context.Context, filters domain.DishSearchFilters) ([]domain.DishMatch, error) {
	// Preços ficam em centavos no sqlite; arredondar para dentro mantém a faixa inclusiva exata
	minCents := filters.MinPrice.Shift(domain.PriceScale).Ceil().IntPart()
	maxCents := filters.MaxPrice.Shift(domain.PriceScale).Floor().IntPart()

	sqlQuery, args, err := squirrel.
		Select(
			"r.id",
			"r.name",
			"r.city",
			"mi.id",
			"mi.name",
			"mi.price_cents",
			"o.id",
		).
		From(restaurantsTable).
		Join("menu_items mi ON mi.restaurant_id = r.id").
		LeftJoin("orders o ON o.menu_item_id = mi.id").
		Where("instr(lower(mi.name), lower(?)) > 0", filters.NamePattern).
		Where(squirrel.GtOrEq{"mi.price_cents": minCents}).
		Where(squirrel.LtOrEq{"mi.price_cents": maxCents}).
		PlaceholderFormat(squirrel.Question).
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
			var (
				match      domain.DishMatch
				priceCents int64
				orderID    sql.NullString
			)
			if err := rows.Scan(
				&match.RestaurantID,
				&match.RestaurantName,
				&match.City,
				&match.MenuItemID,
				&match.DishName,
				&priceCents,
				&orderID,
			); err != nil {
				return errors.Wrap(err, "erro ao escanear linha da busca de pratos")
			}

			match.DishPrice = decimal.New(priceCents, -domain.PriceScale)
			if orderID.Valid {
				match.OrderCount = 1
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

func (r *sqliteDishSearchRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}
