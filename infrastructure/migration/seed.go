package migration

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

// batchSize limita a quantidade de linhas por INSERT
const batchSize = 100

// TxRunner é implementado pelas conexões postgres e sqlite
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Migrate cria tabelas, índices e triggers dentro de uma transação
func Migrate(ctx context.Context, runner TxRunner, dialect Dialect) error {
	return runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range dialect.Schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return errors.Wrapf(err, "erro ao aplicar schema %s", dialect.Name)
			}
		}

		logrus.WithField("dialect", dialect.Name).Info("Schema criado")
		return nil
	})
}

// Seed apaga os dados existentes e insere o dataset, tudo na mesma transação
func Seed(ctx context.Context, runner TxRunner, dialect Dialect, dataset domain.Dataset) error {
	if err := dataset.Validate(); err != nil {
		return errors.Wrap(err, "dataset inválido")
	}

	return runner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"orders", "menu_items", "restaurants"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return errors.Wrapf(err, "erro ao limpar tabela %s", table)
			}
		}
		logrus.Info("Dados existentes removidos")

		if err := insertRestaurants(ctx, tx, dialect, dataset.Restaurants); err != nil {
			return err
		}
		logrus.WithField("total", len(dataset.Restaurants)).Info("Restaurantes inseridos")

		if err := insertMenuItems(ctx, tx, dialect, dataset.MenuItems); err != nil {
			return err
		}
		logrus.WithField("total", len(dataset.MenuItems)).Info("Itens do cardápio inseridos")

		if err := insertOrders(ctx, tx, dialect, dataset.Orders); err != nil {
			return err
		}
		logrus.WithField("total", len(dataset.Orders)).Info("Pedidos inseridos")

		return nil
	})
}

func insertRestaurants(ctx context.Context, tx *sql.Tx, dialect Dialect, restaurants []domain.Restaurant) error {
	for start := 0; start < len(restaurants); start += batchSize {
		query := squirrel.
			Insert("restaurants").
			Columns("id", "name", "city", "created_at", "updated_at").
			PlaceholderFormat(dialect.Placeholder)

		for _, restaurant := range restaurants[start:min(start+batchSize, len(restaurants))] {
			query = query.Values(
				restaurant.ID,
				restaurant.Name,
				restaurant.City,
				dialect.TimeValue(restaurant.CreatedAt),
				dialect.TimeValue(restaurant.UpdatedAt),
			)
		}

		if err := execInsert(ctx, tx, query); err != nil {
			return errors.Wrap(err, "erro ao inserir restaurantes")
		}
	}

	return nil
}

func insertMenuItems(ctx context.Context, tx *sql.Tx, dialect Dialect, items []domain.MenuItem) error {
	for start := 0; start < len(items); start += batchSize {
		query := squirrel.
			Insert("menu_items").
			Columns("id", "restaurant_id", "name", dialect.PriceColumn, "created_at", "updated_at").
			PlaceholderFormat(dialect.Placeholder)

		for _, item := range items[start:min(start+batchSize, len(items))] {
			query = query.Values(
				item.ID,
				item.RestaurantID,
				item.Name,
				dialect.PriceValue(item.Price),
				dialect.TimeValue(item.CreatedAt),
				dialect.TimeValue(item.UpdatedAt),
			)
		}

		if err := execInsert(ctx, tx, query); err != nil {
			return errors.Wrap(err, "erro ao inserir itens do cardápio")
		}
	}

	return nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, dialect Dialect, orders []domain.Order) error {
	for start := 0; start < len(orders); start += batchSize {
		query := squirrel.
			Insert("orders").
			Columns("id", "restaurant_id", "menu_item_id", "created_at").
			PlaceholderFormat(dialect.Placeholder)

		for _, order := range orders[start:min(start+batchSize, len(orders))] {
			query = query.Values(
				order.ID,
				order.RestaurantID,
				order.MenuItemID,
				dialect.TimeValue(order.CreatedAt),
			)
		}

		if err := execInsert(ctx, tx, query); err != nil {
			return errors.Wrap(err, "erro ao inserir pedidos")
		}
	}

	return nil
}

func execInsert(ctx context.Context, tx *sql.Tx, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, sqlQuery, args...)
	return err
}
