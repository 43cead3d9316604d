package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
	"gorm.io/gorm"
)

type restaurantModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (restaurantModel) TableName() string { return "restaurants" }

type menuItemModel struct {
	ID           string `gorm:"primaryKey"`
	RestaurantID string
	Restaurant   restaurantModel `gorm:"foreignKey:RestaurantID"`
	Name         string
	Price        decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (menuItemModel) TableName() string { return "menu_items" }

type orderModel struct {
	ID           string `gorm:"primaryKey"`
	RestaurantID string
	MenuItemID   string
	CreatedAt    time.Time
}

func (orderModel) TableName() string { return "orders" }

type orderCountRow struct {
	MenuItemID string
	OrderCount int
}

type gormDishSearchRepository struct {
	db             *gorm.DB
	acquireTimeout time.Duration
}

// NewGormDishSearchRepository cria o backend via ORM: busca os itens do cardápio com o restaurante
// pré-carregado e conta os pedidos numa segunda consulta, juntando tudo em memória.
func NewGormDishSearchRepository(db *gorm.DB, acquireTimeout time.Duration) DishSearchRepository {
	return &gormDishSearchRepository{
		db:             db,
		acquireTimeout: acquireTimeout,
	}
}

func (r *gormDishSearchRepository) FindDishMatches(ctx context.Context, filters domain.DishSearchFilters) ([]domain.DishMatch, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter o pool do gorm")
	}

	matches := make([]domain.DishMatch, 0)

	err = database.WithConn(ctx, sqlDB, r.acquireTimeout, func(conn *sql.Conn) error {
		tx := r.db.WithContext(ctx)
		tx.Statement.ConnPool = conn

		var items []menuItemModel
		err := tx.
			Preload("Restaurant").
			Where("strpos(lower(name), lower(?)) > 0", filters.NamePattern).
			Where("price >= ? AND price <= ?", filters.MinPrice, filters.MaxPrice).
			Find(&items).Error
		if err != nil {
			return errors.Wrap(err, "erro ao buscar itens do cardápio")
		}

		if len(items) == 0 {
			return nil
		}

		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}

		var counts []orderCountRow
		err = tx.
			Model(&orderModel{}).
			Select("menu_item_id, COUNT(*) AS order_count").
			Where("menu_item_id IN ?", ids).
			Group("menu_item_id").
			Scan(&counts).Error
		if err != nil {
			return errors.Wrap(err, "erro ao contar pedidos dos itens")
		}

		countByItem := make(map[string]int, len(counts))
		for _, count := range counts {
			countByItem[count.MenuItemID] = count.OrderCount
		}

		// Itens sem pedidos não aparecem na contagem e ficam com 0
		for _, item := range items {
			matches = append(matches, domain.DishMatch{
				RestaurantID:   item.RestaurantID,
				RestaurantName: item.Restaurant.Name,
				City:           item.Restaurant.City,
				MenuItemID:     item.ID,
				DishName:       item.Name,
				DishPrice:      item.Price,
				OrderCount:     countByItem[item.ID],
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

func (r *gormDishSearchRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return database.WithConn(ctx, sqlDB, r.acquireTimeout, func(conn *sql.Conn) error {
		return conn.PingContext(ctx)
	})
}
