// Package migration cria o schema do Record Store e popula o dataset de demonstração
package migration

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
)

// Dialect reúne as diferenças entre postgres e sqlite para schema e inserts
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	Schema      []string
	PriceColumn string
	PriceValue  func(decimal.Decimal) interface{}
	TimeValue   func(time.Time) interface{}
}

var Postgres = Dialect{
	Name:        "postgres",
	Placeholder: squirrel.Dollar,
	PriceColumn: "price",
	PriceValue: func(price decimal.Decimal) interface{} {
		return price.StringFixed(domain.PriceScale)
	},
	TimeValue: func(t time.Time) interface{} {
		return t.UTC()
	},
	Schema: []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(32) PRIMARY KEY,
			restaurant_id VARCHAR(32) NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL CHECK (price >= 0),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (id, restaurant_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(32) PRIMARY KEY,
			restaurant_id VARCHAR(32) NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			menu_item_id VARCHAR(32) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (menu_item_id, restaurant_id) REFERENCES menu_items(id, restaurant_id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant_id ON menu_items(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_name ON menu_items(name)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_price ON menu_items(price)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant_id ON orders(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_menu_item_id ON orders(menu_item_id)`,
		`CREATE OR REPLACE FUNCTION update_updated_at_column()
		RETURNS TRIGGER AS $$
		BEGIN
			NEW.updated_at = CURRENT_TIMESTAMP;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS update_restaurants_updated_at ON restaurants`,
		`CREATE TRIGGER update_restaurants_updated_at
			BEFORE UPDATE ON restaurants
			FOR EACH ROW
			EXECUTE FUNCTION update_updated_at_column()`,
		`DROP TRIGGER IF EXISTS update_menu_items_updated_at ON menu_items`,
		`CREATE TRIGGER update_menu_items_updated_at
			BEFORE UPDATE ON menu_items
			FOR EACH ROW
			EXECUTE FUNCTION update_updated_at_column()`,
	},
}

// SQLite guarda preços em centavos para evitar comparação de ponto flutuante
var SQLite = Dialect{
	Name:        "sqlite",
	Placeholder: squirrel.Question,
	PriceColumn: "price_cents",
	PriceValue: func(price decimal.Decimal) interface{} {
		return price.Shift(domain.PriceScale).Round(0).IntPart()
	},
	TimeValue: func(t time.Time) interface{} {
		return t.UTC().Format("2006-01-02T15:04:05.000Z")
	},
	Schema: []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			price_cents INTEGER NOT NULL CHECK (price_cents >= 0),
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
			UNIQUE (id, restaurant_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			menu_item_id TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
			FOREIGN KEY (menu_item_id, restaurant_id) REFERENCES menu_items(id, restaurant_id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant_id ON menu_items(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_name ON menu_items(name)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_price ON menu_items(price_cents)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant_id ON orders(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_menu_item_id ON orders(menu_item_id)`,
	},
}
