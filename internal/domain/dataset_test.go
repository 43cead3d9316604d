package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validDataset() Dataset {
	return Dataset{
		Restaurants: []Restaurant{{ID: "R1", Name: "Delhi Darbar", City: "Delhi"}},
		MenuItems:   []MenuItem{{ID: "M1", RestaurantID: "R1", Name: "Chicken Biryani", Price: decimal.NewFromInt(200)}},
		Orders:      []Order{{ID: "O1", RestaurantID: "R1", MenuItemID: "M1"}},
	}
}

func TestDataset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Dataset)
		wantErr string
	}{
		{
			name:   "Dataset consistente",
			mutate: func(d *Dataset) {},
		},
		{
			name:    "Item com restaurante inexistente",
			mutate:  func(d *Dataset) { d.MenuItems[0].RestaurantID = "R2" },
			wantErr: "unknown restaurant",
		},
		{
			name:    "Item com preço negativo",
			mutate:  func(d *Dataset) { d.MenuItems[0].Price = decimal.NewFromInt(-1) },
			wantErr: "negative price",
		},
		{
			name:    "Pedido com item inexistente",
			mutate:  func(d *Dataset) { d.Orders[0].MenuItemID = "M2" },
			wantErr: "unknown menu item",
		},
		{
			name: "Pedido com restaurante diferente do item",
			mutate: func(d *Dataset) {
				d.Restaurants = append(d.Restaurants, Restaurant{ID: "R2"})
				d.Orders[0].RestaurantID = "R2"
			},
			wantErr: "does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := validDataset()
			tt.mutate(&dataset)

			err := dataset.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
