package domain

import "fmt"

// Dataset é o conjunto completo de registros do Record Store (usado pelo seed e pelo backend em memória)
type Dataset struct {
	Restaurants []Restaurant
	MenuItems   []MenuItem
	Orders      []Order
}

// Validate confere a integridade referencial: todo item aponta para um restaurante existente
// e todo pedido aponta para um item existente do mesmo restaurante.
func (d Dataset) Validate() error {
	restaurants := make(map[string]struct{}, len(d.Restaurants))
	for _, restaurant := range d.Restaurants {
		restaurants[restaurant.ID] = struct{}{}
	}

	menuItems := make(map[string]MenuItem, len(d.MenuItems))
	for _, item := range d.MenuItems {
		if _, ok := restaurants[item.RestaurantID]; !ok {
			return fmt.Errorf("menu item %s references unknown restaurant %s", item.ID, item.RestaurantID)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("menu item %s has negative price %s", item.ID, item.Price)
		}
		menuItems[item.ID] = item
	}

	for _, order := range d.Orders {
		item, ok := menuItems[order.MenuItemID]
		if !ok {
			return fmt.Errorf("order %s references unknown menu item %s", order.ID, order.MenuItemID)
		}
		if item.RestaurantID != order.RestaurantID {
			return fmt.Errorf("order %s restaurant %s does not match menu item restaurant %s", order.ID, order.RestaurantID, item.RestaurantID)
		}
	}

	return nil
}
